package surface

import (
	"math"

	"fyne.io/fyne/v2"
)

// Interaction tuning. Values are canvas pixels.
const (
	// EdgeMargin is the band inside each bar border where a press starts a
	// resize instead of a move.
	EdgeMargin float32 = 10

	// MinBarSize is the floor for any bar dimension, shared with the border
	// thickness. Resizes that would shrink below it are rejected.
	MinBarSize float32 = 20

	// MinRingSize is the floor for the ring's outer diameter.
	MinRingSize float32 = 100

	// RingEdgeTol is the tolerance band around the ring's inner and outer
	// circle edges where a press starts a resize.
	RingEdgeTol float32 = 20

	// RingHoleRatio is the inner circle's diameter as a share of the outer,
	// leaving a ring 30% of the outer radius thick.
	RingHoleRatio float32 = 0.7
)

// Edge identifies which bar edge a resize grabs.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

// DetectEdge classifies a press at pos inside a bar of the given size.
// A press within margin of a border picks that edge for resizing; anywhere
// else means move. Left/right win over top/bottom in the corners.
func DetectEdge(pos fyne.Position, size fyne.Size, margin float32) Edge {
	switch {
	case pos.X <= margin:
		return EdgeLeft
	case pos.X >= size.Width-margin:
		return EdgeRight
	case pos.Y <= margin:
		return EdgeTop
	case pos.Y >= size.Height-margin:
		return EdgeBottom
	}
	return EdgeNone
}

// ResizeEdge applies one drag tick to a bar. Only the dimension belonging
// to the grabbed edge changes; the opposite edge stays fixed on screen
// (resizing the left edge keeps the right edge anchored). A result below
// min is rejected and the prior geometry is returned unchanged.
func ResizeEdge(pos fyne.Position, size fyne.Size, edge Edge, delta fyne.Delta, min float32) (fyne.Position, fyne.Size, bool) {
	newPos, newSize := pos, size

	switch edge {
	case EdgeLeft:
		newPos.X += delta.DX
		newSize.Width -= delta.DX
	case EdgeRight:
		newSize.Width += delta.DX
	case EdgeTop:
		newPos.Y += delta.DY
		newSize.Height -= delta.DY
	case EdgeBottom:
		newSize.Height += delta.DY
	default:
		return pos, size, false
	}

	if newSize.Width < min || newSize.Height < min {
		return pos, size, false
	}
	return newPos, newSize, true
}

// RingRegion classifies where a press landed on the ring light.
type RingRegion int

const (
	// RegionHole is the transparent center; presses there are ignored.
	RegionHole RingRegion = iota
	// RegionEdge is the tolerance band around the inner or outer circle
	// edge; presses there start a resize.
	RegionEdge
	// RegionRing is the opaque ring body; presses there start a move.
	RegionRing
	// RegionOutside is the bounding-box corner area beyond the outer
	// circle; presses there are ignored.
	RegionOutside
)

// RingHit classifies a press at pos inside the ring's bounding square.
func RingHit(pos fyne.Position, size fyne.Size, tol float32) RingRegion {
	outerR := size.Width / 2
	innerR := outerR * RingHoleRatio

	dx := float64(pos.X - outerR)
	dy := float64(pos.Y - outerR)
	d := float32(math.Hypot(dx, dy))

	switch {
	case abs(d-outerR) <= tol || abs(d-innerR) <= tol:
		return RegionEdge
	case d < innerR:
		return RegionHole
	case d < outerR:
		return RegionRing
	}
	return RegionOutside
}

// RingFromCenter recomputes ring geometry from a resize drag: the new
// diameter is twice the cursor's distance to the original center and the
// ring stays centered there. A diameter below min is rejected and the
// prior geometry returned unchanged.
func RingFromCenter(center, cursor fyne.Position, pos fyne.Position, size fyne.Size, min float32) (fyne.Position, fyne.Size, bool) {
	dx := float64(cursor.X - center.X)
	dy := float64(cursor.Y - center.Y)
	diameter := float32(2 * math.Hypot(dx, dy))

	if diameter < min {
		return pos, size, false
	}

	newPos := fyne.NewPos(center.X-diameter/2, center.Y-diameter/2)
	return newPos, fyne.NewSize(diameter, diameter), true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
