package surface

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// RingLight is the circular light surface: an outer circle in the light
// color with a concentric inner circle punched out in the key color,
// leaving a ring 30% of the outer radius thick. Presses on the transparent
// hole are ignored; presses near either circle edge resize from the ring's
// center; presses on the ring body move it. Geometry commits on release.
type RingLight struct {
	widget.BaseWidget

	fill color.Color

	state  InteractionState
	center fyne.Position // original center, container coords, fixed per resize drag
	onEdge bool          // cursor feedback while StateIdle

	// OnCommit receives the ring's top-left position and diameter when a
	// drag releases, for persistence.
	OnCommit func(x, y, size int)

	// OnMenu is invoked with the absolute pointer position on right click.
	OnMenu func(at fyne.Position)
}

// NewRingLight creates a ring with the given initial fill color.
func NewRingLight(fill color.Color) *RingLight {
	r := &RingLight{fill: fill}
	r.ExtendBaseWidget(r)
	return r
}

func (r *RingLight) Role() Role { return RoleRing }

// SetColor replaces the ring fill synchronously. The hole keeps the key
// color.
func (r *RingLight) SetColor(c color.Color) {
	r.fill = c
	r.Refresh()
}

// Color returns the current ring fill.
func (r *RingLight) Color() color.Color { return r.fill }

func (r *RingLight) CreateRenderer() fyne.WidgetRenderer {
	outer := canvas.NewCircle(r.fill)
	inner := canvas.NewCircle(KeyColor)
	return &ringRenderer{ring: r, outer: outer, inner: inner}
}

// MouseDown classifies the press: edge band resizes, ring body moves,
// the hole and the bounding-box corners are ignored entirely.
func (r *RingLight) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}

	switch RingHit(ev.Position, r.Size(), RingEdgeTol) {
	case RegionEdge:
		r.state = StateResizing
		half := r.Size().Width / 2
		r.center = r.Position().Add(fyne.NewPos(half, half))
	case RegionRing:
		r.state = StateMoving
	default:
		r.state = StateIdle
	}
}

func (r *RingLight) MouseUp(ev *desktop.MouseEvent) {}

// Dragged applies one move or resize tick. Resizing recomputes the
// diameter from the cursor's distance to the original center rather than
// from edge-relative deltas.
func (r *RingLight) Dragged(ev *fyne.DragEvent) {
	switch r.state {
	case StateMoving:
		r.Move(r.Position().Add(fyne.NewPos(ev.Dragged.DX, ev.Dragged.DY)))
	case StateResizing:
		cursor := r.Position().Add(ev.Position)
		pos, size, ok := RingFromCenter(r.center, cursor, r.Position(), r.Size(), MinRingSize)
		if !ok {
			return
		}
		r.Move(pos)
		r.Resize(size)
	}
}

// DragEnd commits the ring geometry for persistence.
func (r *RingLight) DragEnd() {
	if r.state == StateIdle {
		return
	}
	r.state = StateIdle

	pos, size := r.Position(), r.Size()
	log.Printf("[Surface] ring released at %.0f,%.0f diameter %.0f", pos.X, pos.Y, size.Width)
	if r.OnCommit != nil {
		r.OnCommit(int(pos.X), int(pos.Y), int(size.Width))
	}
}

// TappedSecondary opens the context menu.
func (r *RingLight) TappedSecondary(ev *fyne.PointEvent) {
	if r.OnMenu != nil {
		r.OnMenu(ev.AbsolutePosition)
	}
}

// MouseIn implements desktop.Hoverable.
func (r *RingLight) MouseIn(ev *desktop.MouseEvent) {
	r.onEdge = RingHit(ev.Position, r.Size(), RingEdgeTol) == RegionEdge
}

func (r *RingLight) MouseMoved(ev *desktop.MouseEvent) {
	if r.state != StateIdle {
		return
	}
	r.onEdge = RingHit(ev.Position, r.Size(), RingEdgeTol) == RegionEdge
}

func (r *RingLight) MouseOut() {
	r.onEdge = false
}

// Cursor signals the resize band with a crosshair.
func (r *RingLight) Cursor() desktop.Cursor {
	if r.onEdge {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

type ringRenderer struct {
	ring  *RingLight
	outer *canvas.Circle
	inner *canvas.Circle
}

func (r *ringRenderer) Layout(size fyne.Size) {
	r.outer.Resize(size)
	r.outer.Move(fyne.NewPos(0, 0))

	innerD := size.Width * RingHoleRatio
	offset := (size.Width - innerD) / 2
	r.inner.Resize(fyne.NewSize(innerD, innerD))
	r.inner.Move(fyne.NewPos(offset, offset))
}

func (r *ringRenderer) MinSize() fyne.Size {
	return fyne.NewSize(MinRingSize, MinRingSize)
}

func (r *ringRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.outer, r.inner}
}

func (r *ringRenderer) Refresh() {
	r.outer.FillColor = r.ring.fill
	r.outer.Refresh()
	r.inner.FillColor = KeyColor
	r.inner.Refresh()
}

func (r *ringRenderer) Destroy() {}
