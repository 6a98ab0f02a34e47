package surface

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/google/go-cmp/cmp"
)

func TestDetectEdge(t *testing.T) {
	size := fyne.NewSize(200, 400)

	tests := []struct {
		name string
		pos  fyne.Position
		want Edge
	}{
		{"inside left margin", fyne.NewPos(5, 200), EdgeLeft},
		{"exactly on margin", fyne.NewPos(10, 200), EdgeLeft},
		{"inside right margin", fyne.NewPos(195, 200), EdgeRight},
		{"inside top margin", fyne.NewPos(100, 4), EdgeTop},
		{"inside bottom margin", fyne.NewPos(100, 396), EdgeBottom},
		{"body press means move", fyne.NewPos(100, 200), EdgeNone},
		{"just past left margin", fyne.NewPos(11, 200), EdgeNone},
		{"corner prefers horizontal edge", fyne.NewPos(3, 3), EdgeLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectEdge(tt.pos, size, EdgeMargin); got != tt.want {
				t.Errorf("DetectEdge(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestResizeEdgeAnchorsOppositeEdge(t *testing.T) {
	pos := fyne.NewPos(100, 50)
	size := fyne.NewSize(200, 400)

	tests := []struct {
		name     string
		edge     Edge
		delta    fyne.Delta
		wantPos  fyne.Position
		wantSize fyne.Size
	}{
		// Dragging the left edge right by 30 keeps the right edge at 300.
		{"left shrink", EdgeLeft, fyne.Delta{DX: 30}, fyne.NewPos(130, 50), fyne.NewSize(170, 400)},
		{"left grow", EdgeLeft, fyne.Delta{DX: -30}, fyne.NewPos(70, 50), fyne.NewSize(230, 400)},
		{"right grow", EdgeRight, fyne.Delta{DX: 25}, fyne.NewPos(100, 50), fyne.NewSize(225, 400)},
		{"top shrink keeps bottom", EdgeTop, fyne.Delta{DY: 40}, fyne.NewPos(100, 90), fyne.NewSize(200, 360)},
		{"bottom shrink", EdgeBottom, fyne.Delta{DY: -40}, fyne.NewPos(100, 50), fyne.NewSize(200, 360)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPos, gotSize, ok := ResizeEdge(pos, size, tt.edge, tt.delta, MinBarSize)
			if !ok {
				t.Fatalf("ResizeEdge rejected a legal resize")
			}
			if diff := cmp.Diff(tt.wantPos, gotPos); diff != "" {
				t.Errorf("position mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantSize, gotSize); diff != "" {
				t.Errorf("size mismatch (-want +got):\n%s", diff)
			}
			// The anchored edge must not have moved.
			switch tt.edge {
			case EdgeLeft:
				if gotPos.X+gotSize.Width != pos.X+size.Width {
					t.Errorf("right edge moved: %f != %f", gotPos.X+gotSize.Width, pos.X+size.Width)
				}
			case EdgeTop:
				if gotPos.Y+gotSize.Height != pos.Y+size.Height {
					t.Errorf("bottom edge moved: %f != %f", gotPos.Y+gotSize.Height, pos.Y+size.Height)
				}
			}
		})
	}
}

func TestResizeEdgeRejectsBelowFloor(t *testing.T) {
	pos := fyne.NewPos(100, 50)
	size := fyne.NewSize(30, 30)

	// Shrinking a 30px bar by 15 would land at 15, below the 20px floor.
	gotPos, gotSize, ok := ResizeEdge(pos, size, EdgeLeft, fyne.Delta{DX: 15}, MinBarSize)
	if ok {
		t.Fatalf("ResizeEdge accepted a resize below the floor")
	}
	if gotPos != pos || gotSize != size {
		t.Errorf("rejected resize mutated geometry: %v %v", gotPos, gotSize)
	}
}

func TestResizeEdgeNoneIsNoop(t *testing.T) {
	pos := fyne.NewPos(10, 10)
	size := fyne.NewSize(100, 100)

	if _, _, ok := ResizeEdge(pos, size, EdgeNone, fyne.Delta{DX: 5}, MinBarSize); ok {
		t.Errorf("ResizeEdge with EdgeNone reported a change")
	}
}

func TestRingHit(t *testing.T) {
	// A 400px ring: outer radius 200, inner radius 140.
	size := fyne.NewSize(400, 400)

	tests := []struct {
		name string
		pos  fyne.Position
		want RingRegion
	}{
		{"dead center is the hole", fyne.NewPos(200, 200), RegionHole},
		{"near inner edge resizes", fyne.NewPos(200+135, 200), RegionEdge},
		{"ring body moves", fyne.NewPos(200+170, 200), RegionRing},
		{"near outer edge resizes", fyne.NewPos(200+195, 200), RegionEdge},
		{"bounding corner ignored", fyne.NewPos(2, 2), RegionOutside},
		{"deep in hole ignored", fyne.NewPos(200, 260), RegionHole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RingHit(tt.pos, size, RingEdgeTol); got != tt.want {
				t.Errorf("RingHit(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestRingFromCenterRecomputesFromCenterDistance(t *testing.T) {
	// Ring of size 400 occupying (100,100)-(500,500), center (300,300).
	pos := fyne.NewPos(100, 100)
	size := fyne.NewSize(400, 400)
	center := fyne.NewPos(300, 300)

	// Drag ends with the cursor 300px from the center.
	cursor := fyne.NewPos(600, 300)

	gotPos, gotSize, ok := RingFromCenter(center, cursor, pos, size, MinRingSize)
	if !ok {
		t.Fatalf("RingFromCenter rejected a legal resize")
	}
	if want := fyne.NewSize(600, 600); gotSize != want {
		t.Errorf("size = %v, want %v", gotSize, want)
	}
	// Re-centered on the original center.
	if want := fyne.NewPos(0, 0); gotPos != want {
		t.Errorf("position = %v, want %v", gotPos, want)
	}
}

func TestRingFromCenterRejectsBelowFloor(t *testing.T) {
	pos := fyne.NewPos(100, 100)
	size := fyne.NewSize(400, 400)
	center := fyne.NewPos(300, 300)

	// 40px from center would mean an 80px diameter, below the 100px floor.
	cursor := fyne.NewPos(340, 300)

	gotPos, gotSize, ok := RingFromCenter(center, cursor, pos, size, MinRingSize)
	if ok {
		t.Fatalf("RingFromCenter accepted a diameter below the floor")
	}
	if gotPos != pos || gotSize != size {
		t.Errorf("rejected resize mutated geometry: %v %v", gotPos, gotSize)
	}
}
