package surface

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
)

func press(pos fyne.Position) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:     desktop.MouseButtonPrimary,
	}
}

func dragTick(pos fyne.Position, dx, dy float32) *fyne.DragEvent {
	return &fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Dragged:    fyne.Delta{DX: dx, DY: dy},
	}
}

func newTestBar(role Role) *LightBar {
	b := NewLightBar(role, color.NRGBA{R: 0xff, A: 0xff})
	b.Resize(fyne.NewSize(200, 400))
	b.Move(fyne.NewPos(50, 60))
	return b
}

func TestBarBodyDragMoves(t *testing.T) {
	test.NewApp()
	b := newTestBar(RoleGeneric)

	b.MouseDown(press(fyne.NewPos(100, 200)))
	b.Dragged(dragTick(fyne.NewPos(100, 200), 10, -5))
	b.DragEnd()

	if want := fyne.NewPos(60, 55); b.Position() != want {
		t.Errorf("position after move = %v, want %v", b.Position(), want)
	}
	if want := fyne.NewSize(200, 400); b.Size() != want {
		t.Errorf("size changed during move: %v", b.Size())
	}
}

func TestBarEdgeDragResizesWithAnchor(t *testing.T) {
	test.NewApp()
	b := newTestBar(RoleGeneric)

	// Press within the left edge margin, drag 20px right.
	b.MouseDown(press(fyne.NewPos(5, 200)))
	b.Dragged(dragTick(fyne.NewPos(25, 200), 20, 0))
	b.DragEnd()

	if want := fyne.NewPos(70, 60); b.Position() != want {
		t.Errorf("position = %v, want %v", b.Position(), want)
	}
	if want := fyne.NewSize(180, 400); b.Size() != want {
		t.Errorf("size = %v, want %v", b.Size(), want)
	}
	// Right edge still at x=250.
	if got := b.Position().X + b.Size().Width; got != 250 {
		t.Errorf("right edge moved to %f, want 250", got)
	}
}

func TestBarResizeBelowFloorKeepsGeometry(t *testing.T) {
	test.NewApp()
	b := NewLightBar(RoleGeneric, color.White)
	b.Resize(fyne.NewSize(30, 400))
	b.Move(fyne.NewPos(50, 60))

	b.MouseDown(press(fyne.NewPos(2, 200)))
	b.Dragged(dragTick(fyne.NewPos(17, 200), 15, 0))
	b.DragEnd()

	if want := fyne.NewPos(50, 60); b.Position() != want {
		t.Errorf("rejected resize moved the bar to %v", b.Position())
	}
	if want := fyne.NewSize(30, 400); b.Size() != want {
		t.Errorf("rejected resize changed size to %v", b.Size())
	}
}

func TestBorderBarReportsThicknessInsteadOfResizing(t *testing.T) {
	test.NewApp()

	var reported []int
	b := NewLightBar(RoleBorder, color.White)
	b.OnBorderResize = func(thickness int) { reported = append(reported, thickness) }
	b.Resize(fyne.NewSize(100, 600))
	b.Move(fyne.NewPos(0, 100))

	// Drag the inner (right) edge outward by 25.
	b.MouseDown(press(fyne.NewPos(95, 300)))
	b.Dragged(dragTick(fyne.NewPos(120, 300), 25, 0))
	b.DragEnd()

	if len(reported) != 1 || reported[0] != 125 {
		t.Fatalf("reported thicknesses = %v, want [125]", reported)
	}
	// The bar itself doesn't resize; the controller rebuilds all four.
	if want := fyne.NewSize(100, 600); b.Size() != want {
		t.Errorf("border bar resized itself to %v", b.Size())
	}
}

func TestBarCursorFeedback(t *testing.T) {
	test.NewApp()
	b := newTestBar(RoleGeneric)

	b.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(3, 200)}})
	if b.Cursor() != desktop.HResizeCursor {
		t.Errorf("cursor over left edge = %v, want HResizeCursor", b.Cursor())
	}

	b.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 398)}})
	if b.Cursor() != desktop.VResizeCursor {
		t.Errorf("cursor over bottom edge = %v, want VResizeCursor", b.Cursor())
	}

	b.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 200)}})
	if b.Cursor() != desktop.DefaultCursor {
		t.Errorf("cursor over body = %v, want DefaultCursor", b.Cursor())
	}

	b.MouseOut()
	if b.Cursor() != desktop.DefaultCursor {
		t.Errorf("cursor after MouseOut = %v, want DefaultCursor", b.Cursor())
	}
}
