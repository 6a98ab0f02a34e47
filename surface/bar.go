package surface

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// LightBar is one rectangular light surface. It can be moved by dragging
// its body and resized by dragging within EdgeMargin of any edge. Bars with
// RoleBorder don't resize themselves; every resize tick reports the
// candidate thickness to the controller, which rebuilds all four border
// bars at that thickness.
type LightBar struct {
	widget.BaseWidget

	role Role
	fill color.Color

	state     InteractionState
	edge      Edge // active edge while StateResizing
	hoverEdge Edge // cursor feedback while StateIdle

	// OnBorderResize receives the candidate thickness for border-role
	// resize ticks. Set by the controller for RoleBorder bars only.
	OnBorderResize func(thickness int)

	// OnMenu is invoked with the absolute pointer position on right click.
	OnMenu func(at fyne.Position)
}

// NewLightBar creates a bar with the given role and initial fill color.
func NewLightBar(role Role, fill color.Color) *LightBar {
	b := &LightBar{role: role, fill: fill}
	b.ExtendBaseWidget(b)
	return b
}

func (b *LightBar) Role() Role { return b.role }

// SetColor replaces the fill synchronously.
func (b *LightBar) SetColor(c color.Color) {
	b.fill = c
	b.Refresh()
}

// Color returns the current fill.
func (b *LightBar) Color() color.Color { return b.fill }

func (b *LightBar) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(b.fill)
	return &barRenderer{bar: b, rect: rect}
}

// MouseDown starts a move or an edge resize depending on where the press
// landed.
func (b *LightBar) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}

	edge := DetectEdge(ev.Position, b.Size(), EdgeMargin)
	if edge == EdgeNone {
		b.state = StateMoving
	} else {
		b.state = StateResizing
		b.edge = edge
	}
}

func (b *LightBar) MouseUp(ev *desktop.MouseEvent) {
	b.state = StateIdle
}

// Dragged applies one move or resize tick according to the current state.
func (b *LightBar) Dragged(ev *fyne.DragEvent) {
	if b.state == StateIdle {
		// Drag arrived without a press classification (touch input);
		// classify from the first drag position.
		b.MouseDown(&desktop.MouseEvent{PointEvent: ev.PointEvent, Button: desktop.MouseButtonPrimary})
	}

	switch b.state {
	case StateMoving:
		b.Move(b.Position().Add(fyne.NewPos(ev.Dragged.DX, ev.Dragged.DY)))
	case StateResizing:
		b.resizeTick(ev.Dragged)
	}
}

func (b *LightBar) DragEnd() {
	if b.state != StateIdle {
		log.Printf("[Surface] %s bar released at %.0f,%.0f size %.0fx%.0f",
			b.role, b.Position().X, b.Position().Y, b.Size().Width, b.Size().Height)
	}
	b.state = StateIdle
}

func (b *LightBar) resizeTick(delta fyne.Delta) {
	if b.role == RoleBorder && b.OnBorderResize != nil {
		// The shared border thickness follows the dimension this edge
		// changes; the controller enforces the floor and rebuilds all four
		// bars.
		_, size, ok := ResizeEdge(b.Position(), b.Size(), b.edge, delta, 1)
		if !ok {
			return
		}
		thickness := size.Width
		if b.edge == EdgeTop || b.edge == EdgeBottom {
			thickness = size.Height
		}
		b.OnBorderResize(int(thickness))
		return
	}

	pos, size, ok := ResizeEdge(b.Position(), b.Size(), b.edge, delta, MinBarSize)
	if !ok {
		return
	}
	b.Move(pos)
	b.Resize(size)
}

// TappedSecondary opens the context menu.
func (b *LightBar) TappedSecondary(ev *fyne.PointEvent) {
	if b.OnMenu != nil {
		b.OnMenu(ev.AbsolutePosition)
	}
}

// MouseIn implements desktop.Hoverable.
func (b *LightBar) MouseIn(ev *desktop.MouseEvent) {
	b.hoverEdge = DetectEdge(ev.Position, b.Size(), EdgeMargin)
}

// MouseMoved updates cursor feedback only; no geometry changes while idle.
func (b *LightBar) MouseMoved(ev *desktop.MouseEvent) {
	if b.state != StateIdle {
		return
	}
	b.hoverEdge = DetectEdge(ev.Position, b.Size(), EdgeMargin)
}

func (b *LightBar) MouseOut() {
	b.hoverEdge = EdgeNone
}

// Cursor implements desktop.Cursorable with resize arrows over the edges.
func (b *LightBar) Cursor() desktop.Cursor {
	switch b.hoverEdge {
	case EdgeLeft, EdgeRight:
		return desktop.HResizeCursor
	case EdgeTop, EdgeBottom:
		return desktop.VResizeCursor
	}
	return desktop.DefaultCursor
}

type barRenderer struct {
	bar  *LightBar
	rect *canvas.Rectangle
}

func (r *barRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
}

func (r *barRenderer) MinSize() fyne.Size {
	return fyne.NewSize(MinBarSize, MinBarSize)
}

func (r *barRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect}
}

func (r *barRenderer) Refresh() {
	r.rect.FillColor = r.bar.fill
	r.rect.Refresh()
}

func (r *barRenderer) Destroy() {}
