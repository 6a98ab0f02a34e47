// Package surface implements the on-screen light surfaces: rectangular
// light bars and the ring light. Each surface is a Fyne widget positioned
// absolutely inside the overlay canvas and owns its own drag/resize
// interaction state machine. Surfaces never touch settings or global state;
// they report through callbacks wired up by the controller.
package surface

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// KeyColor is the designated transparency key. The overlay background and
// the ring's punched-out center are painted with it; a compositor rule
// keying out this color makes those areas see-through.
var KeyColor = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// Style selects the composition of the active surface set.
type Style string

const (
	StyleSides      Style = "sides"
	StyleBorder     Style = "border"
	StyleTop        Style = "top"
	StyleFullscreen Style = "fullscreen"
	StyleRing       Style = "ring"
)

// Styles lists every style in menu order.
func Styles() []Style {
	return []Style{StyleSides, StyleBorder, StyleTop, StyleFullscreen, StyleRing}
}

// ParseStyle maps a stored style name back to a Style, falling back to
// StyleSides for anything unrecognized.
func ParseStyle(name string) Style {
	for _, s := range Styles() {
		if name == string(s) {
			return s
		}
	}
	return StyleSides
}

// Label returns the human-readable menu label for the style.
func (s Style) Label() string {
	switch s {
	case StyleSides:
		return "Side Bars"
	case StyleBorder:
		return "Border"
	case StyleTop:
		return "Top Bar"
	case StyleFullscreen:
		return "Fullscreen"
	case StyleRing:
		return "Ring Light"
	}
	return string(s)
}

// Role tags a surface with its place in the current style's layout.
type Role int

const (
	RoleGeneric Role = iota
	RoleLeft
	RoleRight
	RoleBorder
	RoleTop
	RoleFullscreen
	RoleRing
)

func (r Role) String() string {
	switch r {
	case RoleLeft:
		return "left"
	case RoleRight:
		return "right"
	case RoleBorder:
		return "border"
	case RoleTop:
		return "top"
	case RoleFullscreen:
		return "fullscreen"
	case RoleRing:
		return "ring"
	}
	return "generic"
}

// InteractionState is the per-surface input state machine. Discrete input
// events (press, drag tick, release) drive the transitions; while Resizing
// the active edge is tracked alongside.
type InteractionState int

const (
	StateIdle InteractionState = iota
	StateMoving
	StateResizing
)

// Surface is the controller's view of one light surface.
type Surface interface {
	fyne.CanvasObject

	Role() Role
	SetColor(c color.Color)
}
