// Package ui owns the controller that drives the overlay, the context and
// tray menus, and the secondary windows (adjustment dialog, about, logs).
package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"glowbar/light"
	"glowbar/settings"
	"glowbar/surface"
)

// Layout shares of the work area.
const (
	sideWidthFrac  = 0.15 // each side bar's width
	topHeightFrac  = 0.15 // top bar height
	minBorderWidth = int(surface.MinBarSize)
)

// Controller owns the current style, color state and the active surface
// set. All methods run on the UI event loop; there is no locking. Surfaces
// report drags and menu requests back here, the controller mutates shared
// state, rebuilds surfaces when the style changes, and persists committed
// values.
type Controller struct {
	app     fyne.App
	win     fyne.Window
	overlay *fyne.Container // absolutely-positioned surface layer
	store   *settings.Store

	// workArea supplies the usable screen rectangle, queried on every
	// rebuild so a resolution change is picked up by the next style switch.
	workArea func() fyne.Size

	style       surface.Style
	tempK       int
	brightness  float64
	borderWidth int

	ringX, ringY, ringSize int

	active []surface.Surface

	// created tracks every surface over the application lifetime so the
	// close-all sweep can't miss one that was replaced by a style switch.
	created []surface.Surface

	desk        desktop.App // nil when no system tray is available
	clipboardOK bool
}

// NewController loads persisted settings and prepares an empty controller.
// CreateBars must be called once the overlay canvas has a size.
func NewController(app fyne.App, win fyne.Window, overlay *fyne.Container, store *settings.Store, workArea func() fyne.Size) *Controller {
	c := &Controller{
		app:         app,
		win:         win,
		overlay:     overlay,
		store:       store,
		workArea:    workArea,
		style:       surface.ParseStyle(store.String(settings.KeyBarStyle, settings.DefaultBarStyle)),
		tempK:       store.Int(settings.KeyColorTemp, settings.DefaultColorTemp),
		brightness:  store.Float(settings.KeyBrightness, settings.DefaultBrightness),
		borderWidth: store.Int(settings.KeyBorderWidth, settings.DefaultBorderWidth),
		ringX:       store.Int(settings.KeyRingX, settings.DefaultRingPos),
		ringY:       store.Int(settings.KeyRingY, settings.DefaultRingPos),
		ringSize:    store.Int(settings.KeyRingSize, settings.DefaultRingSize),
	}

	log.Printf("[Controller] restored style=%s temp=%dK brightness=%.2f border=%d",
		c.style, c.tempK, c.brightness, c.borderWidth)

	return c
}

// Style returns the active surface layout.
func (c *Controller) Style() surface.Style { return c.style }

// Temperature returns the committed color temperature in Kelvin.
func (c *Controller) Temperature() int { return c.tempK }

// Brightness returns the committed brightness factor.
func (c *Controller) Brightness() float64 { return c.brightness }

// CurrentColor is the committed temperature/brightness pair as RGB.
func (c *Controller) CurrentColor() light.RGB {
	return light.KelvinToRGB(c.tempK).Scale(c.brightness)
}

// CreateBars destroys the active surface set and builds a new one for the
// current style, then applies the current color to every surface.
func (c *Controller) CreateBars() {
	for _, s := range c.active {
		c.overlay.Remove(s)
	}
	c.active = nil

	work := c.workArea()
	log.Printf("[Controller] building %s surfaces for work area %.0fx%.0f", c.style, work.Width, work.Height)

	switch c.style {
	case surface.StyleSides:
		w := work.Width * sideWidthFrac
		c.addBar(surface.RoleLeft, fyne.NewPos(0, 0), fyne.NewSize(w, work.Height))
		c.addBar(surface.RoleRight, fyne.NewPos(work.Width-w, 0), fyne.NewSize(w, work.Height))

	case surface.StyleBorder:
		t := float32(c.borderWidth)
		c.addBar(surface.RoleBorder, fyne.NewPos(0, 0), fyne.NewSize(work.Width, t))
		c.addBar(surface.RoleBorder, fyne.NewPos(0, work.Height-t), fyne.NewSize(work.Width, t))
		c.addBar(surface.RoleBorder, fyne.NewPos(0, t), fyne.NewSize(t, work.Height-2*t))
		c.addBar(surface.RoleBorder, fyne.NewPos(work.Width-t, t), fyne.NewSize(t, work.Height-2*t))

	case surface.StyleTop:
		c.addBar(surface.RoleTop, fyne.NewPos(0, 0), fyne.NewSize(work.Width, work.Height*topHeightFrac))

	case surface.StyleFullscreen:
		c.addBar(surface.RoleFullscreen, fyne.NewPos(0, 0), fyne.NewSize(work.Width, work.Height))

	case surface.StyleRing:
		c.addRing(work)
	}

	c.UpdateColors()
	c.overlay.Refresh()
}

func (c *Controller) addBar(role surface.Role, pos fyne.Position, size fyne.Size) {
	bar := surface.NewLightBar(role, c.CurrentColor().NRGBA())
	bar.OnMenu = c.ShowMenu
	if role == surface.RoleBorder {
		bar.OnBorderResize = c.ResizeBorder
	}

	c.overlay.Add(bar)
	bar.Resize(size)
	bar.Move(pos)

	c.active = append(c.active, bar)
	c.created = append(c.created, bar)
}

func (c *Controller) addRing(work fyne.Size) {
	size := float32(c.ringSize)
	if size < surface.MinRingSize {
		size = settings.DefaultRingSize
	}

	// Persisted position, centered on the work area when unset.
	x, y := float32(c.ringX), float32(c.ringY)
	if c.ringX < 0 || c.ringY < 0 {
		x = (work.Width - size) / 2
		y = (work.Height - size) / 2
	}

	ring := surface.NewRingLight(c.CurrentColor().NRGBA())
	ring.OnMenu = c.ShowMenu
	ring.OnCommit = c.CommitRing

	c.overlay.Add(ring)
	ring.Resize(fyne.NewSize(size, size))
	ring.Move(fyne.NewPos(x, y))

	c.active = append(c.active, ring)
	c.created = append(c.created, ring)
}

// SetStyle persists the style and rebuilds the surface set.
func (c *Controller) SetStyle(style surface.Style) {
	log.Printf("[Controller] style %s -> %s", c.style, style)
	c.style = style
	c.store.SetString(settings.KeyBarStyle, string(style))
	c.CreateBars()
	c.refreshTray()
}

// SetTemperature commits a new color temperature and recolors every
// surface. Called on every slider tick.
func (c *Controller) SetTemperature(tempK int) {
	c.tempK = tempK
	c.store.SetInt(settings.KeyColorTemp, tempK)
	c.UpdateColors()
}

// SetBrightness commits a new brightness factor and recolors every
// surface. Called on every slider tick.
func (c *Controller) SetBrightness(factor float64) {
	c.brightness = factor
	c.store.SetFloat(settings.KeyBrightness, factor)
	c.UpdateColors()
}

// UpdateColors pushes the committed color to every active surface and the
// tray icon. After it returns no surface shows a stale color.
func (c *Controller) UpdateColors() {
	rgb := c.CurrentColor()
	fill := rgb.NRGBA()
	for _, s := range c.active {
		s.SetColor(fill)
	}
	if c.desk != nil {
		c.desk.SetSystemTrayIcon(swatchResource(rgb))
	}
}

// ResizeBorder commits a new shared border thickness and rebuilds all four
// border bars at it, so resizing one edge resizes every side. A thickness
// below the floor is ignored and the previous committed value kept.
func (c *Controller) ResizeBorder(thickness int) {
	if thickness < minBorderWidth {
		log.Printf("[Controller] border resize to %d ignored (floor %d)", thickness, minBorderWidth)
		return
	}
	if thickness == c.borderWidth {
		return
	}

	c.borderWidth = thickness
	c.store.SetInt(settings.KeyBorderWidth, thickness)
	if c.style == surface.StyleBorder {
		c.CreateBars()
	}
}

// CommitRing persists the ring geometry on drag release.
func (c *Controller) CommitRing(x, y, size int) {
	c.ringX, c.ringY, c.ringSize = x, y, size
	c.store.SetInt(settings.KeyRingX, x)
	c.store.SetInt(settings.KeyRingY, y)
	c.store.SetInt(settings.KeyRingSize, size)
}

// CloseAll removes every surface created over the application's lifetime
// and terminates the event loop. Surfaces already gone from the overlay are
// skipped silently.
func (c *Controller) CloseAll() {
	log.Printf("[Controller] close all: sweeping %d surfaces", len(c.created))
	for _, s := range c.created {
		c.overlay.Remove(s)
	}
	c.active = nil

	c.win.Close()
	c.app.Quit()
}

// EnableClipboard marks the system clipboard as usable; until then the
// copy menu item stays disabled.
func (c *Controller) EnableClipboard() {
	c.clipboardOK = true
}
