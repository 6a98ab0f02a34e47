package ui

import (
	"bytes"
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"glowbar/light"
)

const (
	swatchRenderSize = 64 // swatch is drawn large then scaled down
	trayIconSize     = 22
)

// SetupTray installs the system tray icon and menu where the platform
// supports one. The icon is a swatch of the current light color so the app
// stays reachable even when every surface is parked at a screen edge.
func (c *Controller) SetupTray() {
	desk, ok := c.app.(desktop.App)
	if !ok {
		log.Println("[UI] no system tray support on this platform")
		return
	}

	c.desk = desk
	desk.SetSystemTrayMenu(c.buildMenu())
	desk.SetSystemTrayIcon(swatchResource(c.CurrentColor()))
}

// refreshTray rebuilds the tray menu so the style check mark follows the
// current selection.
func (c *Controller) refreshTray() {
	if c.desk != nil {
		c.desk.SetSystemTrayMenu(c.buildMenu())
	}
}

// swatchResource renders a solid swatch of the given color as a PNG
// resource sized for the tray.
func swatchResource(rgb light.RGB) fyne.Resource {
	src := imaging.New(swatchRenderSize, swatchRenderSize, rgb.NRGBA())

	dst := image.NewRGBA(image.Rect(0, 0, trayIconSize, trayIconSize))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, imaging.PNG); err != nil {
		log.Printf("[UI] failed to encode tray swatch: %v", err)
		return fyne.NewStaticResource("glowbar-swatch.png", nil)
	}
	return fyne.NewStaticResource("glowbar-"+rgb.Hex()+".png", buf.Bytes())
}
