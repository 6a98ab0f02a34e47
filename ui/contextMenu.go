package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"golang.design/x/clipboard"

	"glowbar/surface"
)

// ShowMenu pops the context menu at the given absolute position. Every
// surface wires its right click here.
func (c *Controller) ShowMenu(at fyne.Position) {
	pop := widget.NewPopUpMenu(c.buildMenu(), c.win.Canvas())
	pop.ShowAtPosition(at)
}

// buildMenu assembles the shared context/tray menu reflecting the current
// style selection.
func (c *Controller) buildMenu() *fyne.Menu {
	adjust := fyne.NewMenuItem("Adjust Light...", func() {
		log.Println("[UI] Adjustment dialog opened")
		c.ShowAdjustDialog()
	})

	styleItems := make([]*fyne.MenuItem, 0, len(surface.Styles()))
	for _, s := range surface.Styles() {
		item := fyne.NewMenuItem(s.Label(), func() {
			log.Printf("[UI] Style %s selected", s)
			c.SetStyle(s)
		})
		item.Checked = s == c.style
		styleItems = append(styleItems, item)
	}
	styleMenu := fyne.NewMenuItem("Style", nil)
	styleMenu.ChildMenu = fyne.NewMenu("", styleItems...)

	copyHex := fyne.NewMenuItem("Copy Color as Hex", c.copyColorHex)
	copyHex.Disabled = !c.clipboardOK

	logs := fyne.NewMenuItem("View Logs", func() {
		log.Println("[UI] Log window opened")
		ShowLogWindow(c.app)
	})

	about := fyne.NewMenuItem("About", func() {
		log.Println("[UI] About dialog opened")
		ShowAboutDialog(c.app)
	})

	closeAll := fyne.NewMenuItem("Close All", c.CloseAll)

	return fyne.NewMenu("glowbar",
		adjust,
		styleMenu,
		fyne.NewMenuItemSeparator(),
		copyHex,
		logs,
		about,
		fyne.NewMenuItemSeparator(),
		closeAll,
	)
}

// copyColorHex puts the committed color on the system clipboard as #rrggbb.
func (c *Controller) copyColorHex() {
	hex := c.CurrentColor().Hex()
	clipboard.Write(clipboard.FmtText, []byte(hex))
	log.Printf("[UI] Copied %s to clipboard", hex)
}
