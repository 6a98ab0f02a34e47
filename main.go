package main

// Application initialization only. The pieces live in their own packages:
//
// - light/    : color temperature to RGB conversion and brightness scaling
// - settings/ : persisted scalar settings over the platform preferences store
// - surface/  : the draggable/resizable light bar and ring light widgets
// - ui/       : controller, context/tray menus, dialogs, log viewer
// - config/   : config directory, rotating file log, build version info

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"golang.design/x/clipboard"

	"glowbar/config"
	"glowbar/settings"
	"glowbar/surface"
	"glowbar/ui"
)

// fallbackWorkArea stands in until the overlay canvas has been laid out.
var fallbackWorkArea = fyne.NewSize(1920, 1080)

func main() {

	glowApp := app.NewWithID("com.backyard.glowbar") // must match your AppMetadata.ID

	glowMetadata := fyne.AppMetadata{
		ID:      "com.backyard.glowbar",
		Name:    "glowbar",
		Version: config.Version,
	}

	app.SetMetadata(glowMetadata)

	if err := config.InitLogging(); err != nil {
		log.Printf("file logging unavailable: %v", err)
	}
	defer config.CloseLogging()

	// The overlay window: borderless and fullscreen where the driver
	// supports it. Failure to create it is fatal and propagates as a
	// normal startup crash.
	var overlayWindow fyne.Window
	if drv, ok := glowApp.Driver().(desktop.Driver); ok {
		overlayWindow = drv.CreateSplashWindow()
	} else {
		overlayWindow = glowApp.NewWindow("glowbar")
	}
	overlayWindow.SetPadded(false)
	overlayWindow.SetFullScreen(true)

	// Background in the transparency key color; a compositor rule keying
	// it out leaves only the light surfaces visible.
	background := canvas.NewRectangle(surface.KeyColor)
	overlay := container.NewWithoutLayout()
	overlayWindow.SetContent(container.NewStack(background, overlay))

	store := settings.NewStore(glowApp.Preferences())

	workArea := func() fyne.Size {
		size := overlayWindow.Canvas().Size()
		if size.Width < 1 || size.Height < 1 {
			return fallbackWorkArea
		}
		return size
	}

	controller := ui.NewController(glowApp, overlayWindow, overlay, store, workArea)

	// Clipboard is optional; the copy menu item stays disabled without it.
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		controller.EnableClipboard()
	}

	controller.SetupTray()

	// Build the initial surface set once the canvas has its size.
	glowApp.Lifecycle().SetOnStarted(func() {
		fyne.Do(func() {
			controller.CreateBars()
		})
	})

	overlayWindow.SetCloseIntercept(func() {
		log.Println("[UI] overlay closed, shutting down")
		controller.CloseAll()
	})

	overlayWindow.ShowAndRun()
}
