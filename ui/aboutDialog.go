package ui

import (
	"glowbar/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func ShowAboutDialog(glowApp fyne.App) {
	title := widget.NewLabel("glowbar")
	title.TextStyle = fyne.TextStyle{Bold: true}

	version := widget.NewLabel(
		"Version: " + config.Version +
			"\nCommit: " + config.GitCommit +
			"\nBuilt: " + config.BuildTime,
	)

	version.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(
		"Adjustable on-screen selfie light for video calls.",
	)
	description.Wrapping = fyne.TextWrapWord

	features := widget.NewLabel(
		"Features:\n" +
			"• Side, border, top, fullscreen and ring layouts\n" +
			"• Color temperature from candlelight to daylight\n" +
			"• Drag to move, drag an edge to resize\n" +
			"• Right-click any light for the menu\n" +
			"• Settings kept between sessions\n" +
			"• Cross-platform support",
	)
	features.Wrapping = fyne.TextWrapWord

	// Centered bold title
	centeredTitle := container.NewCenter(title)

	// centered version
	centeredVersion := container.NewCenter(version)

	// Declare window first so the close button can reference it
	var aboutWin fyne.Window
	closeBtn := widget.NewButton("Close", func() {
		aboutWin.Close()
	})

	mainContent := container.NewVBox(
		centeredTitle,
		centeredVersion,
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		features,
	)

	scroll := container.NewScroll(mainContent)

	// Bottom area: separator + centered Close button
	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewCenter(closeBtn),
	)

	content := container.NewBorder(nil, bottom, nil, nil, scroll)

	aboutWin = glowApp.NewWindow("About glowbar")
	aboutWin.SetContent(content)
	aboutWin.Resize(fyne.NewSize(400, 400))
	aboutWin.SetFixedSize(true)
	aboutWin.Show()
}
