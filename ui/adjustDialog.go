package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"glowbar/light"
)

// ShowAdjustDialog opens the modal temperature/brightness popup. Both
// sliders commit on every tick: the controller updates, persists and
// recolors immediately rather than waiting for release.
func (c *Controller) ShowAdjustDialog() {
	// Live preview swatch with the hex value overlaid in a
	// luminance-contrasted label.
	preview := canvas.NewRectangle(c.CurrentColor().NRGBA())
	preview.SetMinSize(fyne.NewSize(0, 64))

	hexText := canvas.NewText(c.CurrentColor().Hex(), labelColorFor(c.CurrentColor()))
	hexText.TextStyle = fyne.TextStyle{Monospace: true}

	tempValue := widget.NewLabel(fmt.Sprintf("%d K", c.Temperature()))
	brightValue := widget.NewLabel(fmt.Sprintf("%d%%", int(c.Brightness()*100+0.5)))

	refreshPreview := func() {
		rgb := c.CurrentColor()
		preview.FillColor = rgb.NRGBA()
		preview.Refresh()
		hexText.Text = rgb.Hex()
		hexText.Color = labelColorFor(rgb)
		hexText.Refresh()
	}

	tempSlider := widget.NewSlider(light.MinKelvin, light.MaxKelvin)
	tempSlider.Step = 100
	tempSlider.SetValue(float64(c.Temperature()))
	tempSlider.OnChanged = func(v float64) {
		c.SetTemperature(int(v))
		tempValue.SetText(fmt.Sprintf("%d K", int(v)))
		refreshPreview()
	}

	brightSlider := widget.NewSlider(light.MinBrightness, light.MaxBrightness)
	brightSlider.Step = 0.05
	brightSlider.SetValue(c.Brightness())
	brightSlider.OnChanged = func(v float64) {
		c.SetBrightness(v)
		brightValue.SetText(fmt.Sprintf("%d%%", int(v*100+0.5)))
		refreshPreview()
	}

	content := container.NewVBox(
		container.NewStack(preview, container.NewCenter(hexText)),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, widget.NewLabel("Temperature"), tempValue, tempSlider),
		container.NewBorder(nil, nil, widget.NewLabel("Brightness"), brightValue, brightSlider),
	)

	d := dialog.NewCustom("Adjust Light", "Done", content, c.win)
	d.Resize(fyne.NewSize(440, 260))
	d.Show()
}

// labelColorFor picks black or white for text over a swatch of rgb.
func labelColorFor(rgb light.RGB) color.Color {
	if rgb.Luminance() > 0.5 {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
