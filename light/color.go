package light

import (
	"fmt"
	"image/color"
	"math"
)

// Slider-enforced input ranges. The conversion functions below are total
// over these ranges but do not re-validate them; the UI owns clamping.
const (
	MinKelvin = 2700
	MaxKelvin = 6500

	MinBrightness = 0.1
	MaxBrightness = 1.0
)

// RGB is a single 8-bit-per-channel color value.
type RGB struct {
	R, G, B uint8
}

// KelvinToRGB converts a color temperature in Kelvin to an RGB color using
// the Tanner Helland piecewise approximation of the Planckian locus.
// At 6600K and above every channel saturates toward white; lower
// temperatures shift warm (2700K is roughly 255/166/87).
func KelvinToRGB(tempK int) RGB {
	t := float64(tempK) / 100.0

	var r, g, b float64

	// Red
	if t <= 66 {
		r = 255
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
	}

	// Green
	if t <= 66 {
		g = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}

	// Blue
	if t >= 66 {
		b = 255
	} else if t <= 19 {
		b = 0
	} else {
		b = 138.5177312231*math.Log(t-10) - 305.0447927307
	}

	return RGB{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}
}

// Scale multiplies each channel by factor, clamped to [0,255].
// Scale(1.0) is the identity; Scale(0) is black.
func (c RGB) Scale(factor float64) RGB {
	return RGB{
		R: clampChannel(float64(c.R) * factor),
		G: clampChannel(float64(c.G) * factor),
		B: clampChannel(float64(c.B) * factor),
	}
}

// Hex returns the color as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA returns the color as an opaque image/color value for canvas fills.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Luminance returns the WCAG 2.0 relative luminance in [0,1].
// Used to pick a readable text color over a swatch of this color.
func (c RGB) Luminance() float64 {
	rLin := linearize(float64(c.R) / 255.0)
	gLin := linearize(float64(c.G) / 255.0)
	bLin := linearize(float64(c.B) / 255.0)

	return 0.2126*rLin + 0.7152*gLin + 0.0722*bLin
}

// linearize converts an sRGB channel value to linear RGB
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// clampChannel truncates to an integer channel value in [0,255]
func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
