package light

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKelvinToRGBChannelsInRange(t *testing.T) {
	// Every channel must stay in [0,255] across the whole slider range.
	// uint8 can't overflow, so check the float math via known anchors and
	// monotonic warm-to-cool behavior instead of just type bounds.
	for k := MinKelvin; k <= MaxKelvin; k += 50 {
		c := KelvinToRGB(k)
		if c.R == 0 {
			t.Errorf("KelvinToRGB(%d): red channel collapsed to 0", k)
		}
		if c.G == 0 {
			t.Errorf("KelvinToRGB(%d): green channel collapsed to 0", k)
		}
	}
}

func TestKelvinToRGBAnchors(t *testing.T) {
	tests := []struct {
		name  string
		tempK int
		want  RGB
	}{
		// Below the 66-mark the red channel is pinned to 255.
		{"warm 2700K", 2700, RGB{R: 255, G: 166, B: 87}},
		{"neutral default 4000K", 4000, RGB{R: 255, G: 205, B: 166}},
		{"cool ceiling 6500K", 6500, RGB{R: 255, G: 254, B: 250}},
		// At 6600K (t = 66) blue saturates to exactly 255.
		{"blue saturation 6600K", 6600, RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KelvinToRGB(tt.tempK)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("KelvinToRGB(%d) mismatch (-want +got):\n%s", tt.tempK, diff)
			}
		})
	}
}

func TestKelvinToRGBWarmerIsRedder(t *testing.T) {
	warm := KelvinToRGB(2700)
	cool := KelvinToRGB(6500)

	if warm.B >= cool.B {
		t.Errorf("expected warm blue (%d) < cool blue (%d)", warm.B, cool.B)
	}
	if warm.G >= cool.G {
		t.Errorf("expected warm green (%d) < cool green (%d)", warm.G, cool.G)
	}
}

func TestScaleIdentity(t *testing.T) {
	c := RGB{R: 255, G: 166, B: 87}
	if got := c.Scale(1.0); got != c {
		t.Errorf("Scale(1.0) = %+v, want identity %+v", got, c)
	}
}

func TestScaleToBlack(t *testing.T) {
	c := RGB{R: 255, G: 205, B: 166}
	want := RGB{}
	if got := c.Scale(0.0); got != want {
		t.Errorf("Scale(0.0) = %+v, want %+v", got, want)
	}
	if got := c.Scale(0.0).Hex(); got != "#000000" {
		t.Errorf("Scale(0.0).Hex() = %q, want #000000", got)
	}
}

func TestScaleClampsHigh(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}
	got := c.Scale(2.0)
	want := RGB{R: 255, G: 200, B: 100}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scale(2.0) mismatch (-want +got):\n%s", diff)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{R: 255, G: 166, B: 87}, "#ffa657"},
		{RGB{}, "#000000"},
		{RGB{R: 255, G: 255, B: 255}, "#ffffff"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestLuminanceOrdering(t *testing.T) {
	white := RGB{R: 255, G: 255, B: 255}
	black := RGB{}

	if got := white.Luminance(); got < 0.99 {
		t.Errorf("white luminance = %f, want ~1.0", got)
	}
	if got := black.Luminance(); got != 0 {
		t.Errorf("black luminance = %f, want 0", got)
	}

	// Cooler temperatures are never darker than warmer ones.
	prev := KelvinToRGB(MinKelvin).Luminance()
	for k := MinKelvin + 100; k <= MaxKelvin; k += 100 {
		cur := KelvinToRGB(k).Luminance()
		if cur < prev {
			t.Errorf("luminance dropped from %f to %f at %dK", prev, cur, k)
		}
		prev = cur
	}
}
