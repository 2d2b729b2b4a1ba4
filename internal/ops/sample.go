package ops

import (
	"fmt"
	"image"
)

// RGBColor holds 8-bit color components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor holds a color in HSL space: hue in degrees (0-360), saturation
// and lightness in percent (0-100).
type HSLColor struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ColorSample is one pixel's color in the representations the CLI prints.
type ColorSample struct {
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Hex   string   `json:"hex"`
	RGB   RGBColor `json:"rgb"`
	Alpha uint8    `json:"alpha"`
	HSL   HSLColor `json:"hsl"`
}

// SampleColor reads the pixel at (x, y). Coordinates are 0-based from the
// top-left corner regardless of the image's own bounds origin.
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	bounds := img.Bounds()
	if x < 0 || x >= bounds.Dx() || y < 0 || y >= bounds.Dy() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside %dx%d image", x, y, bounds.Dx(), bounds.Dy())
	}

	r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	return &ColorSample{
		X:     x,
		Y:     y,
		Hex:   fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB:   RGBColor{R: r8, G: g8, B: b8},
		Alpha: a8,
		HSL:   rgbToHSL(r8, g8, b8),
	}, nil
}

// rgbToHSL converts 8-bit RGB to HSL with integer hue degrees and percent
// saturation and lightness.
func rgbToHSL(r, g, b uint8) HSLColor {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxC := max(rf, max(gf, bf))
	minC := min(rf, min(gf, bf))
	l := (maxC + minC) / 2.0

	if maxC == minC {
		return HSLColor{H: 0, S: 0, L: int(l * 100)}
	}

	var s float64
	if l < 0.5 {
		s = (maxC - minC) / (maxC + minC)
	} else {
		s = (maxC - minC) / (2.0 - maxC - minC)
	}

	var h float64
	switch maxC {
	case rf:
		h = (gf - bf) / (maxC - minC)
		if gf < bf {
			h += 6
		}
	case gf:
		h = 2.0 + (bf-rf)/(maxC-minC)
	case bf:
		h = 4.0 + (rf-gf)/(maxC-minC)
	}
	h *= 60

	return HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)}
}
