package pixbuf

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pixelkit/bmpfile/bmp"
)

// Gradient test-card endpoints, blended in Luv space for a perceptually
// even sweep.
var (
	gradientStart, _ = colorful.Hex("#2a4858")
	gradientEnd, _   = colorful.Hex("#fafa6e")
)

// Gradient builds a BGR8 test card: a horizontal color sweep that darkens
// toward the bottom. Returned top-down with no line padding.
func Gradient(width, height int) ([]byte, bmp.ImageProperties) {
	props := bmp.ImageProperties{
		Width:       uint32(width),
		Height:      uint32(height),
		PixelFormat: bmp.BGR8,
		Orientation: bmp.TopDown,
	}
	buffer := make([]byte, bmp.ComputeBufferSize(props))

	off := 0
	for y := 0; y < height; y++ {
		shade := 1.0 - 0.6*float64(y)/float64(max(height-1, 1))
		for x := 0; x < width; x++ {
			c := gradientStart.BlendLuv(gradientEnd, float64(x)/float64(max(width-1, 1)))
			h, s, v := c.Hsv()
			r, g, b := colorful.Hsv(h, s, v*shade).RGB255()
			buffer[off] = b
			buffer[off+1] = g
			buffer[off+2] = r
			off += 3
		}
	}
	return buffer, props
}

// Ramp builds a Mono8 test card where pixel (x, y) has luminance
// (x + y) mod 256. Returned top-down with no line padding.
func Ramp(width, height int) ([]byte, bmp.ImageProperties) {
	props := bmp.ImageProperties{
		Width:       uint32(width),
		Height:      uint32(height),
		PixelFormat: bmp.Mono8,
		Orientation: bmp.TopDown,
	}
	buffer := make([]byte, bmp.ComputeBufferSize(props))

	off := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buffer[off] = uint8(x + y)
			off++
		}
	}
	return buffer, props
}
