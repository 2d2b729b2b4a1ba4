package pixbuf

import (
	"fmt"
	"image"
	"image/color"

	"github.com/pixelkit/bmpfile/bmp"
)

// ToImage copies a codec buffer into a standard image. Mono8 becomes
// *image.Gray, BGR8 and BGRA8 become *image.NRGBA. The returned image is
// top-down regardless of the buffer orientation.
func ToImage(buffer []byte, props bmp.ImageProperties) (image.Image, error) {
	size := bmp.ComputeBufferSize(props)
	if size == 0 || props.Orientation == bmp.OrientationInvalid {
		return nil, fmt.Errorf("pixbuf: properties do not describe an image")
	}
	if len(buffer) < size {
		return nil, fmt.Errorf("pixbuf: buffer holds %d bytes, image needs %d", len(buffer), size)
	}

	width := int(props.Width)
	height := int(props.Height)
	stride := width*props.PixelFormat.BytesPerPixel() + props.LinePadding
	srcRow := func(y int) int {
		if props.Orientation == bmp.BottomUp {
			return (height - 1 - y) * stride
		}
		return y * stride
	}

	switch props.PixelFormat {
	case bmp.Mono8:
		img := image.NewGray(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+width], buffer[srcRow(y):srcRow(y)+width])
		}
		return img, nil

	case bmp.BGR8:
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			src := srcRow(y)
			dst := y * img.Stride
			for x := 0; x < width; x++ {
				img.Pix[dst] = buffer[src+2]   // R
				img.Pix[dst+1] = buffer[src+1] // G
				img.Pix[dst+2] = buffer[src]   // B
				img.Pix[dst+3] = 255
				src += 3
				dst += 4
			}
		}
		return img, nil

	case bmp.BGRA8:
		img := image.NewNRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			src := srcRow(y)
			dst := y * img.Stride
			for x := 0; x < width; x++ {
				img.Pix[dst] = buffer[src+2]
				img.Pix[dst+1] = buffer[src+1]
				img.Pix[dst+2] = buffer[src]
				img.Pix[dst+3] = buffer[src+3]
				src += 4
				dst += 4
			}
		}
		return img, nil
	}
	return nil, fmt.Errorf("pixbuf: pixel format %v not convertible", props.PixelFormat)
}

// FromImage copies a standard image into a fresh codec buffer. Grayscale
// images become Mono8, everything else BGRA8. The buffer is top-down with
// no line padding.
func FromImage(img image.Image) ([]byte, bmp.ImageProperties, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, bmp.ImageProperties{}, fmt.Errorf("pixbuf: image is empty")
	}

	props := bmp.ImageProperties{
		Width:       uint32(width),
		Height:      uint32(height),
		Orientation: bmp.TopDown,
	}

	if gray, ok := img.(*image.Gray); ok {
		props.PixelFormat = bmp.Mono8
		buffer := make([]byte, bmp.ComputeBufferSize(props))
		for y := 0; y < height; y++ {
			copy(buffer[y*width:(y+1)*width], gray.Pix[y*gray.Stride:y*gray.Stride+width])
		}
		return buffer, props, nil
	}

	props.PixelFormat = bmp.BGRA8
	buffer := make([]byte, bmp.ComputeBufferSize(props))
	off := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buffer[off] = c.B
			buffer[off+1] = c.G
			buffer[off+2] = c.R
			buffer[off+3] = c.A
			off += 4
		}
	}
	return buffer, props, nil
}
