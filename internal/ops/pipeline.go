package ops

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Options selects the operations Apply performs. Zero values mean "skip".
type Options struct {
	// CropRegion names a region to cut out first: one of the quadrants
	// ("top-left", "top-right", "bottom-left", "bottom-right"), a half
	// ("top-half", "bottom-half", "left-half", "right-half") or "center"
	// (the middle 50%). Empty keeps the full image.
	CropRegion string

	// ResizeWidth and ResizeHeight rescale the image with a Lanczos
	// filter. Both must be positive to take effect.
	ResizeWidth  int
	ResizeHeight int

	// FlipV mirrors the image vertically.
	FlipV bool

	// Brightness shifts luminance; the useful range is -1.0 to 1.0.
	Brightness float64

	// Contrast scales the distance from mid-gray; the useful range is
	// -1.0 to 1.0.
	Contrast float64

	// Sharpen strengthens edges when positive.
	Sharpen float64

	// BlurRadius applies a gaussian blur when positive.
	BlurRadius float64
}

// Apply runs the selected operations in a fixed order: crop, resize, flip,
// brightness, contrast, sharpen, blur.
func Apply(img image.Image, opts Options) (image.Image, error) {
	if opts.CropRegion != "" {
		cropped, err := CropRegion(img, opts.CropRegion)
		if err != nil {
			return nil, err
		}
		img = cropped
	}
	if opts.ResizeWidth > 0 && opts.ResizeHeight > 0 {
		img = imaging.Resize(img, opts.ResizeWidth, opts.ResizeHeight, imaging.Lanczos)
	}
	if opts.FlipV {
		img = imaging.FlipV(img)
	}
	if opts.Brightness != 0 {
		img = adjust.Brightness(img, opts.Brightness)
	}
	if opts.Contrast != 0 {
		img = adjust.Contrast(img, opts.Contrast)
	}
	if opts.Sharpen > 0 {
		img = imaging.Sharpen(img, opts.Sharpen)
	}
	if opts.BlurRadius > 0 {
		img = blur.Gaussian(img, opts.BlurRadius)
	}
	return img, nil
}

// CropRegion cuts a named region out of the image. Region names split the
// image at its midlines; "center" keeps the middle 50% in both dimensions.
func CropRegion(img image.Image, region string) (image.Image, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int
	switch region {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return nil, fmt.Errorf("unknown region: %s", region)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("image too small to crop %q", region)
	}

	rect := image.Rect(x1, y1, x2, y2).Add(bounds.Min)
	return imaging.Crop(img, rect), nil
}
