package ops

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadrantImage builds a 4x4 image with a distinct color per quadrant.
func quadrantImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	colors := [2][2]color.NRGBA{
		{{R: 255, A: 255}, {G: 255, A: 255}},
		{{B: 255, A: 255}, {R: 255, G: 255, A: 255}},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, colors[y/2][x/2])
		}
	}
	return img
}

func TestCropRegion_Quadrants(t *testing.T) {
	img := quadrantImage()
	tests := []struct {
		region string
		want   color.NRGBA
	}{
		{"top-left", color.NRGBA{R: 255, A: 255}},
		{"top-right", color.NRGBA{G: 255, A: 255}},
		{"bottom-left", color.NRGBA{B: 255, A: 255}},
		{"bottom-right", color.NRGBA{R: 255, G: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			got, err := CropRegion(img, tt.region)
			require.NoError(t, err)
			assert.Equal(t, 2, got.Bounds().Dx())
			assert.Equal(t, 2, got.Bounds().Dy())
			r, g, b, a := got.At(got.Bounds().Min.X, got.Bounds().Min.Y).RGBA()
			assert.Equal(t, tt.want, color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
		})
	}
}

func TestCropRegion_HalvesAndCenter(t *testing.T) {
	img := quadrantImage()

	half, err := CropRegion(img, "top-half")
	require.NoError(t, err)
	assert.Equal(t, 4, half.Bounds().Dx())
	assert.Equal(t, 2, half.Bounds().Dy())

	center, err := CropRegion(img, "center")
	require.NoError(t, err)
	assert.Equal(t, 2, center.Bounds().Dx())
	assert.Equal(t, 2, center.Bounds().Dy())
}

func TestCropRegion_Errors(t *testing.T) {
	img := quadrantImage()
	_, err := CropRegion(img, "middle-ish")
	assert.Error(t, err)

	tiny := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	_, err = CropRegion(tiny, "top-left")
	assert.Error(t, err, "1x1 image has empty quadrants")
}

func TestApply_Resize(t *testing.T) {
	got, err := Apply(quadrantImage(), Options{ResizeWidth: 8, ResizeHeight: 2})
	require.NoError(t, err)
	assert.Equal(t, 8, got.Bounds().Dx())
	assert.Equal(t, 2, got.Bounds().Dy())
}

func TestApply_FlipV(t *testing.T) {
	img := quadrantImage()
	got, err := Apply(img, Options{FlipV: true})
	require.NoError(t, err)

	// Top-left red quadrant ends up at the bottom.
	r, _, _, _ := got.At(0, 3).RGBA()
	assert.Equal(t, uint32(255), r>>8)
}

func TestApply_NoOptionsIsIdentity(t *testing.T) {
	img := quadrantImage()
	got, err := Apply(img, Options{})
	require.NoError(t, err)
	assert.Equal(t, image.Image(img), got, "no options returns the input untouched")
}

func TestApply_CropErrorStopsPipeline(t *testing.T) {
	_, err := Apply(quadrantImage(), Options{CropRegion: "nope", ResizeWidth: 2, ResizeHeight: 2})
	assert.Error(t, err)
}

func TestApply_BrightnessAndBlur(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}

	brighter, err := Apply(img, Options{Brightness: 0.5})
	require.NoError(t, err)
	r, _, _, _ := brighter.At(1, 1).RGBA()
	assert.Greater(t, r>>8, uint32(100))

	// 100 is below mid-gray, so more contrast pushes it down.
	darker, err := Apply(img, Options{Contrast: 0.5})
	require.NoError(t, err)
	r, _, _, _ = darker.At(1, 1).RGBA()
	assert.Less(t, r>>8, uint32(100))

	blurred, err := Apply(img, Options{BlurRadius: 1.5})
	require.NoError(t, err)
	assert.Equal(t, 4, blurred.Bounds().Dx())

	sharpened, err := Apply(img, Options{Sharpen: 1.0})
	require.NoError(t, err)
	assert.Equal(t, 4, sharpened.Bounds().Dx())
}
