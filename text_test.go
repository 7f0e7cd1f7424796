package s2d_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/s2d"
)

func TestRasterizeText(t *testing.T) {
	img := s2d.RasterizeText("Hi", basicfont.Face7x13)

	// 7px advance per glyph, 11 ascent + 2 descent.
	assert.Equal(t, image.Rect(0, 0, 14, 13), img.Bounds())

	var lit int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			lit++
			assert.Equal(t, img.Pix[i], img.Pix[i-3], "glyph pixels are white")
		}
	}
	assert.Positive(t, lit)
}

func TestRasterizeTextEmpty(t *testing.T) {
	img := s2d.RasterizeText("", nil)

	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 13, img.Bounds().Dy())
	for _, p := range img.Pix {
		assert.Zero(t, p)
	}
}

func TestNewText(t *testing.T) {
	var uploaded image.Image
	upload := func(img image.Image) uint32 {
		uploaded = img
		return 42
	}

	tint := s2d.RGBA(1, 0, 0, 1)
	txt := s2d.NewText(10, 20, "abc", tint, nil, upload)

	require.NotNil(t, uploaded)
	assert.Equal(t, "abc", txt.Message)
	assert.Equal(t, uint32(42), txt.Texture())
	assert.Equal(t, tint, txt.Tint())

	x, y, w, h := txt.Bounds()
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(20), y)
	assert.Equal(t, float32(uploaded.Bounds().Dx()), w)
	assert.Equal(t, float32(uploaded.Bounds().Dy()), h)
	assert.Equal(t, float32(21), w)
}
