package s2d

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFace is used when no font face is given.
var DefaultFace font.Face = basicfont.Face7x13

// RasterizeText draws s on a single line in opaque white on a transparent
// image sized to the text's advance and the face's ascent plus descent.
// Lines are not wrapped and control characters are not interpreted.
// An empty string yields a 1 pixel wide image.
func RasterizeText(s string, face font.Face) *image.RGBA {
	if face == nil {
		face = DefaultFace
	}

	metrics := face.Metrics()
	width := font.MeasureString(face, s).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(s)
	return img
}

// NewText rasterizes msg, hands the image to upload to obtain a texture
// handle, and returns a Text placed at (x, y) with the image's size.
func NewText(x, y float32, msg string, c Color, face font.Face, upload func(image.Image) uint32) *Text {
	img := RasterizeText(msg, face)
	size := img.Bounds().Size()
	return &Text{
		Message:   msg,
		X:         x,
		Y:         y,
		W:         float32(size.X),
		H:         float32(size.Y),
		Color:     c,
		TextureID: upload(img),
	}
}
