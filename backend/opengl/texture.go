package opengl

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"golang.org/x/image/draw"
)

// Filter selects texture minification and magnification.
type Filter int

const (
	// FilterLinear smooths scaled textures (photos, UI art).
	FilterLinear Filter = iota
	// FilterNearest keeps hard pixel edges (pixel art, bitmap text).
	FilterNearest
)

func (f Filter) param() int32 {
	if f == FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

// NewTexture uploads img as a non-premultiplied RGBA 2D texture and returns
// its handle. The texture is left unbound.
func NewTexture(img image.Image, filter Filter) uint32 {
	nrgba := toNRGBA(img)
	size := nrgba.Rect.Size()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter.param())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter.param())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var pixels unsafe.Pointer
	if len(nrgba.Pix) > 0 {
		pixels = gl.Ptr(nrgba.Pix)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}

// DeleteTexture releases a texture created by NewTexture.
func DeleteTexture(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}

// toNRGBA returns img as a tightly packed *image.NRGBA with a zero origin.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == 4*n.Rect.Dx() {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
