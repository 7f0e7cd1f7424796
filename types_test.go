package s2d_test

import (
	"image/color"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/s2d"
)

func TestVertexLayout(t *testing.T) {
	var v s2d.Vertex
	assert.Equal(t, uintptr(s2d.VertexStride*4), unsafe.Sizeof(v))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(v.Pos))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(v.Color))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(v.TexCoord))
}

func TestRGBAClamps(t *testing.T) {
	assert.Equal(t, s2d.Color{R: 1, G: 0, B: 0.5, A: 1}, s2d.RGBA(2, -1, 0.5, 1))
}

func TestColorConversion(t *testing.T) {
	c := s2d.ColorFrom(color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	assert.InDelta(t, 1, c.R, 1e-6)
	assert.InDelta(t, 0, c.G, 1e-6)
	assert.InDelta(t, 0.2, c.B, 1e-6)
	assert.InDelta(t, 1, c.A, 1e-6)

	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 51, A: 255}, c.NRGBA())
	assert.Equal(t, s2d.ColorWhite, s2d.ColorFrom(color.White))
}
