package s2d

import "image/color"

// floatSize is the size in bytes of one float32 vertex component.
const floatSize = 4

// VertexStride is the number of float32 components in every Vertex,
// whether or not the primitive is textured.
const VertexStride = 8

// Vertex is one interleaved vertex as uploaded to the vertex buffer.
// Memory layout matches the attribute pointers set up by New.
type Vertex struct {
	Pos      [2]float32 // Position (x, y) in viewport units
	Color    [4]float32 // RGBA, 0..1
	TexCoord [2]float32 // Texture coordinates (u, v), zero when untextured
}

// Color is a non-premultiplied RGBA color with components in 0..1.
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// RGBA creates a color from float components (0.0-1.0).
// Components are clamped.
func RGBA(r, g, b, a float32) Color {
	return Color{
		R: clampf(r, 0, 1),
		G: clampf(g, 0, 1),
		B: clampf(b, 0, 1),
		A: clampf(a, 0, 1),
	}
}

// ColorFrom converts any color.Color to a Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// NRGBA returns the color as an 8-bit color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clampf(c.R, 0, 1)*255 + 0.5),
		G: uint8(clampf(c.G, 0, 1)*255 + 0.5),
		B: uint8(clampf(c.B, 0, 1)*255 + 0.5),
		A: uint8(clampf(c.A, 0, 1)*255 + 0.5),
	}
}

func (c Color) array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Point is one triangle corner with its own color.
type Point struct {
	X, Y  float32
	Color Color
}

// quadIndices describes the two triangles of a textured quad.
var quadIndices = [6]uint32{
	0, 1, 2,
	2, 3, 0,
}

// ElementIndices returns the index list used by every textured draw.
func ElementIndices() [6]uint32 {
	return quadIndices
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
