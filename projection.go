package s2d

import "github.com/go-gl/mathgl/mgl32"

// Projection is the orthographic matrix shared by both pipelines.
// It maps viewport units with a top-left origin to clip space.
type Projection struct {
	m mgl32.Mat4
}

// NewProjection returns the full orthographic matrix for a width x height
// viewport. Non-positive sizes fall back to a 1x1 viewport.
func NewProjection(width, height int) Projection {
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	return Projection{m: mgl32.Ortho2D(0, float32(width), float32(height), 0)}
}

// SetScale rewrites only the X and Y scale terms for a new viewport size.
// The translation terms do not depend on the size and are left alone.
// It reports false, leaving the matrix unchanged, for non-positive sizes.
func (p *Projection) SetScale(viewportWidth, viewportHeight int) bool {
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return false
	}
	p.m[0] = 2 / float32(viewportWidth)
	p.m[5] = -2 / float32(viewportHeight)
	return true
}

// Matrix returns a copy of the column-major matrix.
func (p Projection) Matrix() mgl32.Mat4 {
	return p.m
}

// ScaleX returns the horizontal scale term.
func (p Projection) ScaleX() float32 { return p.m[0] }

// ScaleY returns the vertical scale term (negative, Y points down).
func (p Projection) ScaleY() float32 { return p.m[5] }
