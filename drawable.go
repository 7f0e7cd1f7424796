package s2d

// Drawable is anything backed by a GPU texture that can be drawn as a quad.
type Drawable interface {
	// Bounds returns the destination rectangle in viewport units.
	Bounds() (x, y, w, h float32)
	// Tint is multiplied with every texel.
	Tint() Color
	// Texture returns the GPU texture handle.
	Texture() uint32
}

// Image is a decoded picture that has been uploaded to a texture.
type Image struct {
	X, Y      float32
	W, H      float32
	TextureID uint32
}

// Bounds returns the image's position and size.
func (img *Image) Bounds() (x, y, w, h float32) { return img.X, img.Y, img.W, img.H }

// Tint is always white so the texture is drawn as is.
func (img *Image) Tint() Color { return ColorWhite }

// Texture returns TextureID.
func (img *Image) Texture() uint32 { return img.TextureID }

// Text is a line of text rasterized into a texture.
// The texture holds white glyphs; Color tints them.
type Text struct {
	Message   string
	X, Y      float32
	W, H      float32
	Color     Color
	TextureID uint32
}

// Bounds returns the text's position and rasterized size.
func (t *Text) Bounds() (x, y, w, h float32) { return t.X, t.Y, t.W, t.H }

// Tint returns the glyph color.
func (t *Text) Tint() Color { return t.Color }

// Texture returns TextureID.
func (t *Text) Texture() uint32 { return t.TextureID }
