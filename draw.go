package s2d

// TriangleVertices builds the three vertices of a flat triangle.
// Texture coordinates are zero.
func TriangleVertices(p1, p2, p3 Point) [3]Vertex {
	return [3]Vertex{
		{Pos: [2]float32{p1.X, p1.Y}, Color: p1.Color.array()},
		{Pos: [2]float32{p2.X, p2.Y}, Color: p2.Color.array()},
		{Pos: [2]float32{p3.X, p3.Y}, Color: p3.Color.array()},
	}
}

// QuadVertices builds the four corners of a textured quad in the order
// top-left, top-right, bottom-right, bottom-left, matching ElementIndices.
func QuadVertices(x, y, w, h float32, tint Color) [4]Vertex {
	c := tint.array()
	return [4]Vertex{
		{Pos: [2]float32{x, y}, Color: c, TexCoord: [2]float32{0, 0}},
		{Pos: [2]float32{x + w, y}, Color: c, TexCoord: [2]float32{1, 0}},
		{Pos: [2]float32{x + w, y + h}, Color: c, TexCoord: [2]float32{1, 1}},
		{Pos: [2]float32{x, y + h}, Color: c, TexCoord: [2]float32{0, 1}},
	}
}

// DrawTriangle draws a triangle with per-corner colors using the flat
// pipeline.
func (r *Renderer) DrawTriangle(p1, p2, p3 Point) {
	vertices := TriangleVertices(p1, p2, p3)

	r.dev.UseProgram(r.programs[PipelineFlat].Handle)
	r.dev.BufferVertices(vertices[:])
	r.dev.DrawArrays(0, int32(len(vertices)))
}

// DrawTexture draws texture stretched over the rectangle (x, y, w, h),
// multiplied by tint. The texture handle is not validated.
func (r *Renderer) DrawTexture(x, y, w, h float32, tint Color, texture uint32) {
	vertices := QuadVertices(x, y, w, h, tint)
	indices := ElementIndices()

	r.dev.UseProgram(r.programs[PipelineTextured].Handle)
	r.dev.BindTexture(texture)
	r.dev.BufferVertices(vertices[:])
	r.dev.BufferIndices(indices[:])
	r.dev.DrawElements(int32(len(indices)))
}

// Draw draws any textured drawable.
func (r *Renderer) Draw(d Drawable) {
	x, y, w, h := d.Bounds()
	r.DrawTexture(x, y, w, h, d.Tint(), d.Texture())
}

// DrawImage draws an image untinted.
func (r *Renderer) DrawImage(img *Image) {
	r.Draw(img)
}

// DrawText draws a rendered text texture tinted with its color.
func (r *Renderer) DrawText(txt *Text) {
	r.Draw(txt)
}
