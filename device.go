package s2d

import "github.com/go-gl/mathgl/mgl32"

// ShaderStage identifies the pipeline stage a shader is compiled for.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the set of graphics driver calls the renderer issues.
// backend/opengl provides the OpenGL 3.3 implementation.
//
// Every method maps to one or two driver calls and must be invoked on the
// thread that owns the graphics context. Handles are driver object names;
// zero is the null handle.
type Device interface {
	// EnableBlending turns on source-alpha / one-minus-source-alpha blending.
	EnableBlending()
	// Viewport sets the driver viewport in window pixels.
	Viewport(x, y, width, height int32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	// BindArrayBuffer binds buf as the vertex (array) buffer target.
	BindArrayBuffer(buf uint32)
	// BindElementBuffer binds buf as the element (index) buffer target.
	BindElementBuffer(buf uint32)
	DeleteBuffer(buf uint32)

	// CreateShader returns a new shader object, or 0 on failure.
	CreateShader(stage ShaderStage) uint32
	CompileShader(shader uint32, source string)
	// ShaderStatus reports whether the last compile succeeded, with the
	// driver's info log.
	ShaderStatus(shader uint32) (compiled bool, infoLog string)
	DeleteShader(shader uint32)

	// CreateProgram returns a new program object, or 0 on failure.
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	// BindFragDataLocation binds a fragment output variable to a color number.
	BindFragDataLocation(program, colorNumber uint32, name string)
	LinkProgram(program uint32)
	// ProgramStatus reports whether the last link succeeded, with the
	// driver's info log.
	ProgramStatus(program uint32) (linked bool, infoLog string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// AttribLocation returns the location of a vertex input, or -1.
	AttribLocation(program uint32, name string) int32
	// VertexAttribPointer describes a float attribute within the bound
	// vertex buffer. stride and offset are in bytes.
	VertexAttribPointer(index uint32, size, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	// UniformLocation returns the location of a uniform, or -1.
	UniformLocation(program uint32, name string) int32
	// UniformMatrix4 uploads a column-major matrix to the current program.
	UniformMatrix4(location int32, m mgl32.Mat4)

	// BindTexture binds a 2D texture to the active texture unit.
	BindTexture(texture uint32)
	// BufferVertices replaces the vertex buffer contents (static draw).
	BufferVertices(vertices []Vertex)
	// BufferIndices replaces the element buffer contents (static draw).
	BufferIndices(indices []uint32)
	// DrawArrays draws count vertices as triangles starting at first.
	DrawArrays(first, count int32)
	// DrawElements draws count uint32 indices as triangles from offset 0.
	DrawElements(count int32)
}
