// Package opengl provides the OpenGL 3.3 core Device for the s2d package,
// plus glfw and texture helpers.
package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/s2d"
)

var _ s2d.Device = (*Device)(nil)

// Device issues s2d driver calls against the current OpenGL context.
// gl.Init must have been called on the context's thread.
type Device struct{}

// NewDevice returns a Device for the current context.
func NewDevice() *Device {
	return &Device{}
}

var shaderTypes = map[s2d.ShaderStage]uint32{
	s2d.StageVertex:   gl.VERTEX_SHADER,
	s2d.StageFragment: gl.FRAGMENT_SHADER,
}

// EnableBlending enables standard alpha blending.
func (d *Device) EnableBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// Viewport sets the driver viewport in framebuffer pixels.
func (d *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// GenVertexArray creates a vertex array object.
func (d *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

// BindVertexArray makes vao the current vertex array.
func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// DeleteVertexArray releases vao.
func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

// GenBuffer creates a buffer object.
func (d *Device) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

// BindArrayBuffer binds buf as the vertex buffer.
func (d *Device) BindArrayBuffer(buf uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
}

// BindElementBuffer binds buf as the element buffer.
func (d *Device) BindElementBuffer(buf uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
}

// DeleteBuffer releases buf.
func (d *Device) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

// CreateShader creates a shader object for stage, or returns 0 for an
// unknown stage.
func (d *Device) CreateShader(stage s2d.ShaderStage) uint32 {
	typ, ok := shaderTypes[stage]
	if !ok {
		return 0
	}
	return gl.CreateShader(typ)
}

// CompileShader uploads source and compiles it. The source does not need
// to be null terminated.
func (d *Device) CompileShader(shader uint32, source string) {
	csources, free := gl.Strs(cstring(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
}

// ShaderStatus reports whether shader compiled and returns its info log
// when it did not.
func (d *Device) ShaderStatus(shader uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return false, ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return false, trimLog(log)
}

// DeleteShader releases shader.
func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

// CreateProgram creates an empty program object.
func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader attaches shader to program.
func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

// BindFragDataLocation binds the fragment output name to a color number.
// It must run before LinkProgram.
func (d *Device) BindFragDataLocation(program, colorNumber uint32, name string) {
	gl.BindFragDataLocation(program, colorNumber, gl.Str(cstring(name)))
}

// LinkProgram links program.
func (d *Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

// ProgramStatus reports whether program linked and returns its info log
// when it did not.
func (d *Device) ProgramStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return false, ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return false, trimLog(log)
}

// UseProgram makes program current.
func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// DeleteProgram releases program.
func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// AttribLocation returns the location of a vertex input, or -1.
func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(cstring(name)))
}

// VertexAttribPointer describes a float attribute in the bound vertex
// buffer. stride and offset are in bytes.
func (d *Device) VertexAttribPointer(index uint32, size, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

// EnableVertexAttribArray enables the attribute at index.
func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

// UniformLocation returns the location of a uniform, or -1.
func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstring(name)))
}

// UniformMatrix4 uploads m in column-major order to the current program.
func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// BindTexture binds a 2D texture to the active unit.
func (d *Device) BindTexture(texture uint32) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

// vertexSize is the byte size of one s2d.Vertex.
const vertexSize = int(unsafe.Sizeof(s2d.Vertex{}))

// BufferVertices replaces the vertex buffer contents.
func (d *Device) BufferVertices(vertices []s2d.Vertex) {
	if len(vertices) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, gl.Ptr(vertices), gl.STATIC_DRAW)
}

// BufferIndices replaces the element buffer contents.
func (d *Device) BufferIndices(indices []uint32) {
	if len(indices) == 0 {
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
}

// DrawArrays draws count vertices as triangles.
func (d *Device) DrawArrays(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// DrawElements draws count indices as triangles.
func (d *Device) DrawElements(count int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, 0)
}

// cstring null terminates s for the gl string helpers.
func cstring(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// trimLog converts a driver info log to a string without the terminator
// and trailing newlines.
func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\r\n ")
}
