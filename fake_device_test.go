package s2d_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/s2d"
)

// attribSetup records one VertexAttribPointer call.
type attribSetup struct {
	program uint32
	name    string
	size    int32
	stride  int32
	offset  uintptr
	enabled bool
}

// uniformUpload records one UniformMatrix4 call.
type uniformUpload struct {
	program  uint32
	location int32
	matrix   mgl32.Mat4
}

// fakeDevice is a Device that records calls instead of talking to a driver.
type fakeDevice struct {
	calls []string

	next uint32

	// Failure injection.
	failCompile    map[string]string // source substring -> info log
	failLink       map[int]string    // 1-based program creation order -> info log
	zeroProgram    int               // 1-based program creation order that returns 0
	missingAttribs map[string]bool

	programsCreated int
	programOrder    map[uint32]int
	attached        map[uint32][]uint32
	fragData        map[uint32]string
	compiled        map[uint32]bool
	compileLog      map[uint32]string
	deletedShaders  []uint32
	deleted         []string

	current      uint32
	attribLocs   map[string]int32
	locOwner     map[int32]uint32
	locName      map[int32]string
	attribs      []attribSetup
	uniformLocs  map[int32]uint32
	uploads      []uniformUpload
	viewports    [][4]int32
	textures     []uint32
	vertexUpload [][]s2d.Vertex
	indexUpload  [][]uint32
	drawArrays   [][2]int32
	drawElements []int32
	drawProgram  []uint32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		failCompile:    map[string]string{},
		failLink:       map[int]string{},
		missingAttribs: map[string]bool{},
		programOrder:   map[uint32]int{},
		attached:       map[uint32][]uint32{},
		fragData:       map[uint32]string{},
		compiled:       map[uint32]bool{},
		compileLog:     map[uint32]string{},
		attribLocs:     map[string]int32{"position": 0, "color": 1, "texcoord": 2},
		locOwner:       map[int32]uint32{},
		locName:        map[int32]string{},
		uniformLocs:    map[int32]uint32{},
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) handle() uint32 {
	d.next++
	return d.next
}

// index returns the position of the first call with the given prefix, or -1.
func (d *fakeDevice) index(prefix string) int {
	for i, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

// lastIndex returns the position of the last call with the given prefix, or -1.
func (d *fakeDevice) lastIndex(prefix string) int {
	for i := len(d.calls) - 1; i >= 0; i-- {
		if strings.HasPrefix(d.calls[i], prefix) {
			return i
		}
	}
	return -1
}

// count returns the number of calls with the given prefix.
func (d *fakeDevice) count(prefix string) int {
	n := 0
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// reset forgets recorded draw traffic, keeping object state.
func (d *fakeDevice) reset() {
	d.calls = nil
	d.uploads = nil
	d.viewports = nil
	d.textures = nil
	d.vertexUpload = nil
	d.indexUpload = nil
	d.drawArrays = nil
	d.drawElements = nil
	d.drawProgram = nil
}

func (d *fakeDevice) EnableBlending() { d.record("EnableBlending") }

func (d *fakeDevice) Viewport(x, y, width, height int32) {
	d.record("Viewport(%d,%d,%d,%d)", x, y, width, height)
	d.viewports = append(d.viewports, [4]int32{x, y, width, height})
}

func (d *fakeDevice) GenVertexArray() uint32 {
	h := d.handle()
	d.record("GenVertexArray=%d", h)
	return h
}

func (d *fakeDevice) BindVertexArray(vao uint32) { d.record("BindVertexArray(%d)", vao) }

func (d *fakeDevice) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray(%d)", vao)
	d.deleted = append(d.deleted, fmt.Sprintf("vao:%d", vao))
}

func (d *fakeDevice) GenBuffer() uint32 {
	h := d.handle()
	d.record("GenBuffer=%d", h)
	return h
}

func (d *fakeDevice) BindArrayBuffer(buf uint32)   { d.record("BindArrayBuffer(%d)", buf) }
func (d *fakeDevice) BindElementBuffer(buf uint32) { d.record("BindElementBuffer(%d)", buf) }

func (d *fakeDevice) DeleteBuffer(buf uint32) {
	d.record("DeleteBuffer(%d)", buf)
	d.deleted = append(d.deleted, fmt.Sprintf("buffer:%d", buf))
}

func (d *fakeDevice) CreateShader(stage s2d.ShaderStage) uint32 {
	h := d.handle()
	d.record("CreateShader(%s)=%d", stage, h)
	return h
}

func (d *fakeDevice) CompileShader(shader uint32, source string) {
	d.record("CompileShader(%d)", shader)
	d.compiled[shader] = true
	for substr, log := range d.failCompile {
		if strings.Contains(source, substr) {
			d.compiled[shader] = false
			d.compileLog[shader] = log
		}
	}
}

func (d *fakeDevice) ShaderStatus(shader uint32) (bool, string) {
	return d.compiled[shader], d.compileLog[shader]
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.record("DeleteShader(%d)", shader)
	d.deletedShaders = append(d.deletedShaders, shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	d.programsCreated++
	if d.programsCreated == d.zeroProgram {
		d.record("CreateProgram=0")
		return 0
	}
	h := d.handle()
	d.programOrder[h] = d.programsCreated
	d.record("CreateProgram=%d", h)
	return h
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.record("AttachShader(%d,%d)", program, shader)
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDevice) BindFragDataLocation(program, colorNumber uint32, name string) {
	d.record("BindFragDataLocation(%d,%d,%s)", program, colorNumber, name)
	if colorNumber == 0 {
		d.fragData[program] = name
	}
}

func (d *fakeDevice) LinkProgram(program uint32) { d.record("LinkProgram(%d)", program) }

func (d *fakeDevice) ProgramStatus(program uint32) (bool, string) {
	if log, ok := d.failLink[d.programOrder[program]]; ok {
		return false, log
	}
	return true, ""
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.record("UseProgram(%d)", program)
	d.current = program
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.record("DeleteProgram(%d)", program)
	d.deleted = append(d.deleted, fmt.Sprintf("program:%d", program))
}

func (d *fakeDevice) AttribLocation(program uint32, name string) int32 {
	d.record("AttribLocation(%d,%s)", program, name)
	if d.missingAttribs[name] {
		return -1
	}
	loc, ok := d.attribLocs[name]
	if !ok {
		return -1
	}
	d.locOwner[loc] = program
	d.locName[loc] = name
	return loc
}

func (d *fakeDevice) VertexAttribPointer(index uint32, size, stride int32, offset uintptr) {
	d.record("VertexAttribPointer(%d)", index)
	loc := int32(index)
	d.attribs = append(d.attribs, attribSetup{
		program: d.locOwner[loc],
		name:    d.locName[loc],
		size:    size,
		stride:  stride,
		offset:  offset,
	})
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray(%d)", index)
	if n := len(d.attribs); n > 0 && d.attribs[n-1].name == d.locName[int32(index)] {
		d.attribs[n-1].enabled = true
	}
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation(%d,%s)", program, name)
	loc := int32(program*100 + 7)
	d.uniformLocs[loc] = program
	return loc
}

func (d *fakeDevice) UniformMatrix4(location int32, m mgl32.Mat4) {
	d.record("UniformMatrix4(%d)", location)
	d.uploads = append(d.uploads, uniformUpload{program: d.current, location: location, matrix: m})
}

func (d *fakeDevice) BindTexture(texture uint32) {
	d.record("BindTexture(%d)", texture)
	d.textures = append(d.textures, texture)
}

func (d *fakeDevice) BufferVertices(vertices []s2d.Vertex) {
	d.record("BufferVertices(%d)", len(vertices))
	d.vertexUpload = append(d.vertexUpload, append([]s2d.Vertex(nil), vertices...))
}

func (d *fakeDevice) BufferIndices(indices []uint32) {
	d.record("BufferIndices(%d)", len(indices))
	d.indexUpload = append(d.indexUpload, append([]uint32(nil), indices...))
}

func (d *fakeDevice) DrawArrays(first, count int32) {
	d.record("DrawArrays(%d,%d)", first, count)
	d.drawArrays = append(d.drawArrays, [2]int32{first, count})
	d.drawProgram = append(d.drawProgram, d.current)
}

func (d *fakeDevice) DrawElements(count int32) {
	d.record("DrawElements(%d)", count)
	d.drawElements = append(d.drawElements, count)
	d.drawProgram = append(d.drawProgram, d.current)
}

// testLogger returns a debug level logger writing into buf.
func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
