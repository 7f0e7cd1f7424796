package s2d

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer owns the GPU objects of the draw path: one program per
// Pipeline, a vertex array, a vertex buffer, an element buffer and the
// projection matrix.
type Renderer struct {
	dev        Device
	logger     *slog.Logger
	strictLink bool

	programs [pipelineCount]Program
	vao      uint32
	vbo, ebo uint32
	proj     Projection
}

// New runs the one-time setup on the current graphics context and returns
// a renderer sized for a width x height window.
//
// Call New once per context; every call allocates new GPU objects.
// Compile and program-create failures abort setup and return an error.
// Objects allocated before the failure are not released.
// A link failure is logged and ignored unless WithStrictLink is set.
func New(dev Device, width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", width, height)
	}

	r := &Renderer{
		dev:    dev,
		logger: logger,
		proj:   NewProjection(width, height),
	}
	for _, opt := range opts {
		opt(r)
	}

	dev.EnableBlending()

	r.vao = dev.GenVertexArray()
	dev.BindVertexArray(r.vao)

	r.vbo = dev.GenBuffer()
	dev.BindArrayBuffer(r.vbo)

	r.ebo = dev.GenBuffer()
	dev.BindElementBuffer(r.ebo)

	vertex, err := CompileShader(dev, r.logger, StageVertex, "vertex", vertexSource)
	if err != nil {
		return nil, fmt.Errorf("compile shaders: %w", err)
	}
	var fragments [pipelineCount]Shader
	for p := Pipeline(0); p < pipelineCount; p++ {
		fragments[p], err = CompileShader(dev, r.logger, StageFragment, p.String()+" fragment", pipelines[p].fragment)
		if err != nil {
			return nil, fmt.Errorf("compile shaders: %w", err)
		}
	}

	// Programs must exist before attribute locations can be queried.
	for p := Pipeline(0); p < pipelineCount; p++ {
		prog, err := BuildProgram(dev, r.logger, p, vertex, fragments[p], fragOutput)
		if err != nil && (r.strictLink || !isLinkError(err)) {
			return nil, fmt.Errorf("build %s program: %w", p, err)
		}
		r.programs[p] = prog
		r.setupAttributes(prog)
	}

	r.SetView(width, height, width, height)

	dev.DeleteShader(vertex.Handle)
	for _, sh := range fragments {
		dev.DeleteShader(sh.Handle)
	}

	r.logger.Debug("renderer initialized",
		"width", width, "height", height,
		"flat", r.programs[PipelineFlat].Handle,
		"textured", r.programs[PipelineTextured].Handle)
	return r, nil
}

// setupAttributes points the program's vertex inputs into the 8-float
// interleaved layout and enables them.
func (r *Renderer) setupAttributes(prog Program) {
	stride := int32(VertexStride * floatSize)
	for _, a := range pipelines[prog.Pipeline].attribs {
		loc := r.dev.AttribLocation(prog.Handle, a.name)
		if loc < 0 {
			r.logger.Warn("vertex attribute not found", "pipeline", prog.Pipeline, "attribute", a.name)
			continue
		}
		r.dev.VertexAttribPointer(uint32(loc), a.size, stride, a.offset)
		r.dev.EnableVertexAttribArray(uint32(loc))
	}
}

// SetView sets the driver viewport to the window size and rescales the
// projection for the logical viewport size, then uploads the matrix to
// every program. Window and viewport differ on high-DPI displays.
//
// A non-positive viewport size is logged and leaves the matrix unchanged.
// Programs released by Delete are skipped, so after Delete only the driver
// viewport and the stored matrix change.
func (r *Renderer) SetView(windowWidth, windowHeight, viewportWidth, viewportHeight int) {
	r.dev.Viewport(0, 0, int32(windowWidth), int32(windowHeight))

	if !r.proj.SetScale(viewportWidth, viewportHeight) {
		r.logger.Warn("ignoring non-positive viewport size", "width", viewportWidth, "height", viewportHeight)
		return
	}

	m := r.proj.Matrix()
	for _, prog := range r.programs {
		if prog.Handle == 0 {
			continue
		}
		r.dev.UseProgram(prog.Handle)
		r.dev.UniformMatrix4(r.dev.UniformLocation(prog.Handle, mvpUniform), m)
	}
}

// Projection returns a copy of the current projection matrix.
func (r *Renderer) Projection() mgl32.Mat4 {
	return r.proj.Matrix()
}

// Program returns the program for a pipeline.
func (r *Renderer) Program(p Pipeline) Program {
	if p < 0 || p >= pipelineCount {
		return Program{}
	}
	return r.programs[p]
}

// Delete releases the renderer's GPU objects. Textures passed to the draw
// calls belong to the caller and are not touched. The renderer must not
// draw after Delete; calling Delete again is a no-op.
func (r *Renderer) Delete() {
	for i := range r.programs {
		if r.programs[i].Handle != 0 {
			r.dev.DeleteProgram(r.programs[i].Handle)
			r.programs[i].Handle = 0
		}
	}
	if r.ebo != 0 {
		r.dev.DeleteBuffer(r.ebo)
		r.ebo = 0
	}
	if r.vbo != 0 {
		r.dev.DeleteBuffer(r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		r.dev.DeleteVertexArray(r.vao)
		r.vao = 0
	}
}
