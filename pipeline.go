package s2d

// Pipeline selects one of the renderer's shader programs.
type Pipeline int

const (
	// PipelineFlat renders solid colored, untextured geometry.
	PipelineFlat Pipeline = iota
	// PipelineTextured samples the bound texture and multiplies by the tint.
	PipelineTextured

	pipelineCount
)

// String returns the pipeline name.
func (p Pipeline) String() string {
	if p >= 0 && p < pipelineCount {
		return pipelines[p].name
	}
	return "unknown"
}

// Names shared between the shader sources and the renderer.
const (
	fragOutput = "outColor"
	mvpUniform = "u_mvpMatrix"
)

// attribute is one float vertex input inside the interleaved Vertex.
type attribute struct {
	name   string
	size   int32   // components
	offset uintptr // bytes from the start of a Vertex
}

var (
	attribPosition = attribute{name: "position", size: 2, offset: 0}
	attribColor    = attribute{name: "color", size: 4, offset: 2 * floatSize}
	attribTexCoord = attribute{name: "texcoord", size: 2, offset: 6 * floatSize}
)

// pipelineDesc is everything New needs to set up one pipeline.
type pipelineDesc struct {
	name     string
	fragment string
	attribs  []attribute
}

var pipelines = [pipelineCount]pipelineDesc{
	PipelineFlat: {
		name:     "flat",
		fragment: flatFragmentSource,
		attribs:  []attribute{attribPosition, attribColor},
	},
	PipelineTextured: {
		name:     "textured",
		fragment: texturedFragmentSource,
		attribs:  []attribute{attribPosition, attribColor, attribTexCoord},
	},
}

// vertexSource is shared by every pipeline.
const vertexSource = `#version 150 core
uniform mat4 u_mvpMatrix;
in vec2 position;
in vec4 color;
in vec2 texcoord;
out vec4 Color;
out vec2 Texcoord;
void main() {
    Color = color;
    Texcoord = texcoord;
    gl_Position = u_mvpMatrix * vec4(position, 0.0, 1.0);
}
`

const flatFragmentSource = `#version 150 core
in vec4 Color;
out vec4 outColor;
void main() {
    outColor = Color;
}
`

const texturedFragmentSource = `#version 150 core
in vec4 Color;
in vec2 Texcoord;
out vec4 outColor;
uniform sampler2D tex;
void main() {
    outColor = texture(tex, Texcoord) * Color;
}
`
