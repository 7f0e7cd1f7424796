/*
Package s2d provides the OpenGL 3.3 draw path of a small 2D graphics library.

# Overview

A Renderer owns two shader programs, one for flat colored geometry and one
for textured quads, plus the vertex array, vertex buffer and element buffer
they share. Every draw call rebuilds its vertices and uploads them before
submitting, so there is no batching and no retained scene.

The package does not talk to OpenGL directly. It drives a Device, the narrow
set of driver calls it needs, and the concrete implementation lives in
backend/opengl. Window creation, image decoding and text layout belong to the
caller; the renderer only consumes texture handles and geometry.

# Quick Start

	// Setup (GL context current on this thread)
	r, err := s2d.New(opengl.NewDevice(), 800, 600)
	if err != nil {
	    log.Fatal(err)
	}
	opengl.AttachWindow(window, r)

	// Frame
	r.DrawTriangle(
	    s2d.Point{X: 400, Y: 100, Color: s2d.RGBA(1, 0, 0, 1)},
	    s2d.Point{X: 600, Y: 450, Color: s2d.RGBA(0, 1, 0, 1)},
	    s2d.Point{X: 200, Y: 450, Color: s2d.RGBA(0, 0, 1, 1)},
	)
	r.DrawImage(&s2d.Image{X: 10, Y: 10, W: 64, H: 64, TextureID: tex})

# Shaders

Compiling and linking are separate steps. CompileShader turns one source
string into a Shader, and BuildProgram links already compiled Shaders into a
Program. Both pipelines share a single vertex shader, so New compiles it once
and hands the same Shader to each BuildProgram call, then deletes all shaders
once the programs are linked.

# Coordinates

The projection maps logical viewport units to clip space with the origin at
the top-left corner and Y growing downward. SetView keeps the driver viewport
(window pixels) and the logical viewport separate, which is what high-DPI
windows need.

# Threading

A Renderer must only be used from the goroutine that owns the GL context.
*/
package s2d
