package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/s2d"
)

// windowSizer is the part of *glfw.Window the adapter reads sizes from.
type windowSizer interface {
	GetSize() (width, height int)
	GetFramebufferSize() (width, height int)
}

// viewSetter receives view updates; *s2d.Renderer implements it.
type viewSetter interface {
	SetView(windowWidth, windowHeight, viewportWidth, viewportHeight int)
}

var (
	_ windowSizer = (*glfw.Window)(nil)
	_ viewSetter  = (*s2d.Renderer)(nil)
)

// WindowAdapter keeps a renderer's view in sync with a GLFW window.
type WindowAdapter struct {
	window   windowSizer
	renderer viewSetter

	// Fixed logical viewport; zero means follow the window size.
	logicalWidth, logicalHeight int
}

// WindowOption configures a WindowAdapter.
type WindowOption func(*WindowAdapter)

// WithLogicalSize fixes the logical viewport so content scales with the
// window instead of revealing more of the scene.
func WithLogicalSize(width, height int) WindowOption {
	return func(a *WindowAdapter) {
		a.logicalWidth = width
		a.logicalHeight = height
	}
}

// AttachWindow installs a framebuffer size callback on window that calls
// renderer.SetView, and syncs the view once immediately.
//
// GLFW holds one framebuffer size callback per window, so this replaces any
// callback the caller installed before. Callers that need their own should
// install it after AttachWindow and call Sync from it.
func AttachWindow(window *glfw.Window, renderer *s2d.Renderer, opts ...WindowOption) *WindowAdapter {
	a := newWindowAdapter(window, renderer, opts...)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	a.Sync()
	return a
}

func newWindowAdapter(window windowSizer, renderer viewSetter, opts ...WindowOption) *WindowAdapter {
	a := &WindowAdapter{
		window:   window,
		renderer: renderer,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Sync pushes the current framebuffer and viewport size to the renderer.
func (a *WindowAdapter) Sync() {
	w, h := a.window.GetFramebufferSize()
	a.resize(w, h)
}

// ViewportSize returns the logical viewport size currently in effect.
func (a *WindowAdapter) ViewportSize() (width, height int) {
	if a.logicalWidth > 0 && a.logicalHeight > 0 {
		return a.logicalWidth, a.logicalHeight
	}
	// Window size is in screen coordinates, which differs from the
	// framebuffer on high-DPI displays.
	return a.window.GetSize()
}

func (a *WindowAdapter) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	a.resize(width, height)
}

func (a *WindowAdapter) resize(fbWidth, fbHeight int) {
	// Minimized windows report a zero framebuffer.
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	vw, vh := a.ViewportSize()
	a.renderer.SetView(fbWidth, fbHeight, vw, vh)
}
