// Example opens a window and draws a triangle, an image and a line of text
// through the s2d OpenGL 3.3 renderer.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -image photo.png -text "hello" -v
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	_ "golang.org/x/image/bmp"

	"github.com/go-theft-auto/s2d"
	"github.com/go-theft-auto/s2d/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type config struct {
	width, height int
	title         string
	imagePath     string
	text          string
	fixed         bool
	strictLink    bool
	verbose       bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 800, "window width")
	flag.IntVar(&cfg.height, "height", 600, "window height")
	flag.StringVar(&cfg.title, "title", "s2d example", "window title")
	flag.StringVar(&cfg.imagePath, "image", "", "image file to draw (png, jpeg, bmp); a checkerboard if empty")
	flag.StringVar(&cfg.text, "text", "Hello from s2d!", "text to draw")
	flag.BoolVar(&cfg.fixed, "fixed", false, "keep a fixed logical viewport and scale on resize")
	flag.BoolVar(&cfg.strictLink, "strict", false, "fail on shader link errors")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	s2d.SetVerbose(cfg.verbose)

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.width, cfg.height, cfg.title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := s2d.New(opengl.NewDevice(), cfg.width, cfg.height, s2d.WithStrictLink(cfg.strictLink))
	if err != nil {
		return fmt.Errorf("s2d renderer: %w", err)
	}
	defer renderer.Delete()

	var adapterOpts []opengl.WindowOption
	if cfg.fixed {
		adapterOpts = append(adapterOpts, opengl.WithLogicalSize(cfg.width, cfg.height))
	}
	opengl.AttachWindow(window, renderer, adapterOpts...)

	src, err := loadImage(cfg.imagePath)
	if err != nil {
		return err
	}
	picture := &s2d.Image{X: 40, Y: 40, W: 160, H: 160, TextureID: opengl.NewTexture(src, opengl.FilterLinear)}
	defer opengl.DeleteTexture(picture.TextureID)

	uploadNearest := func(img image.Image) uint32 { return opengl.NewTexture(img, opengl.FilterNearest) }
	label := s2d.NewText(40, 220, cfg.text, s2d.RGBA(1, 0.85, 0.2, 1), nil, uploadNearest)
	defer opengl.DeleteTexture(label.TextureID)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		w, h := float32(cfg.width), float32(cfg.height)
		renderer.DrawTriangle(
			s2d.Point{X: w * 0.65, Y: h * 0.15, Color: s2d.RGBA(1, 0, 0, 1)},
			s2d.Point{X: w * 0.90, Y: h * 0.80, Color: s2d.RGBA(0, 1, 0, 1)},
			s2d.Point{X: w * 0.40, Y: h * 0.80, Color: s2d.RGBA(0, 0, 1, 0.6)},
		)
		renderer.DrawImage(picture)
		renderer.DrawText(label)

		window.SwapBuffers()
	}

	return nil
}

// loadImage decodes path, or returns a checkerboard when path is empty.
func loadImage(path string) (image.Image, error) {
	if path == "" {
		return checkerboard(64, 8), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

func checkerboard(size, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	dark := color.NRGBA{R: 60, G: 90, B: 160, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}
