// Command gen renders each s2d primitive in a hidden window, captures the
// framebuffer pixels and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
//	go run ./doc/gen/ -out /tmp/shots -v
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/s2d"
	"github.com/go-theft-auto/s2d/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

// Hidden window size; larger than every screenshot.
const (
	surfaceWidth  = 800
	surfaceHeight = 600
)

func main() {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	s2d.SetVerbose(*verbose)

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// assets are the textures shared by all screenshots.
type assets struct {
	swatch *s2d.Image
	label  *s2d.Text
}

// screenshot defines a single screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int    // framebuffer width
	height int    // framebuffer height
	// viewport is the logical size; zero means the framebuffer size.
	viewportWidth, viewportHeight int
	draw                          func(r *s2d.Renderer, a assets)
}

func run(outDir string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(surfaceWidth, surfaceHeight, "s2d-screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := s2d.New(opengl.NewDevice(), surfaceWidth, surfaceHeight, s2d.WithStrictLink(true))
	if err != nil {
		return fmt.Errorf("s2d renderer: %w", err)
	}
	defer renderer.Delete()

	a := assets{
		swatch: &s2d.Image{W: 96, H: 96, TextureID: opengl.NewTexture(gradient(96), opengl.FilterLinear)},
	}
	defer opengl.DeleteTexture(a.swatch.TextureID)
	a.label = s2d.NewText(0, 0, "s2d text", s2d.ColorWhite, nil, func(img image.Image) uint32 {
		return opengl.NewTexture(img, opengl.FilterNearest)
	})
	defer opengl.DeleteTexture(a.label.TextureID)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, a, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *s2d.Renderer, a assets, s screenshot, outDir string) error {
	vw, vh := s.viewportWidth, s.viewportHeight
	if vw == 0 || vh == 0 {
		vw, vh = s.width, s.height
	}
	renderer.SetView(s.width, s.height, vw, vh)

	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	s.draw(renderer, a)
	gl.Finish()

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "triangle", width: 300, height: 240,
			draw: func(r *s2d.Renderer, _ assets) {
				r.DrawTriangle(
					s2d.Point{X: 150, Y: 20, Color: s2d.RGBA(1, 0, 0, 1)},
					s2d.Point{X: 280, Y: 220, Color: s2d.RGBA(0, 1, 0, 1)},
					s2d.Point{X: 20, Y: 220, Color: s2d.RGBA(0, 0, 1, 1)},
				)
			},
		},
		{
			name: "image", width: 240, height: 160,
			draw: func(r *s2d.Renderer, a assets) {
				img := *a.swatch
				img.X, img.Y = 20, 32
				r.DrawImage(&img)
				img.X, img.W = 128, 96
				r.DrawTexture(img.X, img.Y, img.W, img.H, s2d.RGBA(1, 1, 1, 0.4), img.TextureID)
			},
		},
		{
			name: "text", width: 240, height: 80,
			draw: func(r *s2d.Renderer, a assets) {
				for i, c := range []s2d.Color{s2d.ColorWhite, s2d.RGBA(1, 0.85, 0.2, 1), s2d.RGBA(0.4, 0.8, 1, 1)} {
					txt := *a.label
					txt.X, txt.Y, txt.Color = 12, float32(8+i*22), c
					r.DrawText(&txt)
				}
			},
		},
		{
			// Logical 150x120 drawn into a 300x240 framebuffer, as on a 2x display.
			name: "high_dpi", width: 300, height: 240,
			viewportWidth: 150, viewportHeight: 120,
			draw: func(r *s2d.Renderer, a assets) {
				r.DrawTriangle(
					s2d.Point{X: 75, Y: 10, Color: s2d.RGBA(1, 0.5, 0, 1)},
					s2d.Point{X: 140, Y: 110, Color: s2d.RGBA(1, 0.5, 0, 1)},
					s2d.Point{X: 10, Y: 110, Color: s2d.RGBA(1, 0.5, 0, 1)},
				)
				txt := *a.label
				txt.X, txt.Y = 40, 60
				r.DrawText(&txt)
			},
		},
	}
}

// gradient returns a size x size image fading red to blue horizontally and
// opaque to transparent vertically.
func gradient(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := uint8(x * 255 / (size - 1))
			img.SetNRGBA(x, y, color.NRGBA{R: 255 - t, G: 64, B: t, A: uint8(255 - y*200/(size-1))})
		}
	}
	return img
}
