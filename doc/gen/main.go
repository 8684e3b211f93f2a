// Command gen renders the quad scene in a hidden window, captures the
// framebuffer and saves a JPEG screenshot to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/ -texture path/to/monster.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/quad"
	"github.com/go-theft-auto/quad/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := quad.DefaultConfig()
	flag.StringVar(&cfg.VertexShader, "vs", filepath.Join("example", "shader.vs"), "vertex shader")
	flag.StringVar(&cfg.FragmentShader, "fs", filepath.Join("example", "shader.fs"), "fragment shader")
	flag.StringVar(&cfg.Texture, "texture", cfg.Texture, "quad texture")
	out := flag.String("out", filepath.Join("doc", "imgs", "quad.jpg"), "output file")
	frames := flag.Uint64("frames", 2, "frames to render before capture")
	flag.Parse()

	if err := run(cfg, *out, *frames); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg quad.Config, out string, frames uint64) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if frames == 0 {
		return fmt.Errorf("frames must be at least 1")
	}

	window, err := opengl.OpenWindow(cfg.Window, opengl.Hidden())
	if err != nil {
		return err
	}
	defer window.Close()

	renderer, err := opengl.Load(cfg)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	shot := &captureDrawer{Drawer: renderer, last: frames, width: cfg.Window.Width, height: cfg.Window.Height}
	quad.NewLoop(window, shot, quad.NewScene(cfg, nil), quad.WithMaxFrames(frames)).Run()
	if shot.img == nil {
		return fmt.Errorf("no frame captured")
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := jpeg.Encode(f, shot.img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	fmt.Printf("  %s (%dx%d)\n", out, cfg.Window.Width, cfg.Window.Height)
	return nil
}

// captureDrawer reads the back buffer after the last frame is drawn and
// before it is swapped.
type captureDrawer struct {
	quad.Drawer
	last          uint64
	drawn         uint64
	width, height int
	img           *image.RGBA
}

func (c *captureDrawer) Draw(wvp mgl32.Mat4) {
	c.Drawer.Draw(wvp)
	c.drawn++
	if c.drawn == c.last {
		c.img = opengl.ReadPixels(c.width, c.height)
	}
}
