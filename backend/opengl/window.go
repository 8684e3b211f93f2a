package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/quad"
)

// Window wraps a GLFW window with a current OpenGL 4.1 core context.
// It satisfies quad.Surface.
type Window struct {
	*glfw.Window
}

// WindowOption adjusts GLFW hints before the window is created.
type WindowOption func()

// Hidden creates the window without showing it, for offscreen capture.
func Hidden() WindowOption {
	return func() { glfw.WindowHint(glfw.Visible, glfw.False) }
}

// OpenWindow initializes GLFW and OpenGL and creates a double-buffered RGBA
// window. The caller must be on the main OS thread and must call Close.
func OpenWindow(cfg quad.WindowConfig, opts ...WindowOption) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	for _, opt := range opts {
		opt()
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	// Must follow MakeContextCurrent.
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	slog.Info("opengl context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	return &Window{Window: window}, nil
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}
