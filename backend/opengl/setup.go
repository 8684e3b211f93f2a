package opengl

import (
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/quad"
)

// Load sets the pipeline state and creates every GPU resource the quad is
// drawn with: mesh, shader program and texture, in that order. The window's
// context must be current. On error, resources created so far are released.
func Load(cfg quad.Config) (*Renderer, error) {
	State(cfg.ClearColor)

	mesh := UploadQuad()

	vs, err := quad.ReadShaderSource(cfg.VertexShader)
	if err != nil {
		mesh.Delete()
		return nil, err
	}
	fs, err := quad.ReadShaderSource(cfg.FragmentShader)
	if err != nil {
		mesh.Delete()
		return nil, err
	}

	program, err := CompileProgram(vs, fs)
	if err != nil {
		mesh.Delete()
		return nil, err
	}
	program.SetSampler(0)

	img, err := quad.LoadImage(cfg.Texture)
	if err != nil {
		program.Delete()
		mesh.Delete()
		return nil, err
	}
	texture := NewTexture(img)
	slog.Debug("texture uploaded", "path", cfg.Texture, "size", img.Rect.Size())

	// Texturing needs no enable cap in the core profile; selecting unit 0 is enough.
	gl.ActiveTexture(gl.TEXTURE0)

	return NewRenderer(program, mesh, texture), nil
}
