package quad_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-auto/quad"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := quad.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("window = %dx%d, want 1024x768", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Assignment 5" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if cfg.VertexShader != "shader.vs" || cfg.FragmentShader != "shader.fs" {
		t.Errorf("shaders = %q, %q", cfg.VertexShader, cfg.FragmentShader)
	}
	if cfg.Texture != "../Content/monster.png" {
		t.Errorf("texture = %q", cfg.Texture)
	}
	if cfg.Position != [3]float32{-1.5, -1.5, 5} {
		t.Errorf("position = %v", cfg.Position)
	}
	if cfg.ClearColor != [4]float32{} {
		t.Errorf("clear color = %v, want black", cfg.ClearColor)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "scene.yml", `
window:
  title: overlay
  swap_interval: 1
projection:
  fov: 70
texture: other.png
position: [0, 0, 10]
`)

	cfg, err := quad.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Window.Title != "overlay" || cfg.Window.SwapInterval != 1 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("window size lost defaults: %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Projection.FOV != 70 || cfg.Projection.Near != 1 || cfg.Projection.Far != 1000 {
		t.Errorf("projection = %+v", cfg.Projection)
	}
	if cfg.Texture != "other.png" || cfg.VertexShader != "shader.vs" {
		t.Errorf("paths = %q %q", cfg.Texture, cfg.VertexShader)
	}
	if cfg.Position != [3]float32{0, 0, 10} {
		t.Errorf("position = %v", cfg.Position)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{name: "malformed", content: "window: [1, 2"},
		{name: "zero width", content: "window:\n  width: 0\n", invalid: true},
		{name: "fov too wide", content: "projection:\n  fov: 180\n", invalid: true},
		{name: "far before near", content: "projection:\n  near: 10\n  far: 5\n", invalid: true},
		{name: "empty shader", content: "vertex_shader: \"\"\n", invalid: true},
		{name: "empty texture", content: "texture: \"\"\n", invalid: true},
		{name: "negative swap", content: "window:\n  swap_interval: -1\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quad.LoadConfig(writeFile(t, "scene.yml", tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, quad.ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := quad.LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}
