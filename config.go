package quad

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// WindowConfig configures the output window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// SwapInterval is passed to the windowing library. 0 redraws as fast as
	// the loop can run; 1 waits for vertical sync.
	SwapInterval int `yaml:"swap_interval"`
}

// ProjectionConfig configures the perspective frustum.
type ProjectionConfig struct {
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// Config holds everything the demo reads at startup.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Projection ProjectionConfig `yaml:"projection"`

	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`
	Texture        string `yaml:"texture"`

	Position   [3]float32 `yaml:"position"`
	Rotation   [3]float32 `yaml:"rotation"`
	ClearColor [4]float32 `yaml:"clear_color"`
}

// DefaultConfig returns the built-in scene.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Assignment 5",
		},
		Projection: ProjectionConfig{
			FOV:  55,
			Near: 1,
			Far:  1000,
		},
		VertexShader:   "shader.vs",
		FragmentShader: "shader.fs",
		Texture:        "../Content/monster.png",
		Position:       [3]float32{-1.5, -1.5, 5},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.SwapInterval < 0:
		return fmt.Errorf("%w: swap interval %d", ErrInvalidConfig, c.Window.SwapInterval)
	case c.Projection.FOV <= 0 || c.Projection.FOV >= 180:
		return fmt.Errorf("%w: fov %g", ErrInvalidConfig, c.Projection.FOV)
	case c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near:
		return fmt.Errorf("%w: clip planes near=%g far=%g", ErrInvalidConfig, c.Projection.Near, c.Projection.Far)
	case c.VertexShader == "" || c.FragmentShader == "":
		return fmt.Errorf("%w: shader paths must be set", ErrInvalidConfig)
	case c.Texture == "":
		return fmt.Errorf("%w: texture path must be set", ErrInvalidConfig)
	}
	return nil
}
