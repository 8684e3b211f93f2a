package quad

import "github.com/go-gl/mathgl/mgl32"

// Scene holds the fixed placement of the quad and the camera observing it.
type Scene struct {
	cfg    Config
	camera *Camera
}

// NewScene creates a scene from cfg. A nil camera gets the default camera
// sized to the configured window.
func NewScene(cfg Config, camera *Camera) *Scene {
	if camera == nil {
		camera = NewCamera(cfg.Window.Width, cfg.Window.Height)
	}
	return &Scene{cfg: cfg, camera: camera}
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Transform builds a fresh transform for the current frame.
func (s *Scene) Transform() *Transform {
	p, r := s.cfg.Position, s.cfg.Rotation

	t := NewTransform()
	t.SetPosition(p[0], p[1], p[2])
	t.SetRotation(r[0], r[1], r[2])
	t.SetPerspective(s.cfg.Projection.FOV,
		float32(s.cfg.Window.Width), float32(s.cfg.Window.Height),
		s.cfg.Projection.Near, s.cfg.Projection.Far)
	t.SetCamera(s.camera)
	return t
}

// Frame returns the world-view-projection matrix for the current frame.
func (s *Scene) Frame() mgl32.Mat4 {
	return s.Transform().WorldViewProjection()
}
