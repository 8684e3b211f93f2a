package quad

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Perspective describes a symmetric viewing frustum.
type Perspective struct {
	FOV    float32 // vertical field of view in degrees
	Width  float32
	Height float32
	Near   float32
	Far    float32
}

// Matrix returns the left-handed projection for p. Points in front of the
// viewer have positive Z, and clip-space W equals view-space Z.
func (p Perspective) Matrix() mgl32.Mat4 {
	ar := p.Width / p.Height
	zRange := p.Near - p.Far
	tanHalfFOV := float32(math.Tan(float64(mgl32.DegToRad(p.FOV / 2))))

	return mgl32.Mat4FromRows(
		mgl32.Vec4{1 / (tanHalfFOV * ar), 0, 0, 0},
		mgl32.Vec4{0, 1 / tanHalfFOV, 0, 0},
		mgl32.Vec4{0, 0, (-p.Near - p.Far) / zRange, 2 * p.Far * p.Near / zRange},
		mgl32.Vec4{0, 0, 1, 0},
	)
}

// Transform composes an object's placement with a camera and projection.
// The zero value is not usable; create one with NewTransform.
type Transform struct {
	position    mgl32.Vec3
	rotation    mgl32.Vec3 // degrees about X, Y, Z
	scale       mgl32.Vec3
	perspective Perspective
	camera      *Camera
}

// NewTransform returns a transform with unit scale at the origin.
func NewTransform() *Transform {
	return &Transform{scale: mgl32.Vec3{1, 1, 1}}
}

// SetPosition sets the world translation.
func (t *Transform) SetPosition(x, y, z float32) {
	t.position = mgl32.Vec3{x, y, z}
}

// SetRotation sets the rotation in degrees about each axis.
func (t *Transform) SetRotation(x, y, z float32) {
	t.rotation = mgl32.Vec3{x, y, z}
}

// SetScale sets the per-axis scale.
func (t *Transform) SetScale(x, y, z float32) {
	t.scale = mgl32.Vec3{x, y, z}
}

// SetPerspective sets the projection parameters.
func (t *Transform) SetPerspective(fov, width, height, near, far float32) {
	t.perspective = Perspective{FOV: fov, Width: width, Height: height, Near: near, Far: far}
}

// SetCamera sets the camera whose view is applied. A nil camera means identity view.
func (t *Transform) SetCamera(c *Camera) {
	t.camera = c
}

// World returns the object-to-world matrix: translate, then rotate Z·Y·X, then scale.
func (t *Transform) World() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z())
	rotate := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.rotation.Z())).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.rotation.Y()))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.rotation.X())))
	scale := mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

// View returns the camera matrix, or identity when no camera is set.
func (t *Transform) View() mgl32.Mat4 {
	if t.camera == nil {
		return mgl32.Ident4()
	}
	return t.camera.View()
}

// WorldViewProjection returns projection · view · world.
func (t *Transform) WorldViewProjection() mgl32.Mat4 {
	return t.perspective.Matrix().Mul4(t.View()).Mul4(t.World())
}
