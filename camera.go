package quad

import "github.com/go-gl/mathgl/mgl32"

// Camera is a fixed viewpoint looking along Target.
type Camera struct {
	Pos    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	Width  int
	Height int
}

// NewCamera creates a camera at the origin looking down +Z with +Y up.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Pos:    mgl32.Vec3{0, 0, 0},
		Target: mgl32.Vec3{0, 0, 1},
		Up:     mgl32.Vec3{0, 1, 0},
		Width:  width,
		Height: height,
	}
}

// View returns the world-to-camera matrix.
//
// The basis is built left-handed: N points along Target, U = Up × N and
// V = N × U. The default camera therefore produces the identity matrix.
func (c *Camera) View() mgl32.Mat4 {
	n := c.Target.Normalize()
	u := c.Up.Cross(n).Normalize()
	v := n.Cross(u)

	rotate := mgl32.Mat4FromRows(
		u.Vec4(0),
		v.Vec4(0),
		n.Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	)
	translate := mgl32.Translate3D(-c.Pos.X(), -c.Pos.Y(), -c.Pos.Z())

	return rotate.Mul4(translate)
}
