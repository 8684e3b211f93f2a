package quad

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a single quad corner as laid out in the vertex buffer.
type Vertex struct {
	Pos mgl32.Vec3
	UV  mgl32.Vec2
}

// Vertex attribute layout shared with shader.vs.
const (
	PositionAttrib = 0
	TexCoordAttrib = 1

	VertexStride   = int32(unsafe.Sizeof(Vertex{}))
	TexCoordOffset = unsafe.Offsetof(Vertex{}.UV)

	indexSize = int(unsafe.Sizeof(uint32(0)))
)

// QuadVertices returns the four corners of the textured quad, three units on a side.
func QuadVertices() [4]Vertex {
	return [4]Vertex{
		{Pos: mgl32.Vec3{0, 0, 0}, UV: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{3, 0, 0}, UV: mgl32.Vec2{0, 1}},
		{Pos: mgl32.Vec3{3, 3, 0}, UV: mgl32.Vec2{0, 0}},
		{Pos: mgl32.Vec3{0, 3, 0}, UV: mgl32.Vec2{1, 0}},
	}
}

// QuadIndices returns the two triangles of the quad, wound clockwise.
func QuadIndices() [6]uint32 {
	return [6]uint32{
		0, 3, 1,
		1, 3, 2,
	}
}

// VertexBufferSize returns the byte size of vs in the vertex buffer.
func VertexBufferSize(vs []Vertex) int {
	return len(vs) * int(VertexStride)
}

// IndexBufferSize returns the byte size of is in the index buffer.
func IndexBufferSize(is []uint32) int {
	return len(is) * indexSize
}
