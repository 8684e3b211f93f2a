package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/quad"
)

// Mesh holds the static vertex and index buffers of the quad.
type Mesh struct {
	vao, vbo   uint32
	ibo        uint32
	indexCount int32
}

// UploadMesh creates the vertex array and fills the vertex and index buffers
// once with STATIC_DRAW. The vertex array stays bound; the core profile
// requires one for drawing and for program validation.
func UploadMesh(vertices []quad.Vertex, indices []uint32) *Mesh {
	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, quad.VertexBufferSize(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, quad.IndexBufferSize(indices), gl.Ptr(indices), gl.STATIC_DRAW)

	return m
}

// UploadQuad uploads the demo quad.
func UploadQuad() *Mesh {
	vertices := quad.QuadVertices()
	indices := quad.QuadIndices()
	return UploadMesh(vertices[:], indices[:])
}

// Delete releases the buffers and vertex array.
func (m *Mesh) Delete() {
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
}
