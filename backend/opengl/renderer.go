// Package opengl draws the textured quad with OpenGL 4.1 and GLFW.
package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/quad"
)

// State sets the fixed pipeline state used by the demo.
func State(clear [4]float32) {
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.FrontFace(gl.CW)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.CULL_FACE)
}

// Renderer draws one textured mesh per frame. It satisfies quad.Drawer.
type Renderer struct {
	program *Program
	mesh    *Mesh
	texture *Texture
}

// NewRenderer creates a renderer over resources that were already uploaded.
// The renderer owns them from then on and releases them in Delete.
func NewRenderer(program *Program, mesh *Mesh, texture *Texture) *Renderer {
	return &Renderer{
		program: program,
		mesh:    mesh,
		texture: texture,
	}
}

// Draw clears the frame and draws the mesh with wvp as the world transform.
// GL errors are not checked.
func (r *Renderer) Draw(wvp mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// mgl32 matrices are column-major, matching GL without a transpose.
	gl.UniformMatrix4fv(r.program.WorldLoc, 1, false, &wvp[0])

	gl.EnableVertexAttribArray(quad.PositionAttrib)
	gl.EnableVertexAttribArray(quad.TexCoordAttrib)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.mesh.vbo)
	gl.VertexAttribPointerWithOffset(quad.PositionAttrib, 3, gl.FLOAT, false, quad.VertexStride, 0)
	gl.VertexAttribPointerWithOffset(quad.TexCoordAttrib, 2, gl.FLOAT, false, quad.VertexStride, quad.TexCoordOffset)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.mesh.ibo)

	r.texture.Bind(gl.TEXTURE0)

	gl.DrawElementsWithOffset(gl.TRIANGLES, r.mesh.indexCount, gl.UNSIGNED_INT, 0)

	gl.DisableVertexAttribArray(quad.PositionAttrib)
	gl.DisableVertexAttribArray(quad.TexCoordAttrib)
}

// Delete releases the texture, buffers and program.
func (r *Renderer) Delete() {
	if r.texture != nil {
		r.texture.Delete()
	}
	if r.mesh != nil {
		r.mesh.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
}
