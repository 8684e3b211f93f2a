package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a 2D RGBA texture resident on the GPU.
type Texture struct {
	id uint32
}

// NewTexture uploads img, with straight alpha, using linear filtering and mipmaps.
func NewTexture(img *image.NRGBA) *Texture {
	size := img.Rect.Size()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{id: id}
}

// Bind makes the texture active on the given texture unit, e.g. gl.TEXTURE0.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
	}
}
