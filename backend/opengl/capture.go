package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadPixels reads the back buffer into an image with a top-left origin.
func ReadPixels(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// OpenGL's origin is bottom-left.
	flipVertical(img)
	return img
}

// flipVertical mirrors img top to bottom in place.
func flipVertical(img *image.RGBA) {
	row := func(y int) []byte {
		return img.Pix[y*img.Stride : y*img.Stride+img.Rect.Dx()*4]
	}
	for top, bot := 0, img.Rect.Dy()-1; top < bot; top, bot = top+1, bot-1 {
		swapBytes(row(top), row(bot))
	}
}

func swapBytes(a, b []byte) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}
