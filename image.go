package quad

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"os"

	// Registered decoders for LoadImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes the image at path into a straight-alpha RGBA buffer
// ready for upload. Texel bytes of non-premultiplied sources are kept as
// stored in the file. PNG, JPEG, GIF, BMP, TIFF and WebP files are supported.
func LoadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	slog.Debug("decoded texture", "path", path, "format", format, "size", img.Bounds().Size())

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) && nrgba.Stride == nrgba.Rect.Dx()*4 {
		return nrgba, nil
	}

	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	return nrgba, nil
}
