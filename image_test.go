package quad_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/go-theft-auto/quad"
)

func encodeFile(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		t.Fatal(err)
	}
	return path
}

func checkerboard() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{A: 255}
			if (x+y)%2 == 0 {
				c.R = 255
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestLoadImage(t *testing.T) {
	tests := []struct {
		name   string
		encode func(f *os.File) error
	}{
		{"monster.png", func(f *os.File) error { return png.Encode(f, checkerboard()) }},
		{"monster.bmp", func(f *os.File) error { return bmp.Encode(f, checkerboard()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := quad.LoadImage(encodeFile(t, tt.name, tt.encode))
			if err != nil {
				t.Fatalf("LoadImage: %v", err)
			}

			if got := img.Bounds(); got != image.Rect(0, 0, 4, 2) {
				t.Fatalf("bounds = %v", got)
			}
			if img.Stride != 16 || len(img.Pix) != 32 {
				t.Errorf("stride %d, %d bytes; want tightly packed", img.Stride, len(img.Pix))
			}
			if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
				t.Errorf("pixel (0,0) = %v", got)
			}
			if got := img.NRGBAAt(1, 0); got != (color.NRGBA{A: 255}) {
				t.Errorf("pixel (1,0) = %v", got)
			}
		})
	}
}

func TestLoadImageKeepsStraightAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	src.SetNRGBA(2, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	path := encodeFile(t, "sprite.png", func(f *os.File) error { return png.Encode(f, src) })
	img, err := quad.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}

	if !bytes.Equal(img.Pix, src.Pix) {
		t.Errorf("texel bytes = %v, want %v", img.Pix, src.Pix)
	}
}

func TestLoadImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 4, 4))
	src.SetNRGBA(2, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	src.SetNRGBA(3, 3, color.NRGBA{R: 5, G: 6, B: 7, A: 8})

	path := encodeFile(t, "offset.png", func(f *os.File) error { return png.Encode(f, src) })
	img, err := quad.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}

	if img.Rect.Min != (image.Point{}) {
		t.Errorf("bounds = %v, want origin at 0,0", img.Rect)
	}
	if want := []byte{1, 2, 3, 4, 5, 6, 7, 8}; !bytes.Equal(img.Pix, want) {
		t.Errorf("texel bytes = %v, want %v", img.Pix, want)
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := quad.LoadImage(filepath.Join(t.TempDir(), "monster.png")); err == nil {
		t.Error("expected error for missing texture")
	}
}

func TestLoadImageUnreadable(t *testing.T) {
	path := writeFile(t, "monster.png", "not an image")
	if _, err := quad.LoadImage(path); err == nil {
		t.Error("expected error for undecodable texture")
	}
}
