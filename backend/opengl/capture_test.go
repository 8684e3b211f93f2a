package opengl

import (
	"bytes"
	"image"
	"testing"
)

func TestFlipVertical(t *testing.T) {
	tests := []struct {
		name   string
		height int
	}{
		{"even", 4},
		{"odd", 3},
		{"single row", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 2, tt.height))
			for y := 0; y < tt.height; y++ {
				for i := 0; i < img.Stride; i++ {
					img.Pix[y*img.Stride+i] = byte(y*16 + i)
				}
			}
			orig := append([]byte(nil), img.Pix...)

			flipVertical(img)

			for y := 0; y < tt.height; y++ {
				got := img.Pix[y*img.Stride : (y+1)*img.Stride]
				src := tt.height - 1 - y
				want := orig[src*img.Stride : (src+1)*img.Stride]
				if !bytes.Equal(got, want) {
					t.Errorf("row %d = %v, want row %d %v", y, got, src, want)
				}
			}
		})
	}
}
