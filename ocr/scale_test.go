package ocr

import (
	"image"
	"testing"
)

func TestUpscale(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		minWidth int
		wantW    int
		wantSame bool
	}{
		{"wide enough untouched", 1600, 900, 1200, 1600, true},
		{"exact width untouched", 1200, 800, 1200, 1200, true},
		{"narrow image upscaled", 600, 400, 1200, 1200, false},
		{"aspect ratio preserved", 300, 150, 1200, 1200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := Upscale(src, tt.minWidth)

			if (got == image.Image(src)) != tt.wantSame {
				t.Errorf("same-image result = %v, want %v", got == image.Image(src), tt.wantSame)
			}
			if got.Bounds().Dx() != tt.wantW {
				t.Errorf("width = %d, want %d", got.Bounds().Dx(), tt.wantW)
			}
			if !tt.wantSame {
				wantH := tt.h * tt.minWidth / tt.w
				if got.Bounds().Dy() != wantH {
					t.Errorf("height = %d, want %d", got.Bounds().Dy(), wantH)
				}
			}
		})
	}
}

func TestUpscale_DegenerateImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if got := Upscale(src, 1200); got != image.Image(src) {
		t.Errorf("zero-size image must pass through untouched")
	}
}
