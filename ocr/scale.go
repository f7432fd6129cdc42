package ocr

import (
	"image"

	"golang.org/x/image/draw"
)

// minRecognitionWidth is the narrowest image width Tesseract recognizes
// Chinese glyphs from reliably.
const minRecognitionWidth = 1200

// Upscale resizes img so its width is at least minWidth, preserving the
// aspect ratio. Images already wide enough are returned unchanged.
func Upscale(img image.Image, minWidth int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || w >= minWidth {
		return img
	}

	scale := float64(minWidth) / float64(w)
	dst := image.NewRGBA(image.Rect(0, 0, minWidth, int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
