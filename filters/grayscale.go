package filters

import "image/color"

// Luminance weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// grayscalePixel truncates the weighted luminance of px. Alpha passes through.
func grayscalePixel(px color.RGBA) color.RGBA {
	r, g, b := float32(px.R), float32(px.G), float32(px.B)
	gray := truncU8(float32(lumaR*r) + float32(lumaG*g) + float32(lumaB*b))
	return color.RGBA{R: gray, G: gray, B: gray, A: px.A}
}

// NewGrayscale creates a filter converting RGBA pixels to gray using
// luminance weights: trunc(0.299*R + 0.587*G + 0.114*B). Alpha is preserved.
func NewGrayscale() *PointFilter {
	return NewKindFilter(Grayscale)
}
