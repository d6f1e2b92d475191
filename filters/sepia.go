package filters

import "image/color"

func sepiaPixel(px color.RGBA) color.RGBA {
	r, g, b := float32(px.R), float32(px.G), float32(px.B)
	tr := float32(0.393*r) + float32(0.769*g) + float32(0.189*b)
	tg := float32(0.349*r) + float32(0.686*g) + float32(0.168*b)
	tb := float32(0.272*r) + float32(0.534*g) + float32(0.131*b)
	return color.RGBA{
		R: truncU8(min(255, tr)),
		G: truncU8(min(255, tg)),
		B: truncU8(min(255, tb)),
		A: px.A,
	}
}

// NewSepia creates a sepia toning filter. Alpha is preserved.
func NewSepia() *PointFilter {
	return NewKindFilter(Sepia)
}
