package filters

import "image/color"

// coldInversePixel inverts RGB with per-channel gains that favor blue.
// RGB truncate while alpha rounds to nearest.
func coldInversePixel(px color.RGBA) color.RGBA {
	return color.RGBA{
		R: truncU8(min(255, float32(255-px.R)*0.5)),
		G: truncU8(min(255, float32(255-px.G)*0.8)),
		B: truncU8(min(255, float32(255-px.B)*1.1)),
		A: roundU8(float32(px.A) * 0.9),
	}
}

// NewColdInverse creates a filter that inverts RGB values scaled by 0.5, 0.8 and 1.1
// and fades alpha to 90%.
func NewColdInverse() *PointFilter {
	return NewKindFilter(ColdInverse)
}
