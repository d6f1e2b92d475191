package filters

import "image/color"

const (
	glowExponent = 1.5
	glowScale    = 50
	glowMax      = 60
)

// spectralGlowPixel dims red and green, boosts blue and adds a glow term
// derived from pixel intensity to blue and alpha.
func spectralGlowPixel(px color.RGBA) color.RGBA {
	r, g, b, a := float32(px.R), float32(px.G), float32(px.B), float32(px.A)
	boostedB := truncU8(min(255, float32(b*1.4)+float32(r*0.2)))

	intensity := (r + g + b) / 3
	glow := truncU8(min(glowMax, pow32(intensity/255, glowExponent)*glowScale))

	return color.RGBA{
		R: truncU8(min(255, r*0.6)),
		G: truncU8(min(255, g*0.7)),
		B: satAddU8(boostedB, glow),
		A: truncU8(min(255, float32(a*0.95)+float32(float32(glow)*0.2))),
	}
}

// NewSpectralGlow creates a filter that shifts colors toward blue and adds
// an intensity dependent glow to blue and alpha.
func NewSpectralGlow() *PointFilter {
	return NewKindFilter(SpectralGlow)
}
