package filters

import "math"

// Float to 8-bit conversions. All channel math is done in float32 and every
// product is explicitly converted to float32 before being summed, which
// forbids the compiler from fusing multiply-adds and keeps results identical
// across architectures.

// truncU8 truncates v toward zero into a uint8, saturating outside [0,255]. NaN yields 0.
func truncU8(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// roundU8 rounds v to the nearest integer, halves away from zero, saturating outside [0,255].
func roundU8(v float32) uint8 {
	return truncU8(float32(math.Round(float64(v))))
}

// satAddU8 adds a and b, clamping at 255 instead of wrapping.
func satAddU8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(sum)
}

// pow32 is x**y in single precision. The float64 result is correctly
// rounded to float32 for the inputs used here.
func pow32(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
