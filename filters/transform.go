package filters

import (
	"fmt"
	"image/color"

	"github.com/soypat/pixfx"
)

// Transform applies the kind's per-pixel transform to a packed RGBA buffer of
// width×height pixels and returns a newly allocated buffer of the same length.
// buf is never modified.
//
// If len(buf) != width*height*4 Transform returns a nil buffer and an error
// wrapping [pixfx.ErrBufferSizeMismatch].
func Transform(kind Kind, buf []byte, width, height int) ([]byte, error) {
	return TransformParallel(kind, buf, width, height, 1)
}

// TransformParallel is like [Transform] but splits rows across up to workers
// goroutines. Output is identical to [Transform].
func TransformParallel(kind Kind, buf []byte, width, height, workers int) ([]byte, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	src, err := pixfx.NewPixelBuffer(buf, width, height)
	if err != nil {
		return nil, err
	}
	f := NewKindFilter(kind)
	f.Workers = workers
	dst := make([]byte, len(buf))
	if _, err := f.Process(dst, src, nil); err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}
	return dst, nil
}

// GrayscaleRGBA returns a grayscale copy of the RGBA buffer. See [Transform].
func GrayscaleRGBA(buf []byte, width, height int) ([]byte, error) {
	return Transform(Grayscale, buf, width, height)
}

// SepiaRGBA returns a sepia toned copy of the RGBA buffer. See [Transform].
func SepiaRGBA(buf []byte, width, height int) ([]byte, error) {
	return Transform(Sepia, buf, width, height)
}

// ColdInverseRGBA returns a cold inverted copy of the RGBA buffer. See [Transform].
func ColdInverseRGBA(buf []byte, width, height int) ([]byte, error) {
	return Transform(ColdInverse, buf, width, height)
}

// SpectralGlowRGBA returns a spectral glow copy of the RGBA buffer. See [Transform].
func SpectralGlowRGBA(buf []byte, width, height int) ([]byte, error) {
	return Transform(SpectralGlow, buf, width, height)
}

// NewSelectable creates a point filter whose transform is picked at runtime
// through its "Filter" enum control, starting with kind.
// The control must not be changed while Process is running.
func NewSelectable(kind Kind) (*PointFilter, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	active := kind.pixelFunc()
	f := &PointFilter{
		In:  pixfx.ShapeRGBA8888,
		Out: pixfx.ShapeRGBA8888,
	}
	f.Fn = RGBAPointFunc(func(px color.RGBA) color.RGBA { return active(px) })
	f.Ctrls = []pixfx.Control{
		&pixfx.ControlEnum[Kind]{
			Name:        "Filter",
			Description: "Color transform applied to every pixel",
			Value:       kind,
			ValidValues: Kinds(),
			OnChange: func(k Kind) error {
				active = k.pixelFunc()
				return nil
			},
		},
	}
	return f, nil
}
