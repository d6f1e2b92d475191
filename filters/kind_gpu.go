package filters

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/soypat/pixfx"
)

// WGSL counterparts of the CPU pixel functions. Channels are in 0..255.
// WGSL round() rounds halves to even so alpha rounding is written as floor(x+0.5).
// pow(0, y) is undefined in WGSL, hence n*sqrt(n) for n^1.5.
const (
	grayscaleTransform = `
fn transform(c: vec4<f32>) -> vec4<f32> {
    let gray = floor(0.299 * c.r + 0.587 * c.g + 0.114 * c.b);
    return vec4<f32>(gray, gray, gray, c.a);
}
`
	sepiaTransform = `
fn transform(c: vec4<f32>) -> vec4<f32> {
    let tr = min(255.0, 0.393 * c.r + 0.769 * c.g + 0.189 * c.b);
    let tg = min(255.0, 0.349 * c.r + 0.686 * c.g + 0.168 * c.b);
    let tb = min(255.0, 0.272 * c.r + 0.534 * c.g + 0.131 * c.b);
    return vec4<f32>(floor(tr), floor(tg), floor(tb), c.a);
}
`
	coldInverseTransform = `
fn transform(c: vec4<f32>) -> vec4<f32> {
    let inv = vec3<f32>(255.0) - c.rgb;
    let rgb = floor(min(vec3<f32>(255.0), inv * vec3<f32>(0.5, 0.8, 1.1)));
    return vec4<f32>(rgb, floor(c.a * 0.9 + 0.5));
}
`
	spectralGlowTransform = `
fn transform(c: vec4<f32>) -> vec4<f32> {
    let r = floor(min(255.0, c.r * 0.6));
    let g = floor(min(255.0, c.g * 0.7));
    let boosted = floor(min(255.0, c.b * 1.4 + c.r * 0.2));
    let n = (c.r + c.g + c.b) / 3.0 / 255.0;
    let glow = floor(min(60.0, n * sqrt(n) * 50.0));
    let b = min(255.0, boosted + glow);
    let a = floor(min(255.0, c.a * 0.95 + glow * 0.2));
    return vec4<f32>(r, g, b, a);
}
`
)

func (k Kind) wgsl() string {
	switch k {
	case Grayscale:
		return grayscaleTransform
	case Sepia:
		return sepiaTransform
	case ColdInverse:
		return coldInverseTransform
	case SpectralGlow:
		return spectralGlowTransform
	}
	return ""
}

// KindFilterGPU applies one of the [Kind] transforms using GPU compute.
type KindFilterGPU struct {
	PointFilterGPU
	kind Kind
}

// NewKindGPU creates a GPU-accelerated filter for kind.
func NewKindGPU(device *wgpu.Device, queue *wgpu.Queue, kind Kind) (*KindFilterGPU, error) {
	code := kind.wgsl()
	if code == "" {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	f := &KindFilterGPU{kind: kind}
	if err := f.Init(device, queue, code); err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}
	pixfx.Logger().Info("gpu filter ready", "kind", kind)
	return f, nil
}

// Kind returns the transform the filter applies.
func (f *KindFilterGPU) Kind() Kind { return f.kind }

// Controls returns nil as the transforms have no adjustable parameters.
func (f *KindFilterGPU) Controls() []pixfx.Control {
	return nil
}
