package filters

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnknownKind is returned for a [Kind] outside the defined set.
var ErrUnknownKind = errors.New("unknown filter kind")

// Kind selects one of the per-pixel color transforms.
type Kind int

const (
	Grayscale Kind = iota
	Sepia
	ColdInverse
	SpectralGlow
	numKinds
)

func (k Kind) String() string {
	switch k {
	case Grayscale:
		return "grayscale"
	case Sepia:
		return "sepia"
	case ColdInverse:
		return "cold_inverse"
	case SpectralGlow:
		return "spectral_glow"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// Kinds returns all defined kinds in declaration order.
func Kinds() []Kind {
	return []Kind{Grayscale, Sepia, ColdInverse, SpectralGlow}
}

// ParseKind looks up a kind by name. Snake case and camel case names
// are accepted without regard to letter case, i.e: "cold_inverse", "coldInverse".
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	for _, k := range Kinds() {
		if strings.ReplaceAll(k.String(), "_", "") == norm {
			return k, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Apply transforms a single pixel. Apply returns px unchanged for an invalid kind.
func (k Kind) Apply(px color.RGBA) color.RGBA {
	fn := k.pixelFunc()
	if fn == nil {
		return px
	}
	return fn(px)
}

func (k Kind) pixelFunc() func(color.RGBA) color.RGBA {
	switch k {
	case Grayscale:
		return grayscalePixel
	case Sepia:
		return sepiaPixel
	case ColdInverse:
		return coldInversePixel
	case SpectralGlow:
		return spectralGlowPixel
	}
	return nil
}
