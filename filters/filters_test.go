package filters

import (
	"errors"
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/soypat/pixfx"
)

type pixelCase struct {
	in   color.RGBA
	want [4]color.RGBA // Indexed by Kind.
}

func rgba(r, g, b, a uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: a} }

// Expected outputs computed with single precision arithmetic, truncating conversions.
var pixelCases = []pixelCase{
	{rgba(0, 0, 0, 255), [4]color.RGBA{rgba(0, 0, 0, 255), rgba(0, 0, 0, 255), rgba(127, 204, 255, 230), rgba(0, 0, 0, 242)}},
	{rgba(255, 255, 255, 255), [4]color.RGBA{rgba(255, 255, 255, 255), rgba(255, 255, 238, 255), rgba(0, 0, 0, 230), rgba(153, 178, 255, 252)}},
	{rgba(255, 255, 255, 0), [4]color.RGBA{rgba(255, 255, 255, 0), rgba(255, 255, 238, 0), rgba(0, 0, 0, 0), rgba(153, 178, 255, 10)}},
	{rgba(0, 0, 0, 100), [4]color.RGBA{rgba(0, 0, 0, 100), rgba(0, 0, 0, 100), rgba(127, 204, 255, 90), rgba(0, 0, 0, 95)}},
	{rgba(0, 0, 0, 0), [4]color.RGBA{rgba(0, 0, 0, 0), rgba(0, 0, 0, 0), rgba(127, 204, 255, 0), rgba(0, 0, 0, 0)}},
	{rgba(255, 0, 255, 255), [4]color.RGBA{rgba(105, 105, 105, 255), rgba(148, 131, 102, 255), rgba(0, 204, 0, 230), rgba(153, 0, 255, 247)}},
	{rgba(100, 150, 200, 255), [4]color.RGBA{rgba(140, 140, 140, 255), rgba(192, 171, 133, 255), rgba(77, 84, 60, 230), rgba(60, 105, 255, 246)}},
	{rgba(10, 20, 30, 40), [4]color.RGBA{rgba(18, 18, 18, 40), rgba(24, 22, 17, 40), rgba(122, 188, 247, 36), rgba(6, 14, 45, 38)}},
	{rgba(200, 100, 50, 128), [4]color.RGBA{rgba(124, 124, 124, 128), rgba(164, 146, 114, 128), rgba(27, 124, 225, 115), rgba(120, 70, 125, 124)}},
	{rgba(255, 255, 200, 255), [4]color.RGBA{rgba(248, 248, 248, 255), rgba(255, 255, 231, 255), rgba(0, 0, 60, 230), rgba(153, 178, 255, 251)}},
	{rgba(128, 128, 128, 200), [4]color.RGBA{rgba(128, 128, 128, 200), rgba(172, 153, 119, 200), rgba(63, 101, 139, 180), rgba(76, 89, 221, 193)}},
	{rgba(1, 1, 1, 1), [4]color.RGBA{rgba(1, 1, 1, 1), rgba(1, 1, 0, 1), rgba(127, 203, 255, 1), rgba(0, 0, 1, 0)}},
	{rgba(254, 254, 254, 254), [4]color.RGBA{rgba(254, 254, 254, 254), rgba(255, 255, 237, 254), rgba(0, 0, 1, 229), rgba(152, 177, 255, 251)}},
	{rgba(37, 201, 93, 17), [4]color.RGBA{rgba(139, 139, 139, 17), rgba(186, 166, 129, 17), rgba(109, 43, 178, 15), rgba(22, 140, 151, 18)}},
	{rgba(255, 0, 0, 255), [4]color.RGBA{rgba(76, 76, 76, 255), rgba(100, 88, 69, 255), rgba(0, 204, 255, 230), rgba(153, 0, 60, 244)}},
	{rgba(0, 255, 0, 255), [4]color.RGBA{rgba(149, 149, 149, 255), rgba(196, 174, 136, 255), rgba(127, 0, 255, 230), rgba(0, 178, 9, 244)}},
	{rgba(0, 0, 255, 255), [4]color.RGBA{rgba(29, 29, 29, 255), rgba(48, 42, 33, 255), rgba(127, 204, 0, 230), rgba(0, 0, 255, 244)}},
	{rgba(5, 5, 5, 5), [4]color.RGBA{rgba(5, 5, 5, 5), rgba(6, 6, 4, 5), rgba(125, 200, 255, 5), rgba(3, 3, 8, 4)}},
	{rgba(15, 15, 15, 15), [4]color.RGBA{rgba(15, 15, 15, 15), rgba(20, 18, 14, 15), rgba(120, 192, 255, 14), rgba(9, 10, 24, 14)}},
}

func TestKindApply(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			for _, tc := range pixelCases {
				got := kind.Apply(tc.in)
				if want := tc.want[kind]; got != want {
					t.Errorf("%v(%v) = %v, want %v", kind, tc.in, got, want)
				}
			}
		})
	}
	px := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	if got := Kind(99).Apply(px); got != px {
		t.Errorf("invalid kind modified pixel: %v", got)
	}
}

func TestTransformPixelCases(t *testing.T) {
	ops := map[Kind]func([]byte, int, int) ([]byte, error){
		Grayscale:    GrayscaleRGBA,
		Sepia:        SepiaRGBA,
		ColdInverse:  ColdInverseRGBA,
		SpectralGlow: SpectralGlowRGBA,
	}
	// Lay the cases out as a single row image.
	src := make([]byte, 0, len(pixelCases)*4)
	for _, tc := range pixelCases {
		src = append(src, tc.in.R, tc.in.G, tc.in.B, tc.in.A)
	}
	for kind, op := range ops {
		want := make([]byte, 0, len(src))
		for _, tc := range pixelCases {
			w := tc.want[kind]
			want = append(want, w.R, w.G, w.B, w.A)
		}
		got, err := op(src, len(pixelCases), 1)
		if err != nil {
			t.Fatalf("%v: %v", kind, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", kind, diff)
		}
		// Same pixels laid out as a single column.
		got, err = op(src, 1, len(pixelCases))
		if err != nil {
			t.Fatalf("%v column: %v", kind, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v column mismatch (-want +got):\n%s", kind, diff)
		}
	}
}

func TestSpectralGlowSaturates(t *testing.T) {
	// boosted blue is 255 and glow is non-zero; a wrapping add would give a small value.
	for _, in := range []color.RGBA{rgba(255, 255, 255, 255), rgba(255, 0, 255, 255), rgba(255, 200, 250, 10)} {
		got := SpectralGlow.Apply(in)
		if got.B != 255 {
			t.Errorf("SpectralGlow(%v).B = %d, want 255", in, got.B)
		}
	}
}

func TestAlphaPassthrough(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const w, h = 17, 9
	src := randomRGBA(rng, w, h)
	for _, kind := range []Kind{Grayscale, Sepia} {
		dst, err := Transform(kind, src, w, h)
		if err != nil {
			t.Fatal(err)
		}
		for i := 3; i < len(src); i += 4 {
			if dst[i] != src[i] {
				t.Fatalf("%v: alpha at byte %d changed %d -> %d", kind, i, src[i], dst[i])
			}
		}
	}
}

func TestGrayscaleEqualChannels(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w, h = 32, 32
	dst, err := GrayscaleRGBA(randomRGBA(rng, w, h), w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(dst); i += 4 {
		if dst[i] != dst[i+1] || dst[i+1] != dst[i+2] {
			t.Fatalf("pixel %d not gray: %v", i/4, dst[i:i+4])
		}
	}
}

func TestTransformContract(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const w, h = 23, 11
	src := randomRGBA(rng, w, h)
	orig := append([]byte(nil), src...)
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			first, err := Transform(kind, src, w, h)
			if err != nil {
				t.Fatal(err)
			}
			if len(first) != len(src) {
				t.Fatalf("output length %d, want %d", len(first), len(src))
			}
			if &first[0] == &src[0] {
				t.Fatal("output aliases input")
			}
			if diff := cmp.Diff(orig, src); diff != "" {
				t.Fatalf("input modified (-orig +now):\n%s", diff)
			}
			second, err := Transform(kind, src, w, h)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("non deterministic output (-first +second):\n%s", diff)
			}
			// Each output pixel depends only on the input pixel at the same index.
			for i := 0; i < len(src); i += 4 {
				want := kind.Apply(color.RGBA{R: src[i], G: src[i+1], B: src[i+2], A: src[i+3]})
				got := color.RGBA{R: first[i], G: first[i+1], B: first[i+2], A: first[i+3]}
				if got != want {
					t.Fatalf("pixel %d: got %v, want %v", i/4, got, want)
				}
			}
		})
	}
}

func TestTransformEmpty(t *testing.T) {
	for _, kind := range Kinds() {
		for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
			out, err := Transform(kind, []byte{}, dims[0], dims[1])
			if err != nil {
				t.Errorf("%v %v: unexpected error %v", kind, dims, err)
			}
			if out == nil || len(out) != 0 {
				t.Errorf("%v %v: want empty non-nil output, got %v", kind, dims, out)
			}
		}
		out, err := Transform(kind, nil, 0, 0)
		if err != nil || len(out) != 0 {
			t.Errorf("%v nil input: got %v, %v", kind, out, err)
		}
	}
}

func TestTransformSizeMismatch(t *testing.T) {
	tests := []struct {
		len, w, h int
	}{
		{15, 2, 2},
		{17, 2, 2},
		{12, 2, 2}, // RGB sized.
		{4, 0, 0},
		{0, 1, 1},
		{0, -1, 0},
		{16, -2, -2},
		{0, 1 << 40, 1 << 24}, // Product wraps to zero in 64 bits.
		{0, 1 << 31, 1 << 33},
		{16, 1 << 62, 1 << 62},
	}
	for _, kind := range Kinds() {
		for _, tt := range tests {
			out, err := Transform(kind, make([]byte, tt.len), tt.w, tt.h)
			if !errors.Is(err, pixfx.ErrBufferSizeMismatch) {
				t.Errorf("%v len=%d %dx%d: want ErrBufferSizeMismatch, got %v", kind, tt.len, tt.w, tt.h, err)
			}
			var sizeErr *pixfx.BufferSizeError
			if !errors.As(err, &sizeErr) || sizeErr.Len != tt.len {
				t.Errorf("%v: want *BufferSizeError with Len=%d, got %v", kind, tt.len, err)
			}
			if out != nil {
				t.Errorf("%v: got output on error", kind)
			}
		}
	}
}

func TestTransformUnknownKind(t *testing.T) {
	for _, kind := range []Kind{-1, numKinds, 100} {
		if _, err := Transform(kind, make([]byte, 4), 1, 1); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("Transform(%v): want ErrUnknownKind, got %v", kind, err)
		}
		px := rgba(1, 2, 3, 4)
		if got := kind.Apply(px); got != px {
			t.Errorf("%v.Apply changed pixel", kind)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"grayscale", Grayscale},
		{"Grayscale", Grayscale},
		{"sepia", Sepia},
		{"cold_inverse", ColdInverse},
		{"coldInverse", ColdInverse},
		{"spectral_glow", SpectralGlow},
		{" spectralGlow ", SpectralGlow},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	for _, bad := range []string{"", "invert", "blur", "cold inverse"} {
		if _, err := ParseKind(bad); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ParseKind(%q): want ErrUnknownKind, got %v", bad, err)
		}
	}
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("round trip %v: got %v, %v", k, got, err)
		}
	}
}

// randomRGBA returns a w×h RGBA buffer with uniformly random channels.
func randomRGBA(rng *rand.Rand, w, h int) []byte {
	buf := make([]byte, w*h*4)
	rng.Read(buf)
	return buf
}
