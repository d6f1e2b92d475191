package filters

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/sync/errgroup"

	"github.com/soypat/pixfx"
)

var errShapeMismatch = errors.New("pixel shape mismatch")

// minParallelRowBytes is the least amount of source bytes per worker before
// rows are split across goroutines.
const minParallelRowBytes = 64 * 1024

// PointFunc processes a contiguous row of pixels.
// dst and src contain rowWidth pixels worth of bytes.
// The function should iterate through pixels: for i := 0; i < len(src); i += bytesPerPixel { ... }
type PointFunc func(dst, src []byte)

// PointFilter applies a per-pixel transformation using a callback function.
// It handles the iteration, buffering, and ROI logic common to all per-pixel filters.
// The callback is invoked once per row with contiguous pixel data.
type PointFilter struct {
	In    pixfx.Shape
	Out   pixfx.Shape
	Fn    PointFunc
	Ctrls []pixfx.Control // User-defined controls for this filter.
	// Workers is the maximum number of goroutines rows are split across.
	// Values below 2 process rows sequentially, top to bottom.
	// Parallel processing requires an [pixfx.ImageBuffered] source.
	Workers int
}

var _ pixfx.Filter = (*PointFilter)(nil)

// RGBAPointFunc adapts a per-pixel function to a [PointFunc] over RGBA8888 rows.
func RGBAPointFunc(fn func(color.RGBA) color.RGBA) PointFunc {
	return func(dst, src []byte) {
		for i := 0; i+3 < len(src); i += pixfx.BytesPerPixel {
			out := fn(color.RGBA{R: src[i], G: src[i+1], B: src[i+2], A: src[i+3]})
			dst[i], dst[i+1], dst[i+2], dst[i+3] = out.R, out.G, out.B, out.A
		}
	}
}

// NewKindFilter creates an RGBA8888 point filter applying the transform selected by kind.
// It returns a filter whose Process always fails for an invalid kind.
func NewKindFilter(kind Kind) *PointFilter {
	f := &PointFilter{
		In:  pixfx.ShapeRGBA8888,
		Out: pixfx.ShapeRGBA8888,
	}
	if fn := kind.pixelFunc(); fn != nil {
		f.Fn = RGBAPointFunc(fn)
	}
	return f
}

// ShapeIO implements [pixfx.Filter].
func (f *PointFilter) ShapeIO() (output, input pixfx.Shape) {
	return f.Out, f.In
}

// Controls implements [pixfx.Filter].
func (f *PointFilter) Controls() []pixfx.Control {
	return f.Ctrls
}

// Process implements [pixfx.Filter].
func (f *PointFilter) Process(dst []byte, src pixfx.Image, roi *image.Rectangle) (pixfx.Dims, error) {
	if f.Fn == nil {
		return pixfx.Dims{}, errNilPixelFunc
	}

	outShape, inShape := f.ShapeIO()
	srcDims := src.Dims()
	if srcDims.Shape != inShape {
		return pixfx.Dims{}, errShapeMismatch
	}

	inBytesPerPixel := (inShape.BitsPerPixel() + 7) / 8
	outBytesPerPixel := (outShape.BitsPerPixel() + 7) / 8

	// Calculate output dimensions based on ROI or full image.
	var outWidth, outHeight int
	if roi != nil {
		outWidth, outHeight = roi.Dx(), roi.Dy()
	} else {
		outWidth, outHeight = srcDims.Width, srcDims.Height
	}
	outStride := outWidth * outBytesPerPixel

	dstDims := pixfx.Dims{
		Width:  outWidth,
		Height: outHeight,
		Stride: outStride,
		Shape:  outShape,
	}

	dst, _, err := pixfx.ValidateProcessArgs(dst, dstDims, src, roi)
	if err != nil {
		return pixfx.Dims{}, err
	}

	// Determine source region to process.
	startX, startY := 0, 0
	endX, endY := srcDims.Width, srcDims.Height
	if roi != nil {
		startX, startY = roi.Min.X, roi.Min.Y
		endX, endY = roi.Max.X, roi.Max.Y
	}
	srcStart := startX * inBytesPerPixel
	srcEnd := endX * inBytesPerPixel

	processRow := func(y int, srcRow []byte) {
		dstRowStart := (y - startY) * outStride
		f.Fn(dst[dstRowStart:dstRowStart+outStride], srcRow[srcStart:srcEnd])
	}

	var srcBuf []byte
	if buffered, ok := src.(pixfx.ImageBuffered); ok {
		srcBuf = buffered.Buffer()
	}
	srcRowBytes := srcDims.SizeRow()
	if srcBuf != nil && int64(len(srcBuf)) < srcDims.Size() {
		return pixfx.Dims{}, pixfx.ErrShortImageBuffer
	}

	if srcBuf != nil {
		workers := f.workersFor(endY-startY, srcRowBytes)
		if workers > 1 {
			parallelRows(startY, endY, workers, func(y int) {
				off := y * srcDims.Stride
				processRow(y, srcBuf[off:off+srcRowBytes])
			})
			return dstDims, nil
		}
	}

	rowBuf := make([]byte, srcRowBytes) // Fallback buffer for ReadAt.
	for y := startY; y < endY; y++ {
		srcRow, err := pixfx.ImageRow(rowBuf, src, y)
		if err != nil {
			return pixfx.Dims{}, err
		}
		processRow(y, srcRow)
	}
	return dstDims, nil
}

// workersFor returns how many goroutines to split rows over so that each
// handles at least minParallelRowBytes of source data.
func (f *PointFilter) workersFor(rows, rowBytes int) int {
	if f.Workers < 2 || rows < 2 || rowBytes == 0 {
		return 1
	}
	byData := rows * rowBytes / minParallelRowBytes
	return max(1, min(f.Workers, rows, byData))
}

// parallelRows calls fn once for every row in [startY, endY) using at most
// workers goroutines. Each goroutine handles a contiguous band of rows.
func parallelRows(startY, endY, workers int, fn func(y int)) {
	rows := endY - startY
	band := (rows + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := startY; y0 < endY; y0 += band {
		y1 := min(y0+band, endY)
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				fn(y)
			}
			return nil
		})
	}
	_ = g.Wait()
}

var errNilPixelFunc = errorString("nil PointFunc")

type errorString string

func (e errorString) Error() string { return string(e) }
