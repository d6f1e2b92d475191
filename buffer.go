package pixfx

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// BytesPerPixel is the size of a packed RGBA pixel.
const BytesPerPixel = 4

// ErrBufferSizeMismatch is returned when a pixel buffer's length does not
// equal width*height*4. Test for it with [errors.Is].
var ErrBufferSizeMismatch = errors.New("buffer size mismatch")

// BufferSizeError describes a buffer whose length does not match its dimensions.
// It unwraps to [ErrBufferSizeMismatch].
type BufferSizeError struct {
	Len    int
	Width  int
	Height int
}

func (e *BufferSizeError) Error() string {
	if e.Width < 0 || e.Height < 0 {
		return fmt.Sprintf("buffer size mismatch: negative dimensions %dx%d", e.Width, e.Height)
	}
	if dimsOverflow(e.Width, e.Height) {
		return fmt.Sprintf("buffer size mismatch: %dx%d RGBA image exceeds addressable memory", e.Width, e.Height)
	}
	want := e.Width * e.Height * BytesPerPixel
	return fmt.Sprintf("buffer size mismatch: got %d bytes, %dx%d RGBA image needs %d", e.Len, e.Width, e.Height, want)
}

func (e *BufferSizeError) Unwrap() error { return ErrBufferSizeMismatch }

// PixelBuffer is a fully materialized, tightly packed RGBA8888 image in row-major order.
type PixelBuffer struct {
	buf  []byte
	dims Dims
}

var _ ImageBuffered = (*PixelBuffer)(nil)

// CheckBufferSize returns a [*BufferSizeError] if len(buf) != width*height*4.
func CheckBufferSize(buf []byte, width, height int) error {
	if width < 0 || height < 0 || dimsOverflow(width, height) ||
		len(buf) != width*height*BytesPerPixel {
		return &BufferSizeError{Len: len(buf), Width: width, Height: height}
	}
	return nil
}

// dimsOverflow reports whether width*height*BytesPerPixel does not fit in an int.
// width and height must be non-negative.
func dimsOverflow(width, height int) bool {
	return width > 0 && height > math.MaxInt/BytesPerPixel/width
}

// NewPixelBuffer wraps buf as a width×height RGBA image. buf is not copied.
func NewPixelBuffer(buf []byte, width, height int) (*PixelBuffer, error) {
	if err := CheckBufferSize(buf, width, height); err != nil {
		return nil, err
	}
	return &PixelBuffer{
		buf: buf,
		dims: Dims{
			Width:  width,
			Height: height,
			Stride: width * BytesPerPixel,
			Shape:  ShapeRGBA8888,
		},
	}, nil
}

// Dims implements [Image].
func (pb *PixelBuffer) Dims() Dims { return pb.dims }

// Buffer implements [ImageBuffered].
func (pb *PixelBuffer) Buffer() []byte { return pb.buf }

// ReadAt implements [io.ReaderAt].
func (pb *PixelBuffer) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("negative offset")
	} else if off >= int64(len(pb.buf)) {
		return 0, io.EOF
	}
	n := copy(p, pb.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Clone returns a deep copy of pb.
func (pb *PixelBuffer) Clone() *PixelBuffer {
	cp := *pb
	cp.buf = append(make([]byte, 0, len(pb.buf)), pb.buf...)
	return &cp
}
