package edit

import (
	"errors"
	"fmt"

	"github.com/soypat/pixfx"
	"github.com/soypat/pixfx/filters"
)

// ErrNoImage is returned when a session operation requires a loaded image.
var ErrNoImage = errors.New("no image loaded")

// Option configures a [Session].
type Option func(*Session)

// WithHistoryMax sets the number of undoable states kept by the session.
func WithHistoryMax(n int) Option {
	return func(s *Session) { s.hist.Max = n }
}

// WithWorkers sets the number of goroutines filters may split rows across.
func WithWorkers(n int) Option {
	return func(s *Session) { s.workers = n }
}

// Session applies filters to a single loaded image and tracks its history.
// A Session is not safe for concurrent use.
type Session struct {
	hist    History
	workers int
}

// NewSession returns an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the session image with a copy of buf and clears the history.
func (s *Session) Load(buf []byte, width, height int) error {
	pb, err := pixfx.NewPixelBuffer(buf, width, height)
	if err != nil {
		return err
	}
	s.hist.Reset()
	s.hist.Push(pb.Clone())
	pixfx.Logger().Debug("image loaded", "width", width, "height", height)
	return nil
}

// Apply runs the kind's transform on the current image and records the result.
func (s *Session) Apply(kind filters.Kind) error {
	cur := s.hist.Current()
	if cur == nil {
		return ErrNoImage
	}
	d := cur.Dims()
	out, err := filters.TransformParallel(kind, cur.Buffer(), d.Width, d.Height, s.workers)
	if err != nil {
		return err
	}
	pb, err := pixfx.NewPixelBuffer(out, d.Width, d.Height)
	if err != nil {
		return err
	}
	s.hist.Push(pb)
	pixfx.Logger().Debug("filter applied", "kind", kind, "history", s.hist.Len())
	return nil
}

// ApplyNamed is like [Session.Apply] with the kind looked up by [filters.ParseKind].
func (s *Session) ApplyNamed(name string) error {
	kind, err := filters.ParseKind(name)
	if err != nil {
		return err
	}
	return s.Apply(kind)
}

// Undo reverts the last applied filter. It reports whether anything changed.
func (s *Session) Undo() bool {
	_, ok := s.hist.Undo()
	if ok {
		pixfx.Logger().Debug("undo", "history", s.hist.Len(), "redo", s.hist.RedoLen())
	}
	return ok
}

// Redo reapplies the last undone filter. It reports whether anything changed.
func (s *Session) Redo() bool {
	_, ok := s.hist.Redo()
	if ok {
		pixfx.Logger().Debug("redo", "history", s.hist.Len(), "redo", s.hist.RedoLen())
	}
	return ok
}

// Current returns a copy of the current image buffer and its dimensions.
func (s *Session) Current() (buf []byte, width, height int, err error) {
	cur := s.hist.Current()
	if cur == nil {
		return nil, 0, 0, ErrNoImage
	}
	d := cur.Dims()
	return cur.Clone().Buffer(), d.Width, d.Height, nil
}

// Remove unloads the image and clears the history.
func (s *Session) Remove() {
	s.hist.Reset()
}

// Loaded reports whether the session holds an image.
func (s *Session) Loaded() bool { return s.hist.Current() != nil }

func (s *Session) String() string {
	cur := s.hist.Current()
	if cur == nil {
		return "edit.Session{empty}"
	}
	d := cur.Dims()
	return fmt.Sprintf("edit.Session{%dx%d history=%d redo=%d}", d.Width, d.Height, s.hist.Len(), s.hist.RedoLen())
}
