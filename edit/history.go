// Package edit keeps an image editing session: the current image, the
// filters applied to it and a bounded undo/redo history.
package edit

import "github.com/soypat/pixfx"

// DefaultHistoryMax is the number of states a [History] keeps by default.
const DefaultHistoryMax = 20

// History is an undo/redo stack of image states. The last pushed state is the current one.
// Pushing a new state discards everything that could be redone.
// The zero value is ready to use and holds [DefaultHistoryMax] states.
type History struct {
	// Max is the maximum number of undoable states. Values below 1 mean [DefaultHistoryMax].
	Max    int
	states []*pixfx.PixelBuffer
	redo   []*pixfx.PixelBuffer
}

func (h *History) max() int {
	if h.Max < 1 {
		return DefaultHistoryMax
	}
	return h.Max
}

// Push makes pb the current state. The oldest state is dropped when the history is full.
func (h *History) Push(pb *pixfx.PixelBuffer) {
	h.states = append(h.states, pb)
	if over := len(h.states) - h.max(); over > 0 {
		clear(h.states[:over])
		h.states = h.states[over:]
	}
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo steps back one state and returns the new current state.
// The first state can't be undone; ok is false when nothing changed.
func (h *History) Undo() (current *pixfx.PixelBuffer, ok bool) {
	if len(h.states) < 2 {
		return h.Current(), false
	}
	last := len(h.states) - 1
	h.redo = append(h.redo, h.states[last])
	h.states[last] = nil
	h.states = h.states[:last]
	return h.Current(), true
}

// Redo reapplies the last undone state and returns it.
func (h *History) Redo() (current *pixfx.PixelBuffer, ok bool) {
	if len(h.redo) == 0 {
		return h.Current(), false
	}
	last := len(h.redo) - 1
	h.states = append(h.states, h.redo[last])
	h.redo[last] = nil
	h.redo = h.redo[:last]
	return h.Current(), true
}

// Current returns the current state or nil if the history is empty.
func (h *History) Current() *pixfx.PixelBuffer {
	if len(h.states) == 0 {
		return nil
	}
	return h.states[len(h.states)-1]
}

// Len returns the number of undoable states, including the current one.
func (h *History) Len() int { return len(h.states) }

// RedoLen returns the number of states that can be redone.
func (h *History) RedoLen() int { return len(h.redo) }

// Reset empties the history.
func (h *History) Reset() {
	clear(h.states)
	clear(h.redo)
	h.states = h.states[:0]
	h.redo = h.redo[:0]
}
