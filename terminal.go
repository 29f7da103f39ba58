package tui

import "github.com/pkg/errors"

// Frame is one drawing pass handed to the closure given to Terminal.Draw.
// Widgets render into the frame's buffer; after the closure returns, the
// terminal diffs the buffer against the previous frame and repaints only
// what changed.
type Frame struct {
	buffer *Buffer
	area   Rect
	cursor *Position
}

// Area returns the full drawable area of the frame.
func (f *Frame) Area() Rect {
	return f.area
}

// Buffer returns the buffer this frame draws into.
func (f *Frame) Buffer() *Buffer {
	return f.buffer
}

// RenderWidget draws a widget into the given region of the frame.
func (f *Frame) RenderWidget(w Widget, area Rect) {
	w.Render(area, f.buffer)
}

// SetCursor places the hardware cursor for this frame. Without a call the
// cursor stays hidden.
func (f *Frame) SetCursor(x, y int) {
	f.cursor = &Position{X: x, Y: y}
}

// RenderStatefulWidget draws a stateful widget into the given region of
// the frame, threading its persistent state through.
func RenderStatefulWidget[S any](f *Frame, w StatefulWidget[S], area Rect, state *S) {
	w.RenderStateful(area, f.buffer, state)
}

// Terminal owns the draw loop: it keeps the current and previous frame
// buffers, resizes them when the backend reports a new size, and pushes
// minimal diffs to the backend after each draw.
type Terminal struct {
	backend  Backend
	buffers  [2]*Buffer
	current  int
	viewport Rect
}

// NewTerminal creates a Terminal over the given backend, sized to the
// backend's current dimensions.
func NewTerminal(backend Backend) (*Terminal, error) {
	size, err := backend.Size()
	if err != nil {
		return nil, errors.Wrap(err, "querying backend size")
	}
	viewport := NewRect(0, 0, size.Width, size.Height)
	return &Terminal{
		backend:  backend,
		buffers:  [2]*Buffer{NewBuffer(viewport), NewBuffer(viewport)},
		viewport: viewport,
	}, nil
}

// Viewport returns the area frames currently cover.
func (t *Terminal) Viewport() Rect {
	return t.viewport
}

// Size returns the backend's current dimensions.
func (t *Terminal) Size() (Size, error) {
	return t.backend.Size()
}

// Draw runs one frame: it synchronizes with the backend size, calls fn to
// fill the frame, then flushes the diff against the previous frame to the
// backend.
func (t *Terminal) Draw(fn func(*Frame)) error {
	if err := t.autoresize(); err != nil {
		return err
	}

	frame := Frame{
		buffer: t.buffers[t.current],
		area:   t.viewport,
	}
	fn(&frame)

	if err := t.flush(); err != nil {
		return err
	}

	if frame.cursor == nil {
		if err := t.backend.HideCursor(); err != nil {
			return errors.Wrap(err, "hiding cursor")
		}
	} else {
		if err := t.backend.SetCursor(frame.cursor.X, frame.cursor.Y); err != nil {
			return errors.Wrap(err, "positioning cursor")
		}
		if err := t.backend.ShowCursor(); err != nil {
			return errors.Wrap(err, "showing cursor")
		}
	}

	if err := t.backend.Flush(); err != nil {
		return errors.Wrap(err, "flushing backend")
	}

	// The drawn frame becomes the reference; the other buffer is recycled
	// for the next frame.
	t.current = 1 - t.current
	t.buffers[t.current].Reset()
	return nil
}

// flush diffs the frame being drawn against the previously painted one and
// hands the updates to the backend.
func (t *Terminal) flush() error {
	previous := t.buffers[1-t.current]
	updates := previous.Diff(t.buffers[t.current])
	return errors.Wrap(t.backend.Draw(updates), "drawing updates")
}

// autoresize re-sizes both frame buffers when the backend's dimensions
// changed. The display is cleared so the next diff repaints everything.
func (t *Terminal) autoresize() error {
	size, err := t.backend.Size()
	if err != nil {
		return errors.Wrap(err, "querying backend size")
	}
	area := NewRect(0, 0, size.Width, size.Height)
	if area == t.viewport {
		return nil
	}
	t.buffers[0].Resize(area)
	t.buffers[1].Resize(area)
	t.buffers[0].Reset()
	t.buffers[1].Reset()
	t.viewport = area
	return errors.Wrap(t.backend.Clear(), "clearing display")
}

// Clear forces a full repaint on the next draw.
func (t *Terminal) Clear() error {
	t.buffers[1-t.current].Reset()
	return errors.Wrap(t.backend.Clear(), "clearing display")
}
