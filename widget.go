package tui

// Widget is anything that can draw itself into a region of a buffer.
// Widgets are plain values configured up front; Render reads the value and
// writes cells, and must not retain the buffer.
type Widget interface {
	Render(area Rect, buf *Buffer)
}

// StatefulWidget draws itself using state that persists between frames,
// such as a scroll offset or a selection. The widget itself stays a plain
// value; only the state mutates.
type StatefulWidget[S any] interface {
	RenderStateful(area Rect, buf *Buffer, state *S)
}
