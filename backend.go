package tui

// Backend abstracts the device a Terminal draws to. A backend receives the
// cell updates a frame diff produced and turns them into device
// operations. TestBackend captures them in memory instead.
type Backend interface {
	// Draw applies cell updates. Updates arrive in row-major order.
	Draw(updates []CellChange) error
	// HideCursor makes the hardware cursor invisible.
	HideCursor() error
	// ShowCursor makes the hardware cursor visible at its last position.
	ShowCursor() error
	// SetCursor moves the hardware cursor.
	SetCursor(x, y int) error
	// Clear erases the whole display.
	Clear() error
	// Size returns the display dimensions in cells.
	Size() (Size, error)
	// Flush pushes any buffered operations to the device.
	Flush() error
}

// TestBackend is an in-memory Backend for tests: draws land in a Buffer
// that assertions can read back.
type TestBackend struct {
	buffer        *Buffer
	cursor        Position
	cursorVisible bool
}

var _ Backend = (*TestBackend)(nil)

// NewTestBackend creates a test backend with the given display size.
func NewTestBackend(width, height int) *TestBackend {
	return &TestBackend{buffer: NewBuffer(NewRect(0, 0, width, height))}
}

// Buffer returns the backend's display contents.
func (b *TestBackend) Buffer() *Buffer {
	return b.buffer
}

// Resize changes the display size, clearing the contents.
func (b *TestBackend) Resize(width, height int) {
	b.buffer = NewBuffer(NewRect(0, 0, width, height))
}

// Cursor returns the cursor position and whether it is visible.
func (b *TestBackend) Cursor() (Position, bool) {
	return b.cursor, b.cursorVisible
}

// Draw applies cell updates to the in-memory display.
func (b *TestBackend) Draw(updates []CellChange) error {
	for _, u := range updates {
		b.buffer.SetCell(u.X, u.Y, u.Cell)
	}
	return nil
}

// HideCursor makes the cursor invisible.
func (b *TestBackend) HideCursor() error {
	b.cursorVisible = false
	return nil
}

// ShowCursor makes the cursor visible.
func (b *TestBackend) ShowCursor() error {
	b.cursorVisible = true
	return nil
}

// SetCursor moves the cursor.
func (b *TestBackend) SetCursor(x, y int) error {
	b.cursor = Position{X: x, Y: y}
	return nil
}

// Clear blanks the display.
func (b *TestBackend) Clear() error {
	b.buffer.Reset()
	return nil
}

// Size returns the display dimensions.
func (b *TestBackend) Size() (Size, error) {
	return b.buffer.Area.Size(), nil
}

// Flush is a no-op; draws apply immediately.
func (b *TestBackend) Flush() error {
	return nil
}
