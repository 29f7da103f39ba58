package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// TcellBackend drives a real terminal through a tcell screen.
type TcellBackend struct {
	screen tcell.Screen
	cursor Position
}

var _ Backend = (*TcellBackend)(nil)

// NewTcellBackend allocates and initializes a tcell screen for the
// attached terminal. Call Close to restore the terminal state.
func NewTcellBackend() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating tcell screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing tcell screen")
	}
	return &TcellBackend{screen: screen}, nil
}

// NewTcellBackendFromScreen wraps an already-initialized screen. Useful
// with tcell's simulation screen.
func NewTcellBackendFromScreen(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{screen: screen}
}

// Screen returns the underlying tcell screen, for event polling.
func (b *TcellBackend) Screen() tcell.Screen {
	return b.screen
}

// Close restores the terminal to its previous state.
func (b *TcellBackend) Close() {
	b.screen.Fini()
}

// Draw applies cell updates to the screen.
func (b *TcellBackend) Draw(updates []CellChange) error {
	for _, u := range updates {
		mainc := ' '
		var combc []rune
		if runes := []rune(u.Cell.Symbol); len(runes) > 0 {
			mainc = runes[0]
			combc = runes[1:]
		}
		b.screen.SetContent(u.X, u.Y, mainc, combc, toTcellStyle(u.Cell.Style))
	}
	return nil
}

// HideCursor makes the hardware cursor invisible.
func (b *TcellBackend) HideCursor() error {
	b.screen.HideCursor()
	return nil
}

// ShowCursor makes the hardware cursor visible at its last set position.
func (b *TcellBackend) ShowCursor() error {
	b.screen.ShowCursor(b.cursor.X, b.cursor.Y)
	return nil
}

// SetCursor moves the hardware cursor.
func (b *TcellBackend) SetCursor(x, y int) error {
	b.cursor = Position{X: x, Y: y}
	b.screen.ShowCursor(x, y)
	return nil
}

// Clear erases the whole screen.
func (b *TcellBackend) Clear() error {
	b.screen.Clear()
	return nil
}

// Size returns the screen dimensions in cells.
func (b *TcellBackend) Size() (Size, error) {
	w, h := b.screen.Size()
	return Size{Width: w, Height: h}, nil
}

// Flush pushes pending content to the terminal.
func (b *TcellBackend) Flush() error {
	b.screen.Show()
	return nil
}

// toTcellColor translates a Color to tcell's representation.
func toTcellColor(c Color) tcell.Color {
	switch c.Type() {
	case ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}

// toTcellStyle translates a Style to tcell's representation.
func toTcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(toTcellColor(s.Fg)).
		Background(toTcellColor(s.Bg))
	if s.HasAttr(AttrBold) {
		st = st.Bold(true)
	}
	if s.HasAttr(AttrDim) {
		st = st.Dim(true)
	}
	if s.HasAttr(AttrItalic) {
		st = st.Italic(true)
	}
	if s.HasAttr(AttrUnderline) {
		st = st.Underline(true)
	}
	if s.HasAttr(AttrBlink) {
		st = st.Blink(true)
	}
	if s.HasAttr(AttrReverse) {
		st = st.Reverse(true)
	}
	if s.HasAttr(AttrStrikethrough) {
		st = st.StrikeThrough(true)
	}
	return st
}
