package tui

import "github.com/mattn/go-runewidth"

// Cell is a single position in a Buffer: one grapheme cluster plus its
// style. Wide glyphs (CJK, emoji) occupy the cell holding the grapheme and
// are followed by blank continuation cells so that column arithmetic stays
// consistent.
type Cell struct {
	Symbol string
	Style  Style
}

// DefaultCell is the empty cell: a single space with default styling.
var DefaultCell = Cell{Symbol: " "}

// NewCell creates a Cell holding the given grapheme cluster.
func NewCell(symbol string) Cell {
	return Cell{Symbol: symbol}
}

// StyledCell creates a Cell holding the given grapheme cluster and style.
func StyledCell(symbol string, style Style) Cell {
	return Cell{Symbol: symbol, Style: style}
}

// Width returns the display width of the cell's symbol in terminal columns.
func (c Cell) Width() int {
	return runewidth.StringWidth(c.Symbol)
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Symbol == other.Symbol && c.Style.Equal(other.Style)
}

// Reset restores the cell to the default blank state.
func (c *Cell) Reset() {
	*c = DefaultCell
}

// RuneWidth returns the display width of a single rune. Most callers deal
// in grapheme clusters and should use Cell.Width or StringWidth instead.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of a string in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
