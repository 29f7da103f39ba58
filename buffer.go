package tui

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// CellChange is a single cell update produced by Buffer.Diff, addressed in
// absolute terminal coordinates.
type CellChange struct {
	X, Y int
	Cell Cell
}

// Buffer is a rectangular grid of cells covering Area, stored row-major.
// Widgets draw into a Buffer; the terminal diffs consecutive buffers to
// find the minimal set of cells to repaint.
type Buffer struct {
	Area    Rect
	Content []Cell
}

// NewBuffer creates a Buffer covering area, filled with blank cells.
func NewBuffer(area Rect) *Buffer {
	return NewBufferFilled(area, DefaultCell)
}

// NewBufferFilled creates a Buffer covering area with every cell set to fill.
func NewBufferFilled(area Rect, fill Cell) *Buffer {
	content := make([]Cell, area.Area())
	for i := range content {
		content[i] = fill
	}
	return &Buffer{Area: area, Content: content}
}

// NewBufferWithLines creates a Buffer sized to hold the given lines, one
// per row, at origin (0, 0). The width is that of the widest line.
func NewBufferWithLines(lines ...string) *Buffer {
	width := 0
	for _, l := range lines {
		if w := StringWidth(l); w > width {
			width = w
		}
	}
	b := NewBuffer(NewRect(0, 0, width, len(lines)))
	for y, l := range lines {
		b.SetString(0, y, l, Style{})
	}
	return b
}

// index translates absolute coordinates into a content offset. The second
// return is false when the position lies outside the buffer's area.
func (b *Buffer) index(x, y int) (int, bool) {
	if !b.Area.Contains(x, y) {
		return 0, false
	}
	return (y-b.Area.Y)*b.Area.Width + (x - b.Area.X), true
}

// PosOf translates a content offset into absolute coordinates.
func (b *Buffer) PosOf(i int) (x, y int) {
	return b.Area.X + i%b.Area.Width, b.Area.Y + i/b.Area.Width
}

// CellAt returns the cell at the given absolute position, or a blank cell
// if the position is outside the buffer.
func (b *Buffer) CellAt(x, y int) Cell {
	i, ok := b.index(x, y)
	if !ok {
		return DefaultCell
	}
	return b.Content[i]
}

// SetCell writes a cell at the given absolute position. Writes outside the
// buffer's area are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if i, ok := b.index(x, y); ok {
		b.Content[i] = c
	}
}

// setSymbol writes a symbol at the given position, patching the style onto
// whatever the cell already carries. Out-of-area writes are dropped.
func (b *Buffer) setSymbol(x, y int, symbol string, style Style) {
	if i, ok := b.index(x, y); ok {
		b.Content[i].Symbol = symbol
		b.Content[i].Style = b.Content[i].Style.Patch(style)
	}
}

// SetString writes a string starting at (x, y), clipped to the buffer's
// area. It returns the coordinates one past the last cell written, which
// lets callers lay out runs of text end to end.
func (b *Buffer) SetString(x, y int, s string, style Style) (int, int) {
	return b.SetStringN(x, y, s, math.MaxInt, style)
}

// SetStringN writes at most maxWidth columns of a string starting at
// (x, y). The string is split into grapheme clusters; a cluster that does
// not fully fit is dropped rather than split. Cells shadowed by a wide
// cluster are reset to blanks.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style Style) (int, int) {
	if y < b.Area.Top() || y >= b.Area.Bottom() ||
		x < b.Area.Left() || x >= b.Area.Right() {
		return x, y
	}
	index, _ := b.index(x, y)
	maxOffset := b.Area.Right()
	if maxWidth < maxOffset-x {
		maxOffset = x + maxWidth
	}

	xOffset := x
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		sym := g.Str()
		width := StringWidth(sym)
		if width == 0 {
			continue
		}
		if width > maxOffset-xOffset {
			break
		}
		b.Content[index].Symbol = sym
		b.Content[index].Style = b.Content[index].Style.Patch(style)
		// Cells hidden behind a wide cluster hold blanks.
		for k := index + 1; k < index+width; k++ {
			b.Content[k].Reset()
		}
		index += width
		xOffset += width
	}
	return xOffset, y
}

// SetLine writes a styled line starting at (x, y), using at most maxWidth
// columns. It returns the coordinates one past the last cell written.
func (b *Buffer) SetLine(x, y int, line Line, maxWidth int) (int, int) {
	remaining := maxWidth
	for _, span := range line.Spans {
		if remaining <= 0 {
			break
		}
		nextX, _ := b.SetStringN(x, y, span.Content, remaining, line.Style.Patch(span.Style))
		remaining -= nextX - x
		x = nextX
	}
	return x, y
}

// SetSpan writes a styled span starting at (x, y), using at most maxWidth
// columns. It returns the coordinates one past the last cell written.
func (b *Buffer) SetSpan(x, y int, span Span, maxWidth int) (int, int) {
	return b.SetStringN(x, y, span.Content, maxWidth, span.Style)
}

// SetStyle patches a style onto every cell in the given area. The area is
// clipped to the buffer.
func (b *Buffer) SetStyle(area Rect, style Style) {
	area = area.Intersect(b.Area)
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			i, _ := b.index(x, y)
			b.Content[i].Style = b.Content[i].Style.Patch(style)
		}
	}
}

// Fill sets every cell in the given area to c. The area is clipped to the
// buffer.
func (b *Buffer) Fill(area Rect, c Cell) {
	area = area.Intersect(b.Area)
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			i, _ := b.index(x, y)
			b.Content[i] = c
		}
	}
}

// SetStringGradient writes a string starting at (x, y) with a foreground
// gradient running along its grapheme clusters, first cluster at the start
// color and last at the end. The style's other fields apply unchanged. It
// returns the coordinates one past the last cell written.
func (b *Buffer) SetStringGradient(x, y int, s string, g Gradient, style Style) (int, int) {
	if y < b.Area.Top() || y >= b.Area.Bottom() ||
		x < b.Area.Left() || x >= b.Area.Right() {
		return x, y
	}
	var clusters []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return x, y
	}

	index, _ := b.index(x, y)
	xOffset := x
	for i, sym := range clusters {
		width := StringWidth(sym)
		if width == 0 {
			continue
		}
		if width > b.Area.Right()-xOffset {
			break
		}
		t := 0.0
		if len(clusters) > 1 {
			t = float64(i) / float64(len(clusters)-1)
		}
		cellStyle := style
		cellStyle.Fg = g.At(t)
		b.Content[index].Symbol = sym
		b.Content[index].Style = b.Content[index].Style.Patch(cellStyle)
		for k := index + 1; k < index+width; k++ {
			b.Content[k].Reset()
		}
		index += width
		xOffset += width
	}
	return xOffset, y
}

// FillGradient fills an area with the given symbol, coloring each cell's
// background by the gradient along its direction. The area is clipped to
// the buffer.
func (b *Buffer) FillGradient(area Rect, symbol string, g Gradient, style Style) {
	area = area.Intersect(b.Area)
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			t := g.PositionAt(x-area.X, y-area.Y, area.Width, area.Height)
			cellStyle := style
			cellStyle.Bg = g.At(t)
			i, _ := b.index(x, y)
			b.Content[i] = Cell{Symbol: symbol, Style: cellStyle}
		}
	}
}

// Reset restores every cell to the blank state.
func (b *Buffer) Reset() {
	for i := range b.Content {
		b.Content[i].Reset()
	}
}

// Merge grows the buffer to the union of both areas and overlays other's
// cells, overwriting any overlap. Cells covered by neither buffer are
// blank.
func (b *Buffer) Merge(other *Buffer) {
	area := b.Area.Union(other.Area)
	merged := make([]Cell, area.Area())
	for i := range merged {
		merged[i] = DefaultCell
	}
	reindex := func(src *Buffer, i int) int {
		x, y := src.PosOf(i)
		return (y-area.Y)*area.Width + (x - area.X)
	}
	for i := range b.Content {
		merged[reindex(b, i)] = b.Content[i]
	}
	for i := range other.Content {
		merged[reindex(other, i)] = other.Content[i]
	}
	b.Area = area
	b.Content = merged
}

// Resize adjusts the buffer to cover area, truncating or extending the
// content as needed. Cell positions are not preserved across a resize; the
// terminal clears and repaints after one.
func (b *Buffer) Resize(area Rect) {
	length := area.Area()
	if len(b.Content) > length {
		b.Content = b.Content[:length]
	} else {
		for len(b.Content) < length {
			b.Content = append(b.Content, DefaultCell)
		}
	}
	b.Area = area
}

// Diff compares this buffer (the previously painted frame) against next
// and returns the cell updates needed to turn one into the other, in
// row-major order. Cells hidden behind an unchanged wide cluster are
// skipped. When a wide cluster is emitted, its blank continuation cells
// are emitted with it so the terminal never holds stale content in the
// shadowed columns. Both buffers must cover the same area.
func (b *Buffer) Diff(next *Buffer) []CellChange {
	var updates []CellChange
	// Columns still affected by a wide cluster seen in either buffer.
	invalidated := 0
	// Columns shadowed by a wide cluster already handled.
	toSkip := 0
	n := len(next.Content)
	if len(b.Content) < n {
		n = len(b.Content)
	}
	for i := 0; i < n; i++ {
		curr, prev := next.Content[i], b.Content[i]
		currWidth := curr.Width()
		if (!curr.Equal(prev) || invalidated > 0) && toSkip == 0 {
			x, y := next.PosOf(i)
			updates = append(updates, CellChange{X: x, Y: y, Cell: curr})
			for k := 1; k < currWidth && i+k < n; k++ {
				cx, cy := next.PosOf(i + k)
				updates = append(updates, CellChange{X: cx, Y: cy, Cell: next.Content[i+k]})
			}
		}
		toSkip = currWidth - 1
		if toSkip < 0 {
			toSkip = 0
		}
		affected := currWidth
		if pw := prev.Width(); pw > affected {
			affected = pw
		}
		if affected > invalidated {
			invalidated = affected
		}
		invalidated--
		if invalidated < 0 {
			invalidated = 0
		}
	}
	return updates
}

// Lines renders the buffer's rows as plain strings with styling discarded.
// Cells shadowed by a wide cluster are omitted so each row's display width
// matches the buffer width.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.Area.Height)
	for y := 0; y < b.Area.Height; y++ {
		var sb strings.Builder
		for x := 0; x < b.Area.Width; {
			c := b.Content[y*b.Area.Width+x]
			sb.WriteString(c.Symbol)
			w := c.Width()
			if w < 1 {
				w = 1
			}
			x += w
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String renders the buffer as plain text, rows joined by newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
