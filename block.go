package tui

// Borders is a bitflag selecting which sides of a Block get a border.
type Borders uint8

const (
	BordersNone  Borders = 0
	BorderTop    Borders = 1 << 0
	BorderRight  Borders = 1 << 1
	BorderBottom Borders = 1 << 2
	BorderLeft   Borders = 1 << 3
	BordersAll           = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has returns true if all sides in other are set.
func (b Borders) Has(other Borders) bool {
	return b&other == other
}

// BorderType selects the characters a Block's border is drawn with.
type BorderType uint8

const (
	// BorderPlain uses single-line box-drawing characters (┌─┐).
	BorderPlain BorderType = iota
	// BorderRounded uses single lines with rounded corners (╭─╮).
	BorderRounded
	// BorderDouble uses double-line box-drawing characters (╔═╗).
	BorderDouble
	// BorderThick uses heavy box-drawing characters (┏━┓).
	BorderThick
	// BorderQuadrantInside uses half-block characters on the inner half of
	// each border cell.
	BorderQuadrantInside
	// BorderQuadrantOutside uses half-block characters on the outer half of
	// each border cell.
	BorderQuadrantOutside
)

// borderSet holds the symbols for each part of a border.
type borderSet struct {
	topLeft, topRight       string
	bottomLeft, bottomRight string
	verticalLeft            string
	verticalRight           string
	horizontalTop           string
	horizontalBottom        string
}

func (t BorderType) set() borderSet {
	switch t {
	case BorderRounded:
		return borderSet{"╭", "╮", "╰", "╯", "│", "│", "─", "─"}
	case BorderDouble:
		return borderSet{"╔", "╗", "╚", "╝", "║", "║", "═", "═"}
	case BorderThick:
		return borderSet{"┏", "┓", "┗", "┛", "┃", "┃", "━", "━"}
	case BorderQuadrantInside:
		return borderSet{"▗", "▖", "▝", "▘", "▐", "▌", "▄", "▀"}
	case BorderQuadrantOutside:
		return borderSet{"▛", "▜", "▙", "▟", "▌", "▐", "▀", "▄"}
	default:
		return borderSet{"┌", "┐", "└", "┘", "│", "│", "─", "─"}
	}
}

// Padding is extra blank space between a Block's border and its inner area.
type Padding struct {
	Left, Right, Top, Bottom int
}

// PaddingUniform returns Padding with the same amount on all sides.
func PaddingUniform(n int) Padding {
	return Padding{Left: n, Right: n, Top: n, Bottom: n}
}

// PaddingSymmetric returns Padding with the given horizontal amount on the
// left and right and vertical amount on the top and bottom.
func PaddingSymmetric(horizontal, vertical int) Padding {
	return Padding{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}

// Block is a box around another widget: optional borders on each side,
// titles in the top and bottom rows, padding, and a base style for the
// whole area. Widgets that take a Block render it first and lay their
// content into Block.Inner of their area.
type Block struct {
	topTitles       []Line
	bottomTitles    []Line
	titlesStyle     Style
	titlesAlignment Alignment
	borders         Borders
	borderType      BorderType
	borderStyle     Style
	borderGradient  *Gradient
	style           Style
	padding         Padding
}

// NewBlock returns an empty Block with no borders and no titles.
func NewBlock() Block {
	return Block{}
}

// Bordered returns a Block with a plain border on all sides.
func Bordered() Block {
	return Block{borders: BordersAll}
}

// Title adds a title to the block's top row. Multiple titles render side
// by side with a one column gap.
func (b Block) Title(title Line) Block {
	b.topTitles = append(sliceCopy(b.topTitles), title)
	return b
}

// TitleBottom adds a title to the block's bottom row.
func (b Block) TitleBottom(title Line) Block {
	b.bottomTitles = append(sliceCopy(b.bottomTitles), title)
	return b
}

// TitleStyle sets the base style for all titles. A title's own style is
// patched on top of it.
func (b Block) TitleStyle(style Style) Block {
	b.titlesStyle = style
	return b
}

// TitleAlignment sets the alignment for titles that do not carry their own.
func (b Block) TitleAlignment(a Alignment) Block {
	b.titlesAlignment = a
	return b
}

// WithBorders selects which sides get a border.
func (b Block) WithBorders(borders Borders) Block {
	b.borders = borders
	return b
}

// WithBorderType selects the border character set.
func (b Block) WithBorderType(t BorderType) Block {
	b.borderType = t
	return b
}

// BorderStyle sets the style the border is drawn with.
func (b Block) BorderStyle(style Style) Block {
	b.borderStyle = style
	return b
}

// BorderGradient colors the border with a gradient running around the
// perimeter instead of a flat foreground color.
func (b Block) BorderGradient(g Gradient) Block {
	b.borderGradient = &g
	return b
}

// WithStyle sets the base style applied to the block's whole area before
// anything else renders.
func (b Block) WithStyle(style Style) Block {
	b.style = style
	return b
}

// WithPadding sets the padding between the border and the inner area.
func (b Block) WithPadding(p Padding) Block {
	b.padding = p
	return b
}

func sliceCopy(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Inner returns the area left for content after borders, title rows, and
// padding are taken out. A title row is reserved even without a border on
// that side.
func (b Block) Inner(area Rect) Rect {
	x, y := area.X, area.Y
	width, height := area.Width, area.Height

	if b.borders.Has(BorderLeft) {
		if width > 0 {
			x++
			width--
		}
	}
	if b.borders.Has(BorderTop) || len(b.topTitles) > 0 {
		if height > 0 {
			y++
			height--
		}
	}
	if b.borders.Has(BorderRight) && width > 0 {
		width--
	}
	if (b.borders.Has(BorderBottom) || len(b.bottomTitles) > 0) && height > 0 {
		height--
	}

	x += b.padding.Left
	y += b.padding.Top
	width -= b.padding.Left + b.padding.Right
	height -= b.padding.Top + b.padding.Bottom

	return NewRect(x, y, width, height)
}

// Render draws the block into the buffer.
func (b Block) Render(area Rect, buf *Buffer) {
	area = area.Intersect(buf.Area)
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, b.style)
	b.renderBorders(area, buf)
	b.renderTitles(area, buf, b.topTitles, false)
	b.renderTitles(area, buf, b.bottomTitles, true)
}

// borderCellStyle returns the style for one border cell. With a gradient
// set, the foreground follows the perimeter position, mirrored so the
// color wraps without a seam where the path closes.
func (b Block) borderCellStyle(x, y int, area Rect) Style {
	style := b.borderStyle
	if b.borderGradient == nil {
		return style
	}
	left, top := area.Left(), area.Top()
	right, bottom := area.Right()-1, area.Bottom()-1
	width, height := float64(area.Width), float64(area.Height)
	perimeter := 2*width + 2*height - 4
	if perimeter <= 0 {
		return style
	}

	// Position along the perimeter, clockwise from the top-left corner.
	var pos float64
	switch {
	case y == top:
		pos = float64(x - left)
	case x == right:
		pos = width - 1 + float64(y-top)
	case y == bottom:
		pos = width - 1 + height - 1 + float64(right-x)
	default:
		pos = width - 1 + height - 1 + width - 1 + float64(bottom-y)
	}
	t := pos / perimeter
	if t <= 0.5 {
		t = 2 * t
	} else {
		t = 2 * (1 - t)
	}
	style.Fg = b.borderGradient.At(t)
	return style
}

func (b Block) renderBorders(area Rect, buf *Buffer) {
	if b.borders == BordersNone {
		return
	}
	set := b.borderType.set()
	left, top := area.Left(), area.Top()
	right, bottom := area.Right(), area.Bottom()

	if b.borders.Has(BorderLeft) {
		for y := top; y < bottom; y++ {
			buf.setSymbol(left, y, set.verticalLeft, b.borderCellStyle(left, y, area))
		}
	}
	if b.borders.Has(BorderTop) {
		for x := left; x < right; x++ {
			buf.setSymbol(x, top, set.horizontalTop, b.borderCellStyle(x, top, area))
		}
	}
	if b.borders.Has(BorderRight) {
		for y := top; y < bottom; y++ {
			buf.setSymbol(right-1, y, set.verticalRight, b.borderCellStyle(right-1, y, area))
		}
	}
	if b.borders.Has(BorderBottom) {
		for x := left; x < right; x++ {
			buf.setSymbol(x, bottom-1, set.horizontalBottom, b.borderCellStyle(x, bottom-1, area))
		}
	}

	if b.borders.Has(BorderRight | BorderBottom) {
		buf.setSymbol(right-1, bottom-1, set.bottomRight, b.borderCellStyle(right-1, bottom-1, area))
	}
	if b.borders.Has(BorderRight | BorderTop) {
		buf.setSymbol(right-1, top, set.topRight, b.borderCellStyle(right-1, top, area))
	}
	if b.borders.Has(BorderLeft | BorderBottom) {
		buf.setSymbol(left, bottom-1, set.bottomLeft, b.borderCellStyle(left, bottom-1, area))
	}
	if b.borders.Has(BorderLeft | BorderTop) {
		buf.setSymbol(left, top, set.topLeft, b.borderCellStyle(left, top, area))
	}
}

// titlesArea is the single row titles render into: the top or bottom row
// of the block, excluding any left and right border columns.
func (b Block) titlesArea(area Rect, bottom bool) Rect {
	x := area.Left()
	width := area.Width
	if b.borders.Has(BorderLeft) {
		x++
		width--
	}
	if b.borders.Has(BorderRight) {
		width--
	}
	y := area.Top()
	if bottom {
		y = area.Bottom() - 1
	}
	return NewRect(x, y, width, 1)
}

func (b Block) renderTitles(area Rect, buf *Buffer, titles []Line, bottom bool) {
	if len(titles) == 0 {
		return
	}
	ta := b.titlesArea(area, bottom)
	if ta.IsEmpty() {
		return
	}
	b.renderTitlesAligned(ta, buf, titles, AlignLeft)
	b.renderTitlesAligned(ta, buf, titles, AlignCenter)
	b.renderTitlesAligned(ta, buf, titles, AlignRight)
}

func (b Block) renderTitlesAligned(ta Rect, buf *Buffer, titles []Line, alignment Alignment) {
	matching := titles[:0:0]
	for _, t := range titles {
		if t.AlignmentOr(b.titlesAlignment) == alignment {
			matching = append(matching, t)
		}
	}
	if len(matching) == 0 {
		return
	}

	styled := func(t Line) Line {
		t.Style = b.titlesStyle.Patch(t.Style)
		return t
	}

	switch alignment {
	case AlignLeft:
		offset := 0
		for _, t := range matching {
			x := ta.X + offset
			offset += t.Width() + 1
			if x >= ta.Right() {
				break
			}
			buf.SetLine(x, ta.Y, styled(t), ta.Right()-x)
		}
	case AlignCenter:
		total := 0
		for _, t := range matching {
			total += t.Width() + 1
		}
		total--
		x := ta.X
		if total < ta.Width {
			x += (ta.Width - total) / 2
		}
		for _, t := range matching {
			if x >= ta.Right() {
				break
			}
			x, _ = buf.SetLine(x, ta.Y, styled(t), ta.Right()-x)
			x++
		}
	case AlignRight:
		// Lay titles out right to left so the last title hugs the edge.
		offset := 0
		for i := len(matching) - 1; i >= 0; i-- {
			t := matching[i]
			offset += t.Width() + 1
			x := ta.Right() - (offset - 1)
			if x < ta.X {
				x = ta.X
			}
			buf.SetLine(x, ta.Y, styled(t), ta.Right()-x)
		}
	}
}
