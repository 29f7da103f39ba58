package tui

// Wrap configures word wrapping for a Paragraph. When Trim is set, leading
// whitespace is dropped from each wrapped screen line.
type Wrap struct {
	Trim bool
}

// Paragraph renders multi-line styled text, optionally word-wrapped,
// scrolled, aligned, and boxed in a Block.
type Paragraph struct {
	text      Text
	block     *Block
	style     Style
	wrap      *Wrap
	scroll    Position
	alignment Alignment
}

// NewParagraph creates a Paragraph rendering the given text.
func NewParagraph(text Text) Paragraph {
	return Paragraph{text: text}
}

// WithBlock wraps the paragraph in a block; text renders into the block's
// inner area.
func (p Paragraph) WithBlock(b Block) Paragraph {
	p.block = &b
	return p
}

// WithStyle sets the base style for the paragraph's whole area.
func (p Paragraph) WithStyle(style Style) Paragraph {
	p.style = style
	return p
}

// Wrapped enables word wrapping. Without it, each line is truncated at the
// area's right edge.
func (p Paragraph) Wrapped(w Wrap) Paragraph {
	p.wrap = &w
	return p
}

// Scroll offsets the rendered text by y rows and x columns. The column
// offset only applies when wrapping is off; scrolling horizontally through
// wrapped text has no meaning.
func (p Paragraph) Scroll(x, y int) Paragraph {
	p.scroll = Position{X: x, Y: y}
	return p
}

// Aligned sets the alignment for lines that do not carry their own.
func (p Paragraph) Aligned(a Alignment) Paragraph {
	p.alignment = a
	return p
}

// Render draws the paragraph into the buffer.
func (p Paragraph) Render(area Rect, buf *Buffer) {
	area = area.Intersect(buf.Area)
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, p.style)
	textArea := area
	if p.block != nil {
		p.block.Render(area, buf)
		textArea = p.block.Inner(area)
	}
	if textArea.IsEmpty() {
		return
	}

	input := make([]inputLine, len(p.text.Lines))
	for i, line := range p.text.Lines {
		input[i] = inputLine{
			graphemes: line.StyledGraphemes(p.text.Style),
			alignment: line.AlignmentOr(p.alignment),
		}
	}

	var composer *lineComposer
	if p.wrap != nil {
		composer = newWordWrapper(input, textArea.Width, p.wrap.Trim)
	} else {
		composer = newLineTruncator(input, textArea.Width)
		composer.setHorizontalOffset(p.scroll.X)
	}

	y := 0
	for {
		line, ok := composer.nextLine()
		if !ok {
			break
		}
		if y >= p.scroll.Y {
			x := lineOffset(line.width, textArea.Width, line.alignment)
			for _, g := range line.graphemes {
				width := g.Width()
				if width == 0 {
					continue
				}
				buf.setSymbol(textArea.Left()+x, textArea.Top()+y-p.scroll.Y, g.Symbol, g.Style)
				x += width
			}
		}
		y++
		if y >= textArea.Height+p.scroll.Y {
			break
		}
	}
}

// lineOffset returns the starting column for a line of the given width
// within an area of the given width.
func lineOffset(lineWidth, areaWidth int, alignment Alignment) int {
	switch alignment {
	case AlignCenter:
		offset := areaWidth/2 - lineWidth/2
		if offset < 0 {
			return 0
		}
		return offset
	case AlignRight:
		if lineWidth > areaWidth {
			return 0
		}
		return areaWidth - lineWidth
	default:
		return 0
	}
}
