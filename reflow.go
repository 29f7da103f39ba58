package tui

import "github.com/rivo/uniseg"

// inputLine is one logical line of text handed to a line composer, already
// broken into styled grapheme clusters.
type inputLine struct {
	graphemes []StyledGrapheme
	alignment Alignment
}

// wrappedLine is one screen line produced by a line composer.
type wrappedLine struct {
	graphemes []StyledGrapheme
	width     int
	alignment Alignment
}

// composerKind selects the reflow strategy. The set is closed: rendering
// dispatches on the kind directly rather than through an interface, so a
// composer is a plain value with no indirection in the per-line loop.
type composerKind uint8

const (
	composerWordWrap composerKind = iota
	composerTruncate
)

// lineComposer turns logical input lines into screen lines no wider than
// maxWidth. The word-wrap kind breaks at whitespace and may emit several
// screen lines per input line; the truncate kind emits exactly one,
// dropping anything past the width.
type lineComposer struct {
	kind     composerKind
	input    []inputLine
	next     int
	maxWidth int

	// word wrap state
	trim             bool
	wrapped          [][]StyledGrapheme
	wrappedIdx       int
	currentAlignment Alignment

	// truncate state
	horizontalOffset int
}

// newWordWrapper returns a composer that breaks lines at whitespace. When
// trim is set, leading whitespace on continuation lines is dropped.
func newWordWrapper(lines []inputLine, maxWidth int, trim bool) *lineComposer {
	return &lineComposer{
		kind:     composerWordWrap,
		input:    lines,
		maxWidth: maxWidth,
		trim:     trim,
	}
}

// newLineTruncator returns a composer that cuts each line at maxWidth.
func newLineTruncator(lines []inputLine, maxWidth int) *lineComposer {
	return &lineComposer{
		kind:     composerTruncate,
		input:    lines,
		maxWidth: maxWidth,
	}
}

// setHorizontalOffset sets the number of leading columns skipped on
// left-aligned lines. Only the truncate kind honors it; horizontal
// scrolling is meaningless when wrapping.
func (c *lineComposer) setHorizontalOffset(offset int) {
	c.horizontalOffset = offset
}

// nextLine returns the next screen line, or false when input is exhausted.
func (c *lineComposer) nextLine() (wrappedLine, bool) {
	if c.maxWidth == 0 {
		return wrappedLine{}, false
	}
	switch c.kind {
	case composerTruncate:
		return c.nextTruncated()
	default:
		return c.nextWrapped()
	}
}

func (c *lineComposer) nextWrapped() (wrappedLine, bool) {
	for {
		// Drain screen lines cached from wrapping the previous input line.
		if c.wrappedIdx < len(c.wrapped) {
			graphemes := c.wrapped[c.wrappedIdx]
			c.wrappedIdx++
			width := 0
			for _, g := range graphemes {
				width += g.Width()
			}
			return wrappedLine{
				graphemes: graphemes,
				width:     width,
				alignment: c.currentAlignment,
			}, true
		}
		if c.next >= len(c.input) {
			return wrappedLine{}, false
		}
		in := c.input[c.next]
		c.next++
		c.currentAlignment = in.alignment
		c.wrapped = c.wrapColumns(in.graphemes)
		c.wrappedIdx = 0
	}
}

// wrapColumns breaks one input line into screen lines of at most maxWidth
// columns, preferring whitespace boundaries. Words wider than maxWidth are
// split mid-word. The result always contains at least one line.
func (c *lineComposer) wrapColumns(input []StyledGrapheme) [][]StyledGrapheme {
	var (
		result                [][]StyledGrapheme
		currentLine           []StyledGrapheme
		currentLineWidth      int
		pendingWord           []StyledGrapheme
		wordWidth             int
		pendingWhitespace     []StyledGrapheme
		whitespaceWidth       int
		nonWhitespacePrevious bool
	)

	for _, g := range input {
		isWs := g.isWhitespace()
		symWidth := g.Width()

		// Ignore symbols wider than the line could ever be.
		if symWidth > c.maxWidth {
			continue
		}

		// Move the pending word onto the line at a word boundary, or when
		// the word alone would overflow an empty line and has to be split.
		wordFound := nonWhitespacePrevious && isWs
		trimmedOverflow := len(currentLine) == 0 && c.trim &&
			wordWidth+symWidth > c.maxWidth
		whitespaceOverflow := len(currentLine) == 0 && c.trim &&
			whitespaceWidth+symWidth > c.maxWidth
		untrimmedOverflow := len(currentLine) == 0 && !c.trim &&
			wordWidth+whitespaceWidth+symWidth > c.maxWidth
		if wordFound || trimmedOverflow || whitespaceOverflow || untrimmedOverflow {
			if len(currentLine) > 0 || !c.trim {
				currentLine = append(currentLine, pendingWhitespace...)
				currentLineWidth += whitespaceWidth
			}
			currentLine = append(currentLine, pendingWord...)
			currentLineWidth += wordWidth
			pendingWhitespace = nil
			pendingWord = nil
			whitespaceWidth = 0
			wordWidth = 0
		}

		// Emit the line when it is full.
		if currentLineWidth >= c.maxWidth ||
			(currentLineWidth+whitespaceWidth+wordWidth >= c.maxWidth && symWidth > 0) {
			remainingWidth := c.maxWidth - currentLineWidth
			if remainingWidth < 0 {
				remainingWidth = 0
			}
			result = append(result, currentLine)
			currentLine = nil
			currentLineWidth = 0

			// Drop pending whitespace that fits at the start of the next
			// line; it was consumed by the break.
			for len(pendingWhitespace) > 0 {
				w := pendingWhitespace[0].Width()
				if w > remainingWidth {
					break
				}
				whitespaceWidth -= w
				remainingWidth -= w
				pendingWhitespace = pendingWhitespace[1:]
			}

			// The whitespace that triggered the break is consumed too.
			if isWs && len(pendingWhitespace) == 0 {
				continue
			}
		}

		if isWs {
			whitespaceWidth += symWidth
			pendingWhitespace = append(pendingWhitespace, g)
		} else {
			wordWidth += symWidth
			pendingWord = append(pendingWord, g)
		}
		nonWhitespacePrevious = !isWs
	}

	// Flush whatever is still pending.
	if len(pendingWord) > 0 || len(pendingWhitespace) > 0 {
		if len(currentLine) == 0 && len(pendingWord) == 0 {
			result = append(result, nil)
		} else if !c.trim || len(currentLine) > 0 {
			currentLine = append(currentLine, pendingWhitespace...)
		}
		currentLine = append(currentLine, pendingWord...)
	}
	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}
	if len(result) == 0 {
		result = append(result, nil)
	}
	return result
}

func (c *lineComposer) nextTruncated() (wrappedLine, bool) {
	if c.next >= len(c.input) {
		return wrappedLine{}, false
	}
	in := c.input[c.next]
	c.next++

	var (
		graphemes    []StyledGrapheme
		currentWidth int
	)
	offset := c.horizontalOffset
	for _, g := range in.graphemes {
		symWidth := g.Width()
		// Ignore symbols wider than the line could ever be.
		if symWidth > c.maxWidth {
			continue
		}
		if currentWidth+symWidth > c.maxWidth {
			break
		}

		symbol := g.Symbol
		if offset > 0 && in.alignment == AlignLeft {
			if symWidth > offset {
				symbol = trimOffset(symbol, offset)
				offset = 0
			} else {
				offset -= symWidth
				symbol = ""
			}
		}
		currentWidth += StringWidth(symbol)
		graphemes = append(graphemes, StyledGrapheme{Symbol: symbol, Style: g.Style})
	}
	return wrappedLine{
		graphemes: graphemes,
		width:     currentWidth,
		alignment: in.alignment,
	}, true
}

// trimOffset drops leading grapheme clusters from src until offset columns
// have been consumed. A cluster wider than the remaining offset is kept
// whole rather than split.
func trimOffset(src string, offset int) string {
	start := 0
	g := uniseg.NewGraphemes(src)
	for g.Next() {
		w := StringWidth(g.Str())
		if w > offset {
			break
		}
		offset -= w
		start += len(g.Str())
	}
	return src[start:]
}
