package tui

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Alignment controls horizontal placement of text within its area.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// StyledGrapheme is a single grapheme cluster paired with its resolved
// style. It is the unit text reflow operates on: a grapheme is never split
// across lines.
type StyledGrapheme struct {
	Symbol string
	Style  Style
}

// Width returns the display width of the grapheme in terminal columns.
func (g StyledGrapheme) Width() int {
	return StringWidth(g.Symbol)
}

const (
	nbsp = "\u00a0"
	zwsp = "\u200b"
)

// isWhitespace reports whether the grapheme counts as breakable whitespace.
// A zero-width space breaks even though it renders as nothing, and a
// non-breaking space renders as a space but never breaks.
func (g StyledGrapheme) isWhitespace() bool {
	if g.Symbol == zwsp {
		return true
	}
	if g.Symbol == nbsp || g.Symbol == "" {
		return false
	}
	for _, r := range g.Symbol {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Span is a run of text with a single style.
type Span struct {
	Content string
	Style   Style
}

// NewSpan creates an unstyled Span.
func NewSpan(content string) Span {
	return Span{Content: content}
}

// StyledSpan creates a Span with the given style.
func StyledSpan(content string, style Style) Span {
	return Span{Content: content, Style: style}
}

// Styled returns a copy of the span with the given style.
func (s Span) Styled(style Style) Span {
	s.Style = style
	return s
}

// Width returns the display width of the span in terminal columns.
func (s Span) Width() int {
	return StringWidth(s.Content)
}

// StyledGraphemes splits the span into grapheme clusters, each carrying the
// base style patched with the span's own style.
func (s Span) StyledGraphemes(base Style) []StyledGrapheme {
	style := base.Patch(s.Style)
	var out []StyledGrapheme
	g := uniseg.NewGraphemes(s.Content)
	for g.Next() {
		out = append(out, StyledGrapheme{Symbol: g.Str(), Style: style})
	}
	return out
}

// Line is a sequence of spans rendered on a single terminal row. A line may
// carry its own alignment; if it does not, the containing widget's
// alignment applies.
type Line struct {
	Spans     []Span
	Style     Style
	Alignment Alignment
	// alignmentSet distinguishes an explicit AlignLeft from "unset".
	alignmentSet bool
}

// NewLine creates a Line holding a single unstyled span.
func NewLine(content string) Line {
	return Line{Spans: []Span{NewSpan(content)}}
}

// LineFromSpans creates a Line from the given spans.
func LineFromSpans(spans ...Span) Line {
	return Line{Spans: spans}
}

// StyledLine creates a Line holding a single span with the given style.
func StyledLine(content string, style Style) Line {
	return Line{Spans: []Span{StyledSpan(content, style)}}
}

// Aligned returns a copy of the line with an explicit alignment.
func (l Line) Aligned(a Alignment) Line {
	l.Alignment = a
	l.alignmentSet = true
	return l
}

// WithStyle returns a copy of the line with the given base style. Span
// styles are patched on top of it when the line renders.
func (l Line) WithStyle(style Style) Line {
	l.Style = style
	return l
}

// AlignmentOr returns the line's explicit alignment, or fallback if the
// line has none.
func (l Line) AlignmentOr(fallback Alignment) Alignment {
	if l.alignmentSet {
		return l.Alignment
	}
	return fallback
}

// Width returns the display width of the line in terminal columns.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// String returns the line's text content with styling discarded.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Content)
	}
	return b.String()
}

// StyledGraphemes splits the line into grapheme clusters. Each grapheme
// carries base patched with the line style patched with its span's style.
func (l Line) StyledGraphemes(base Style) []StyledGrapheme {
	style := base.Patch(l.Style)
	var out []StyledGrapheme
	for _, s := range l.Spans {
		out = append(out, s.StyledGraphemes(style)...)
	}
	return out
}

// Text is multi-line styled text.
type Text struct {
	Lines []Line
	Style Style
}

// NewText creates a Text by splitting content on newlines.
func NewText(content string) Text {
	parts := strings.Split(content, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = NewLine(p)
	}
	return Text{Lines: lines}
}

// TextFromLines creates a Text from the given lines.
func TextFromLines(lines ...Line) Text {
	return Text{Lines: lines}
}

// WithStyle returns a copy of the text with the given base style.
func (t Text) WithStyle(style Style) Text {
	t.Style = style
	return t
}

// Width returns the width of the widest line.
func (t Text) Width() int {
	w := 0
	for _, l := range t.Lines {
		if lw := l.Width(); lw > w {
			w = lw
		}
	}
	return w
}

// Height returns the number of lines.
func (t Text) Height() int {
	return len(t.Lines)
}

// String returns the text content with styling discarded, lines joined by
// newlines.
func (t Text) String() string {
	parts := make([]string, len(t.Lines))
	for i, l := range t.Lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}
