package tui

// Tabs renders a single row of tab titles separated by a divider, with the
// selected tab highlighted.
type Tabs struct {
	block          *Block
	titles         []Line
	selected       int
	style          Style
	highlightStyle Style
	divider        Span
	paddingLeft    Line
	paddingRight   Line
}

// NewTabs creates a tab row from the given titles. The first tab is
// selected; the selection highlight defaults to reversed video.
func NewTabs(titles ...Line) Tabs {
	return Tabs{
		titles:         titles,
		highlightStyle: NewStyle().Reverse(),
		divider:        NewSpan("│"),
		paddingLeft:    NewLine(" "),
		paddingRight:   NewLine(" "),
	}
}

// Select picks the highlighted tab by index. An out-of-range index
// highlights nothing.
func (t Tabs) Select(index int) Tabs {
	t.selected = index
	return t
}

// WithBlock wraps the tab row in a block.
func (t Tabs) WithBlock(b Block) Tabs {
	t.block = &b
	return t
}

// WithStyle sets the base style for the whole tab row.
func (t Tabs) WithStyle(style Style) Tabs {
	t.style = style
	return t
}

// HighlightStyle sets the style patched onto the selected title.
func (t Tabs) HighlightStyle(style Style) Tabs {
	t.highlightStyle = style
	return t
}

// Divider sets the span drawn between tabs.
func (t Tabs) Divider(divider Span) Tabs {
	t.divider = divider
	return t
}

// Padding sets the text drawn on either side of every title.
func (t Tabs) Padding(left, right string) Tabs {
	t.paddingLeft = NewLine(left)
	t.paddingRight = NewLine(right)
	return t
}

// Render draws the tab row into the buffer.
func (t Tabs) Render(area Rect, buf *Buffer) {
	area = area.Intersect(buf.Area)
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, t.style)
	tabsArea := area
	if t.block != nil {
		t.block.Render(area, buf)
		tabsArea = t.block.Inner(area)
	}
	if tabsArea.Height < 1 {
		return
	}

	x := tabsArea.Left()
	for i, title := range t.titles {
		lastTitle := i == len(t.titles)-1

		remaining := tabsArea.Right() - x
		if remaining <= 0 {
			break
		}
		x, _ = buf.SetLine(x, tabsArea.Top(), t.paddingLeft, remaining)

		remaining = tabsArea.Right() - x
		if remaining <= 0 {
			break
		}
		nextX, _ := buf.SetLine(x, tabsArea.Top(), title, remaining)
		if i == t.selected {
			buf.SetStyle(NewRect(x, tabsArea.Top(), nextX-x, 1), t.highlightStyle)
		}
		x = nextX

		remaining = tabsArea.Right() - x
		if remaining <= 0 {
			break
		}
		x, _ = buf.SetLine(x, tabsArea.Top(), t.paddingRight, remaining)

		if lastTitle {
			break
		}
		remaining = tabsArea.Right() - x
		if remaining <= 0 {
			break
		}
		x, _ = buf.SetSpan(x, tabsArea.Top(), t.divider, remaining)
	}
}
