package tui

import "testing"

func linesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuffer_WithLines(t *testing.T) {
	b := NewBufferWithLines("hello", "bye")

	if b.Area != NewRect(0, 0, 5, 2) {
		t.Errorf("Area = %+v, want 5x2 at origin", b.Area)
	}
	linesEqual(t, b.Lines(), []string{"hello", "bye  "})
}

func TestBuffer_WithLinesWide(t *testing.T) {
	b := NewBufferWithLines("あいう", "abc")

	if b.Area.Width != 6 {
		t.Errorf("Area.Width = %d, want 6", b.Area.Width)
	}
	linesEqual(t, b.Lines(), []string{"あいう", "abc   "})
}

func TestBuffer_SetString(t *testing.T) {
	b := NewBuffer(NewRect(0, 0, 10, 1))

	x, y := b.SetString(2, 0, "abc", Style{})
	if x != 5 || y != 0 {
		t.Errorf("SetString() = (%d, %d), want (5, 0)", x, y)
	}
	if got := b.String(); got != "  abc     " {
		t.Errorf("String() = %q, want %q", got, "  abc     ")
	}
}

func TestBuffer_SetStringClips(t *testing.T) {
	b := NewBuffer(NewRect(0, 0, 5, 1))

	x, _ := b.SetString(3, 0, "abcdef", Style{})
	if x != 5 {
		t.Errorf("SetString() x = %d, want clipped at 5", x)
	}
	if got := b.String(); got != "   ab" {
		t.Errorf("String() = %q, want %q", got, "   ab")
	}

	// Writes starting outside the area are dropped entirely.
	x, y := b.SetString(7, 0, "zz", Style{})
	if x != 7 || y != 0 {
		t.Errorf("SetString() = (%d, %d), want untouched (7, 0)", x, y)
	}
	x, y = b.SetString(0, 3, "zz", Style{})
	if x != 0 || y != 3 {
		t.Errorf("SetString() = (%d, %d), want untouched (0, 3)", x, y)
	}
}

func TestBuffer_SetStringNDropsPartialWide(t *testing.T) {
	b := NewBufferWithLines("xxxxx")

	// Three columns hold one CJK cluster; the second does not fit.
	b.SetStringN(0, 0, "ああ", 3, Style{})
	if got := b.String(); got != "あxxx" {
		t.Errorf("String() = %q, want %q", got, "あxxx")
	}
}

func TestBuffer_SetStringResetsShadowedCells(t *testing.T) {
	b := NewBuffer(NewRect(0, 0, 4, 1))
	b.SetString(0, 0, "abcd", NewStyle().Bold())

	b.SetString(0, 0, "あ", Style{})
	if got := b.CellAt(1, 0); !got.Equal(DefaultCell) {
		t.Errorf("shadowed cell = %+v, want blank", got)
	}
	if got := b.String(); got != "あcd" {
		t.Errorf("String() = %q, want %q", got, "あcd")
	}
}

func TestBuffer_SetLine(t *testing.T) {
	b := NewBuffer(NewRect(0, 0, 10, 1))
	line := LineFromSpans(
		StyledSpan("ab", NewStyle().Foreground(Red)),
		NewSpan("cd"),
	).WithStyle(NewStyle().Bold())

	x, _ := b.SetLine(0, 0, line, 10)
	if x != 4 {
		t.Errorf("SetLine() x = %d, want 4", x)
	}
	if got := b.CellAt(0, 0).Style; !got.Fg.Equal(Red) || !got.HasAttr(AttrBold) {
		t.Errorf("cell(0,0).Style = %+v, want red and bold", got)
	}
	if got := b.CellAt(2, 0).Style; !got.Fg.IsDefault() || !got.HasAttr(AttrBold) {
		t.Errorf("cell(2,0).Style = %+v, want line style only", got)
	}
}

func TestBuffer_SetStyle(t *testing.T) {
	b := NewBufferWithLines("abc", "def")
	b.SetStyle(NewRect(1, 0, 2, 1), NewStyle().Foreground(Red))

	if got := b.CellAt(0, 0).Style.Fg; !got.IsDefault() {
		t.Errorf("cell(0,0).Fg = %v, want default", got)
	}
	for x := 1; x < 3; x++ {
		if got := b.CellAt(x, 0).Style.Fg; !got.Equal(Red) {
			t.Errorf("cell(%d,0).Fg = %v, want Red", x, got)
		}
	}
	if got := b.CellAt(1, 1).Style.Fg; !got.IsDefault() {
		t.Errorf("cell(1,1).Fg = %v, want default", got)
	}
}

func TestBuffer_CellAtOutside(t *testing.T) {
	b := NewBufferWithLines("ab")
	if got := b.CellAt(5, 5); !got.Equal(DefaultCell) {
		t.Errorf("CellAt(5, 5) = %+v, want blank", got)
	}
}

func TestBuffer_Fill(t *testing.T) {
	b := NewBuffer(NewRect(0, 0, 4, 2))
	b.Fill(NewRect(1, 0, 2, 2), NewCell("x"))
	linesEqual(t, b.Lines(), []string{" xx ", " xx "})
}

func TestBuffer_Merge(t *testing.T) {
	a := NewBufferFilled(NewRect(0, 0, 2, 2), NewCell("a"))
	other := NewBufferFilled(NewRect(2, 2, 2, 2), NewCell("b"))

	a.Merge(other)
	if a.Area != NewRect(0, 0, 4, 4) {
		t.Fatalf("Area = %+v, want union 4x4", a.Area)
	}
	linesEqual(t, a.Lines(), []string{"aa  ", "aa  ", "  bb", "  bb"})
}

func TestBuffer_MergeOverlap(t *testing.T) {
	a := NewBufferFilled(NewRect(0, 0, 3, 1), NewCell("a"))
	other := NewBufferFilled(NewRect(1, 0, 3, 1), NewCell("b"))

	a.Merge(other)
	linesEqual(t, a.Lines(), []string{"abbb"})
}

func TestBuffer_Resize(t *testing.T) {
	b := NewBufferWithLines("ab")

	b.Resize(NewRect(0, 0, 4, 2))
	if got := len(b.Content); got != 8 {
		t.Errorf("len(Content) = %d, want 8", got)
	}

	b.Resize(NewRect(0, 0, 2, 1))
	if got := len(b.Content); got != 2 {
		t.Errorf("len(Content) = %d, want 2", got)
	}
}

func TestBuffer_SetStringGradient(t *testing.T) {
	type tc struct {
		text    string
		wantX   int
		wantEnd int
	}

	tests := map[string]tc{
		"simple gradient": {text: "Hello", wantX: 5, wantEnd: 4},
		"single cluster":  {text: "A", wantX: 1, wantEnd: 0},
		"wide clusters":   {text: "あいう", wantX: 6, wantEnd: 4},
	}

	g := NewGradient(Red, Blue)
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(NewRect(0, 0, 20, 1))
			x, _ := buf.SetStringGradient(0, 0, tt.text, g, NewStyle().Bold())
			if x != tt.wantX {
				t.Errorf("SetStringGradient() x = %d, want %d", x, tt.wantX)
			}
			if got := buf.CellAt(0, 0).Style.Fg; !got.Equal(Red) {
				t.Errorf("first cluster Fg = %v, want gradient start", got)
			}
			if !buf.CellAt(0, 0).Style.HasAttr(AttrBold) {
				t.Error("HasAttr(AttrBold) = false, want base style preserved")
			}
			if tt.wantEnd > 0 {
				if got := buf.CellAt(tt.wantEnd, 0).Style.Fg; !got.Equal(Blue) {
					t.Errorf("last cluster Fg = %v, want gradient end", got)
				}
			}
		})
	}
}

func TestBuffer_SetStringGradientEmpty(t *testing.T) {
	buf := NewBuffer(NewRect(0, 0, 5, 1))
	x, y := buf.SetStringGradient(2, 0, "", NewGradient(Red, Blue), Style{})
	if x != 2 || y != 0 {
		t.Errorf("SetStringGradient() = (%d, %d), want untouched (2, 0)", x, y)
	}
	if got := buf.CellAt(2, 0); !got.Equal(DefaultCell) {
		t.Errorf("cell = %+v, want blank", got)
	}
}

func TestBuffer_FillGradient(t *testing.T) {
	type tc struct {
		direction      GradientDirection
		startX, startY int
		endX, endY     int
	}

	tests := map[string]tc{
		"horizontal": {
			direction: GradientHorizontal,
			startX:    0, startY: 0,
			endX: 9, endY: 0,
		},
		"vertical": {
			direction: GradientVertical,
			startX:    0, startY: 0,
			endX: 0, endY: 4,
		},
		"diagonal down": {
			direction: GradientDiagonalDown,
			startX:    0, startY: 0,
			endX: 9, endY: 4,
		},
		"diagonal up": {
			direction: GradientDiagonalUp,
			startX:    0, startY: 4,
			endX: 9, endY: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(NewRect(0, 0, 10, 5))
			g := NewGradient(Red, Blue).WithDirection(tt.direction)
			buf.FillGradient(buf.Area, " ", g, NewStyle())

			if got := buf.CellAt(tt.startX, tt.startY).Style.Bg; !got.Equal(Red) {
				t.Errorf("cell(%d,%d).Bg = %v, want gradient start", tt.startX, tt.startY, got)
			}
			if got := buf.CellAt(tt.endX, tt.endY).Style.Bg; !got.Equal(Blue) {
				t.Errorf("cell(%d,%d).Bg = %v, want gradient end", tt.endX, tt.endY, got)
			}
			if got := buf.CellAt(5, 2).Style.Bg; got.IsDefault() {
				t.Error("interior cell Bg is default, want gradient color")
			}
		})
	}
}

func TestBuffer_FillGradientClips(t *testing.T) {
	buf := NewBuffer(NewRect(0, 0, 4, 2))
	buf.FillGradient(NewRect(2, 0, 10, 10), "x", NewGradient(Red, Blue), NewStyle())

	if got := buf.CellAt(1, 0); !got.Equal(DefaultCell) {
		t.Errorf("cell outside fill = %+v, want blank", got)
	}
	if got := buf.CellAt(2, 0).Symbol; got != "x" {
		t.Errorf("filled symbol = %q, want %q", got, "x")
	}
}

// applyChanges replays diff output onto a copy of prev and returns it.
func applyChanges(prev *Buffer, updates []CellChange) *Buffer {
	out := NewBuffer(prev.Area)
	copy(out.Content, prev.Content)
	for _, u := range updates {
		out.SetCell(u.X, u.Y, u.Cell)
	}
	return out
}

func TestBuffer_DiffEmptyOnEqual(t *testing.T) {
	prev := NewBufferWithLines("abc", "def")
	next := NewBufferWithLines("abc", "def")

	if got := prev.Diff(next); len(got) != 0 {
		t.Errorf("Diff() = %v, want no updates", got)
	}
}

func TestBuffer_DiffSingleChange(t *testing.T) {
	prev := NewBufferWithLines("abc", "def")
	next := NewBufferWithLines("abc", "dXf")

	got := prev.Diff(next)
	if len(got) != 1 {
		t.Fatalf("Diff() = %v, want one update", got)
	}
	if got[0].X != 1 || got[0].Y != 1 || got[0].Cell.Symbol != "X" {
		t.Errorf("update = %+v, want X at (1, 1)", got[0])
	}
}

func TestBuffer_DiffRowMajorOrder(t *testing.T) {
	prev := NewBufferWithLines("....", "....")
	next := NewBufferWithLines(".a.b", "c...")

	got := prev.Diff(next)
	if len(got) != 3 {
		t.Fatalf("Diff() produced %d updates, want 3", len(got))
	}
	wantPos := [][2]int{{1, 0}, {3, 0}, {0, 1}}
	for i, u := range got {
		if u.X != wantPos[i][0] || u.Y != wantPos[i][1] {
			t.Errorf("update[%d] at (%d, %d), want (%d, %d)",
				i, u.X, u.Y, wantPos[i][0], wantPos[i][1])
		}
	}
}

func TestBuffer_DiffWideClusterEmitsContinuation(t *testing.T) {
	prev := NewBuffer(NewRect(0, 0, 6, 1))
	next := NewBuffer(NewRect(0, 0, 6, 1))
	next.SetString(0, 0, "あ", Style{})

	got := prev.Diff(next)
	if len(got) != 2 {
		t.Fatalf("Diff() = %v, want cluster plus its continuation", got)
	}
	if got[0].X != 0 || got[0].Cell.Symbol != "あ" {
		t.Errorf("update[0] = %+v, want cluster at x=0", got[0])
	}
	if got[1].X != 1 || got[1].Cell.Symbol != " " {
		t.Errorf("update[1] = %+v, want blank continuation at x=1", got[1])
	}
}

func TestBuffer_DiffNarrowOverWide(t *testing.T) {
	prev := NewBuffer(NewRect(0, 0, 6, 1))
	prev.SetString(0, 0, "あ", Style{})
	next := NewBuffer(NewRect(0, 0, 6, 1))
	next.SetString(0, 0, "a", Style{})

	// The blank at x=1 matches the previous frame's shadow cell, but the
	// terminal column under a replaced wide cluster must be repainted.
	got := prev.Diff(next)
	if len(got) != 2 {
		t.Fatalf("Diff() = %v, want 2 updates", got)
	}
	if got[0].X != 0 || got[0].Cell.Symbol != "a" {
		t.Errorf("update[0] = %+v, want a at x=0", got[0])
	}
	if got[1].X != 1 || got[1].Cell.Symbol != " " {
		t.Errorf("update[1] = %+v, want blank at x=1", got[1])
	}
}

func TestBuffer_DiffReplayReproducesTarget(t *testing.T) {
	prev := NewBufferWithLines("hello world ", "second line ")
	next := NewBufferWithLines("hell稼 w稼ld", "secon  line ")

	replayed := applyChanges(prev, prev.Diff(next))
	linesEqual(t, replayed.Lines(), next.Lines())
}
