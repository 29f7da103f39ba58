package tui

import "testing"

func TestCell_Width(t *testing.T) {
	type tc struct {
		symbol string
		want   int
	}

	tests := map[string]tc{
		"ascii":          {symbol: "a", want: 1},
		"space":          {symbol: " ", want: 1},
		"cjk":            {symbol: "あ", want: 2},
		"fullwidth caps": {symbol: "Ｗ", want: 2},
		"zero width":     {symbol: "\u200b", want: 0},
		"empty":          {symbol: "", want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NewCell(tt.symbol).Width(); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCell_Reset(t *testing.T) {
	c := StyledCell("x", NewStyle().Foreground(Red).Bold())
	c.Reset()
	if !c.Equal(DefaultCell) {
		t.Errorf("after Reset() cell = %+v, want %+v", c, DefaultCell)
	}
}

func TestCell_Equal(t *testing.T) {
	a := StyledCell("a", NewStyle().Bold())
	if !a.Equal(StyledCell("a", NewStyle().Bold())) {
		t.Error("Equal() = false for identical cells, want true")
	}
	if a.Equal(StyledCell("b", NewStyle().Bold())) {
		t.Error("Equal() = true for different symbols, want false")
	}
	if a.Equal(StyledCell("a", NewStyle())) {
		t.Error("Equal() = true for different styles, want false")
	}
}
