package tui

import "testing"

func TestStyle_FluentSetters(t *testing.T) {
	s := NewStyle().Foreground(Red).Background(Blue).Bold().Underline()

	if !s.Fg.Equal(Red) {
		t.Errorf("Fg = %v, want Red", s.Fg)
	}
	if !s.Bg.Equal(Blue) {
		t.Errorf("Bg = %v, want Blue", s.Bg)
	}
	if !s.HasAttr(AttrBold) || !s.HasAttr(AttrUnderline) {
		t.Errorf("Attrs = %b, want bold and underline set", s.Attrs)
	}
	if s.HasAttr(AttrItalic) {
		t.Error("HasAttr(AttrItalic) = true, want false")
	}
}

func TestStyle_SettersDoNotMutate(t *testing.T) {
	base := NewStyle().Foreground(Red)
	_ = base.Bold().Background(Blue)

	if base.Attrs != AttrNone {
		t.Errorf("base.Attrs = %b, want none", base.Attrs)
	}
	if !base.Bg.IsDefault() {
		t.Errorf("base.Bg = %v, want default", base.Bg)
	}
}

func TestStyle_Patch(t *testing.T) {
	type tc struct {
		base  Style
		patch Style
		want  Style
	}

	tests := map[string]tc{
		"default patch keeps base": {
			base:  NewStyle().Foreground(Red).Bold(),
			patch: NewStyle(),
			want:  NewStyle().Foreground(Red).Bold(),
		},
		"foreground overrides": {
			base:  NewStyle().Foreground(Red),
			patch: NewStyle().Foreground(Blue),
			want:  NewStyle().Foreground(Blue),
		},
		"background overrides independently": {
			base:  NewStyle().Foreground(Red).Background(Black),
			patch: NewStyle().Background(White),
			want:  NewStyle().Foreground(Red).Background(White),
		},
		"attributes combine": {
			base:  NewStyle().Bold(),
			patch: NewStyle().Italic(),
			want:  NewStyle().Bold().Italic(),
		},
		"patch onto empty": {
			base:  NewStyle(),
			patch: NewStyle().Foreground(Green).Reverse(),
			want:  NewStyle().Foreground(Green).Reverse(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.base.Patch(tt.patch); !got.Equal(tt.want) {
				t.Errorf("Patch() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStyle_PatchIsAssociative(t *testing.T) {
	a := NewStyle().Foreground(Red).Bold()
	b := NewStyle().Background(Blue)
	c := NewStyle().Foreground(Green).Italic()

	left := a.Patch(b).Patch(c)
	right := a.Patch(b.Patch(c))
	if !left.Equal(right) {
		t.Errorf("(a.b).c = %+v, a.(b.c) = %+v, want equal", left, right)
	}
}

func TestStyle_Equal(t *testing.T) {
	a := NewStyle().Foreground(Red).Bold()
	if !a.Equal(NewStyle().Foreground(Red).Bold()) {
		t.Error("Equal() = false for identical styles, want true")
	}
	if a.Equal(NewStyle().Foreground(Red)) {
		t.Error("Equal() = true for styles with different attrs, want false")
	}
}
