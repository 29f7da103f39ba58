package tui

// GradientDirection controls which axis a gradient runs along when applied
// to a rectangular region.
type GradientDirection uint8

const (
	// GradientHorizontal runs left to right.
	GradientHorizontal GradientDirection = iota
	// GradientVertical runs top to bottom.
	GradientVertical
	// GradientDiagonalDown runs from the top-left corner to the bottom-right.
	GradientDiagonalDown
	// GradientDiagonalUp runs from the bottom-left corner to the top-right.
	GradientDiagonalUp
)

// Gradient is a linear interpolation between two colors.
type Gradient struct {
	Start     Color
	End       Color
	Direction GradientDirection
}

// NewGradient returns a horizontal gradient between two colors.
func NewGradient(start, end Color) Gradient {
	return Gradient{Start: start, End: end, Direction: GradientHorizontal}
}

// WithDirection returns a copy of the gradient running along the given axis.
func (g Gradient) WithDirection(d GradientDirection) Gradient {
	g.Direction = d
	return g
}

// At returns the gradient color at position t, where 0 is the start color
// and 1 is the end color. Values outside [0, 1] are clamped.
func (g Gradient) At(t float64) Color {
	if t <= 0 {
		return g.Start
	}
	if t >= 1 {
		return g.End
	}
	if g.Start.IsDefault() && g.End.IsDefault() {
		return DefaultColor()
	}
	sr, sg, sb := g.Start.ToRGBValues()
	er, eg, eb := g.End.ToRGBValues()
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return RGBColor(lerp(sr, er), lerp(sg, eg), lerp(sb, eb))
}

// PositionAt maps a cell coordinate within a region of the given size to a
// gradient position in [0, 1] along the gradient's direction.
func (g Gradient) PositionAt(x, y, width, height int) float64 {
	switch g.Direction {
	case GradientVertical:
		if height <= 1 {
			return 0
		}
		return float64(y) / float64(height-1)
	case GradientDiagonalDown:
		if width+height <= 2 {
			return 0
		}
		return float64(x+y) / float64(width+height-2)
	case GradientDiagonalUp:
		if width+height <= 2 {
			return 0
		}
		return float64(x+(height-1-y)) / float64(width+height-2)
	default:
		if width <= 1 {
			return 0
		}
		return float64(x) / float64(width-1)
	}
}
