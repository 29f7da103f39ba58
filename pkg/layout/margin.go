package layout

// Margin represents symmetric horizontal and vertical insets applied to a
// Rect before splitting it.
type Margin struct {
	Horizontal int
	Vertical   int
}

// NewMargin creates a Margin with the given horizontal and vertical insets.
// Negative values are clamped to zero.
func NewMargin(horizontal, vertical int) Margin {
	if horizontal < 0 {
		horizontal = 0
	}
	if vertical < 0 {
		vertical = 0
	}
	return Margin{Horizontal: horizontal, Vertical: vertical}
}
