// layout.go re-exports layout types from pkg/layout.
// Any changes to pkg/layout types must be mirrored here.
package tui

import "github.com/grindlemire/go-tui/pkg/layout"

// Rect is a rectangle of terminal cells, addressed by its top-left corner.
type Rect = layout.Rect

// Position is an (x, y) cell coordinate.
type Position = layout.Position

// Size is a width/height pair in cells.
type Size = layout.Size

// Margin is the horizontal and vertical inset applied to an area before
// splitting it.
type Margin = layout.Margin

// Constraint describes how much space a layout segment should receive.
type Constraint = layout.Constraint

// Direction specifies the axis a layout splits along.
type Direction = layout.Direction

const (
	Vertical   = layout.Vertical
	Horizontal = layout.Horizontal
)

// Flex specifies how a layout distributes leftover space.
type Flex = layout.Flex

const (
	FlexStretchLast  = layout.FlexStretchLast
	FlexStretch      = layout.FlexStretch
	FlexStart        = layout.FlexStart
	FlexCenter       = layout.FlexCenter
	FlexEnd          = layout.FlexEnd
	FlexSpaceAround  = layout.FlexSpaceAround
	FlexSpaceBetween = layout.FlexSpaceBetween
)

// Layout splits an area into segments according to its constraints.
type Layout = layout.Layout

// NewRect creates a Rect from a position and size, clamping negative
// dimensions to zero.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}
