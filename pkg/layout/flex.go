package layout

// Flex controls how leftover space along the layout axis is distributed
// among segments and spacers once the sizing constraints are satisfied.
type Flex uint8

const (
	// FlexStretchLast stretches the last segment to fill leftover space.
	// This is the default.
	FlexStretchLast Flex = iota
	// FlexStretch stretches all segments equally to fill leftover space.
	FlexStretch
	// FlexStart packs segments at the start, leaving trailing slack.
	FlexStart
	// FlexCenter centers the segments, splitting slack between the leading
	// and trailing spacers.
	FlexCenter
	// FlexEnd packs segments at the end, leaving leading slack.
	FlexEnd
	// FlexSpaceAround grows every spacer equally, including the outer ones.
	FlexSpaceAround
	// FlexSpaceBetween grows the inner spacers equally and pins the outer
	// spacers to zero.
	FlexSpaceBetween
)

// String returns the name of the flex mode.
func (f Flex) String() string {
	switch f {
	case FlexStretchLast:
		return "StretchLast"
	case FlexStretch:
		return "Stretch"
	case FlexStart:
		return "Start"
	case FlexCenter:
		return "Center"
	case FlexEnd:
		return "End"
	case FlexSpaceAround:
		return "SpaceAround"
	case FlexSpaceBetween:
		return "SpaceBetween"
	}
	return "Flex(?)"
}
