package layout

import "fmt"

// constraintKind identifies which sizing rule a Constraint applies.
type constraintKind uint8

const (
	kindLength constraintKind = iota
	kindFixed
	kindPercentage
	kindRatio
	kindMin
	kindMax
	kindProportional
)

// Constraint is a sizing rule applied to one segment of a layout.
//
// When the area is too small to satisfy every constraint, segments are
// resolved in a fixed order of precedence:
//
//	Fixed > Min/Max > Length > Percentage > Ratio > Proportional
//
// Fixed constraints always get exactly their requested size, even when that
// overflows the area.
type Constraint struct {
	kind constraintKind
	// value holds the length, percentage, minimum, maximum, numerator, or
	// proportional weight depending on kind.
	value int
	// den is the denominator for Ratio constraints.
	den int
}

// Length creates a constraint that prefers an exact size.
func Length(n int) Constraint {
	return Constraint{kind: kindLength, value: n}
}

// Fixed creates a constraint that demands an exact size. Unlike Length it
// is never traded away, even when the total overflows the area.
func Fixed(n int) Constraint {
	return Constraint{kind: kindFixed, value: n}
}

// Percentage creates a constraint that prefers a fraction of the container,
// expressed in the range 0-100. Values above 100 are allowed and simply
// request more than the whole container.
func Percentage(p int) Constraint {
	return Constraint{kind: kindPercentage, value: p}
}

// Ratio creates a constraint that prefers num/den of the container.
// A zero denominator is treated as 1.
func Ratio(num, den int) Constraint {
	return Constraint{kind: kindRatio, value: num, den: den}
}

// Min creates a constraint that prefers a lower bound on the segment size.
func Min(n int) Constraint {
	return Constraint{kind: kindMin, value: n}
}

// Max creates a constraint that prefers an upper bound on the segment size.
func Max(n int) Constraint {
	return Constraint{kind: kindMax, value: n}
}

// Proportional creates a constraint that grows into leftover space
// proportionally to its weight relative to the other Proportional segments
// in the same layout. A zero weight is floored to a tiny epsilon so that
// the scaling equations stay numerically stable.
func Proportional(weight int) Constraint {
	return Constraint{kind: kindProportional, value: weight}
}

// IsProportional returns true for constraints created with Proportional.
func (c Constraint) IsProportional() bool {
	return c.kind == kindProportional
}

// String returns a compact description of the constraint.
func (c Constraint) String() string {
	switch c.kind {
	case kindLength:
		return fmt.Sprintf("Length(%d)", c.value)
	case kindFixed:
		return fmt.Sprintf("Fixed(%d)", c.value)
	case kindPercentage:
		return fmt.Sprintf("Percentage(%d)", c.value)
	case kindRatio:
		return fmt.Sprintf("Ratio(%d, %d)", c.value, c.den)
	case kindMin:
		return fmt.Sprintf("Min(%d)", c.value)
	case kindMax:
		return fmt.Sprintf("Max(%d)", c.value)
	case kindProportional:
		return fmt.Sprintf("Proportional(%d)", c.value)
	}
	return "Constraint(?)"
}
