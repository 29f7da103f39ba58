// Package layout partitions rectangular areas into segments using a
// constraint solver.
//
// A Layout describes how to split a Rect along one direction: an ordered
// list of sizing constraints, a margin, a spacing, and a Flex policy for
// distributing leftover space. Split solves the constraint system and
// returns one sub-rectangle per constraint; SplitWithSpacers additionally
// returns the gap rectangles before, between, and after the segments.
//
// Solved results are memoized in an LRU cache keyed on the (area, layout)
// pair, so calling Split every frame with the same inputs is cheap.
package layout

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Direction specifies the axis along which an area is split.
type Direction uint8

const (
	// Vertical splits an area into stacked rows. This is the default.
	Vertical Direction = iota
	// Horizontal splits an area into side-by-side columns.
	Horizontal
)

// String returns the name of the direction.
func (d Direction) String() string {
	if d == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Layout describes how to split an area into segments.
//
// The zero value is a vertical layout with no constraints, no margin, no
// spacing, and the FlexStretchLast policy. Layouts are immutable values:
// every setter returns a modified copy.
//
// The order of constraints is significant. It fixes the order of the output
// segments and breaks ties when the solver cannot satisfy everything.
type Layout struct {
	direction   Direction
	constraints []Constraint
	margin      Margin
	flex        Flex
	spacing     int
}

// New creates a layout with the given direction and constraints.
func New(direction Direction, constraints ...Constraint) Layout {
	return Layout{direction: direction, constraints: constraints}
}

// NewHorizontal creates a horizontal layout with the given constraints.
func NewHorizontal(constraints ...Constraint) Layout {
	return New(Horizontal, constraints...)
}

// NewVertical creates a vertical layout with the given constraints.
func NewVertical(constraints ...Constraint) Layout {
	return New(Vertical, constraints...)
}

// Direction returns a copy of the layout with the given direction.
func (l Layout) Direction(d Direction) Layout {
	l.direction = d
	return l
}

// Constraints returns a copy of the layout with the given constraints.
func (l Layout) Constraints(constraints ...Constraint) Layout {
	l.constraints = constraints
	return l
}

// Margin returns a copy of the layout with the given symmetric margin on
// both axes.
func (l Layout) Margin(n int) Layout {
	l.margin = NewMargin(n, n)
	return l
}

// HorizontalMargin returns a copy of the layout with the given horizontal
// margin.
func (l Layout) HorizontalMargin(n int) Layout {
	l.margin.Horizontal = max(0, n)
	return l
}

// VerticalMargin returns a copy of the layout with the given vertical
// margin.
func (l Layout) VerticalMargin(n int) Layout {
	l.margin.Vertical = max(0, n)
	return l
}

// Flex returns a copy of the layout with the given flex policy.
func (l Layout) Flex(f Flex) Layout {
	l.flex = f
	return l
}

// Spacing returns a copy of the layout with the given gap between segments.
// Spacing is not applied for FlexSpaceAround and FlexSpaceBetween.
func (l Layout) Spacing(n int) Layout {
	l.spacing = max(0, n)
	return l
}

// Split solves the layout against the given area and returns one Rect per
// constraint, in constraint order. Results are memoized in the package
// default cache.
//
// Split panics if the solver fails to construct the constraint system; with
// the strength ordering used here that indicates a logic error, not bad
// user input.
func (l Layout) Split(area Rect) []Rect {
	segments, _ := l.SplitWithSpacers(area)
	return segments
}

// SplitWithSpacers is Split but additionally returns the spacer rectangles
// around the segments. There is always exactly one more spacer than there
// are segments.
func (l Layout) SplitWithSpacers(area Rect) (segments, spacers []Rect) {
	return defaultCache().SplitWithSpacers(l, area)
}

// strength ladder for the solver, strongest first. The relative order of
// these values is what makes Fixed inviolable, Min/Max bounds stronger than
// Length, Length stronger than Percentage and Ratio, and growth terms
// weakest of all.
const (
	spacerSizeEq          = strengthRequired - 1
	proportionalScalingEq = strengthRequired - 1
	fixedSizeEq           = strengthRequired / 10
	minSizeGE             = strengthStrong * 10
	maxSizeLE             = strengthStrong * 10
	lengthSizeEq          = strengthStrong / 10
	percentageSizeEq      = strengthMedium * 10
	ratioSizeEq           = strengthMedium
	minSizeEq             = strengthMedium / 10
	maxSizeEq             = strengthMedium / 10
	proportionalGrow      = strengthWeak * 10
	grow                  = strengthWeak
	spaceGrow             = strengthWeak / 10
)

// element pairs the start and end position variables of one segment or
// spacer along the layout axis.
type element struct {
	start, end variable
}

// size returns the expression end - start.
func (e element) size() expression {
	return expression{terms: []term{{e.end, 1}, {e.start, -1}}}
}

func constExpr(v float64) expression {
	return expression{constant: v}
}

func varExpr(v variable) expression {
	return expression{terms: []term{{v, 1}}}
}

func exprScale(e expression, f float64) expression {
	terms := make([]term, len(e.terms))
	for i, t := range e.terms {
		terms[i] = term{t.v, t.coeff * f}
	}
	return expression{terms: terms, constant: e.constant * f}
}

func exprSub(a, b expression) expression {
	terms := make([]term, 0, len(a.terms)+len(b.terms))
	terms = append(terms, a.terms...)
	for _, t := range b.terms {
		terms = append(terms, term{t.v, -t.coeff})
	}
	return expression{terms: terms, constant: a.constant - b.constant}
}

func eq(a, b expression, strength float64) symConstraint {
	return symConstraint{expr: exprSub(a, b), op: relEQ, strength: strength}
}

func le(a, b expression, strength float64) symConstraint {
	return symConstraint{expr: exprSub(a, b), op: relLE, strength: strength}
}

func ge(a, b expression, strength float64) symConstraint {
	return symConstraint{expr: exprSub(a, b), op: relGE, strength: strength}
}

// isEmpty pins an element to zero size at near-required strength.
func isEmpty(e element) symConstraint {
	return eq(e.size(), constExpr(0), spacerSizeEq)
}

// trySplit builds a fresh solver for the layout, solves it once, and reads
// the variable values back into segment and spacer rectangles.
func (l Layout) trySplit(area Rect) (segments, spacers []Rect, err error) {
	s := newSolver()

	inner := area.Inner(l.margin)
	var areaStart, areaEnd float64
	switch l.direction {
	case Horizontal:
		areaStart, areaEnd = float64(inner.X), float64(inner.Right())
	case Vertical:
		areaStart, areaEnd = float64(inner.Y), float64(inner.Bottom())
	}

	// The 1-D arrangement is modeled as alternating boundary variables:
	// spacer, segment, spacer, segment, ..., spacer. With N constraints
	// that is 2N+2 variables, N segment elements, and N+1 spacer elements.
	count := len(l.constraints)*2 + 2
	vars := make([]variable, count)
	for i := range vars {
		vars[i] = variable(i)
	}
	spacerElems := make([]element, 0, len(l.constraints)+1)
	for i := 0; i+1 < count; i += 2 {
		spacerElems = append(spacerElems, element{vars[i], vars[i+1]})
	}
	segmentElems := make([]element, 0, len(l.constraints))
	for i := 1; i+1 < count; i += 2 {
		segmentElems = append(segmentElems, element{vars[i], vars[i+1]})
	}
	areaElem := element{vars[0], vars[count-1]}

	if err := configureArea(s, areaElem, areaStart, areaEnd); err != nil {
		return nil, nil, err
	}
	if err := configureVariableBounds(s, vars, areaElem); err != nil {
		return nil, nil, err
	}
	if err := configureFlexConstraints(s, areaElem, spacerElems, segmentElems, l.flex, l.spacing); err != nil {
		return nil, nil, err
	}
	if err := configureConstraints(s, areaElem, segmentElems, l.constraints); err != nil {
		return nil, nil, err
	}
	if err := configureProportionalConstraints(s, segmentElems, l.constraints); err != nil {
		return nil, nil, err
	}

	segments = elementsToRects(s, segmentElems, inner, l.direction)
	spacers = elementsToRects(s, spacerElems, inner, l.direction)
	return segments, spacers, nil
}

func configureArea(s *solver, area element, areaStart, areaEnd float64) error {
	if err := s.addConstraint(eq(varExpr(area.start), constExpr(areaStart), strengthRequired)); err != nil {
		return err
	}
	return s.addConstraint(eq(varExpr(area.end), constExpr(areaEnd), strengthRequired))
}

// configureVariableBounds keeps every boundary variable inside the area and
// in non-decreasing order.
func configureVariableBounds(s *solver, vars []variable, area element) error {
	for _, v := range vars {
		if err := s.addConstraint(ge(varExpr(v), varExpr(area.start), strengthRequired)); err != nil {
			return err
		}
		if err := s.addConstraint(le(varExpr(v), varExpr(area.end), strengthRequired)); err != nil {
			return err
		}
	}
	for i := 0; i+1 < len(vars); i++ {
		if err := s.addConstraint(le(varExpr(vars[i]), varExpr(vars[i+1]), strengthRequired)); err != nil {
			return err
		}
	}
	return nil
}

// configureConstraints adds one sizing equation per user constraint, each
// with the strength dictated by the ladder above.
func configureConstraints(s *solver, area element, segments []element, constraints []Constraint) error {
	for i, c := range constraints {
		e := segments[i]
		var err error
		switch c.kind {
		case kindFixed:
			err = s.addConstraint(eq(e.size(), constExpr(float64(c.value)), fixedSizeEq))
		case kindMax:
			if err = s.addConstraint(le(e.size(), constExpr(float64(c.value)), maxSizeLE)); err != nil {
				return err
			}
			err = s.addConstraint(eq(e.size(), constExpr(float64(c.value)), maxSizeEq))
		case kindMin:
			if err = s.addConstraint(ge(e.size(), constExpr(float64(c.value)), minSizeGE)); err != nil {
				return err
			}
			err = s.addConstraint(eq(e.size(), constExpr(float64(c.value)), minSizeEq))
		case kindLength:
			err = s.addConstraint(eq(e.size(), constExpr(float64(c.value)), lengthSizeEq))
		case kindPercentage:
			size := exprScale(area.size(), float64(c.value)/100.0)
			err = s.addConstraint(eq(e.size(), size, percentageSizeEq))
		case kindRatio:
			// a zero denominator is treated as 1
			den := max(c.den, 1)
			size := exprScale(area.size(), float64(c.value)/float64(den))
			err = s.addConstraint(eq(e.size(), size, ratioSizeEq))
		case kindProportional:
			// given no other constraints, the segment grows as much as
			// possible; the pairwise scaling equations do the real work
			err = s.addConstraint(eq(e.size(), area.size(), proportionalGrow))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// configureFlexConstraints pins and grows the spacer (and, for FlexStretch,
// segment) elements according to the distribution policy.
func configureFlexConstraints(s *solver, area element, spacers, segments []element, flex Flex, spacing int) error {
	var inner []element
	if len(spacers) > 2 {
		inner = spacers[1 : len(spacers)-1]
	}
	spacingF := float64(spacing)

	switch flex {
	case FlexSpaceAround:
		for i := 0; i < len(spacers); i++ {
			for j := i + 1; j < len(spacers); j++ {
				if err := s.addConstraint(eq(spacers[i].size(), spacers[j].size(), spacerSizeEq)); err != nil {
					return err
				}
			}
		}
		for _, sp := range spacers {
			if err := s.addConstraint(eq(sp.size(), area.size(), spaceGrow)); err != nil {
				return err
			}
		}

	case FlexSpaceBetween:
		for i := 0; i < len(inner); i++ {
			for j := i + 1; j < len(inner); j++ {
				if err := s.addConstraint(eq(inner[i].size(), inner[j].size(), spacerSizeEq)); err != nil {
					return err
				}
			}
		}
		for _, sp := range spacers {
			if err := s.addConstraint(eq(sp.size(), area.size(), spaceGrow)); err != nil {
				return err
			}
		}
		if len(spacers) >= 2 {
			if err := s.addConstraint(isEmpty(spacers[0])); err != nil {
				return err
			}
			if err := s.addConstraint(isEmpty(spacers[len(spacers)-1])); err != nil {
				return err
			}
		}

	case FlexStretchLast:
		for _, sp := range inner {
			if err := s.addConstraint(eq(sp.size(), constExpr(spacingF), spacerSizeEq)); err != nil {
				return err
			}
		}
		if len(spacers) >= 2 {
			if err := s.addConstraint(isEmpty(spacers[0])); err != nil {
				return err
			}
			if err := s.addConstraint(isEmpty(spacers[len(spacers)-1])); err != nil {
				return err
			}
		}

	case FlexStretch:
		for _, sp := range inner {
			if err := s.addConstraint(eq(sp.size(), constExpr(spacingF), spacerSizeEq)); err != nil {
				return err
			}
		}
		for i := 0; i < len(segments); i++ {
			for j := i + 1; j < len(segments); j++ {
				if err := s.addConstraint(eq(segments[i].size(), segments[j].size(), grow)); err != nil {
					return err
				}
			}
		}
		if len(spacers) >= 2 {
			if err := s.addConstraint(isEmpty(spacers[0])); err != nil {
				return err
			}
			if err := s.addConstraint(isEmpty(spacers[len(spacers)-1])); err != nil {
				return err
			}
		}

	case FlexStart:
		for _, sp := range inner {
			if err := s.addConstraint(eq(sp.size(), constExpr(spacingF), spacerSizeEq)); err != nil {
				return err
			}
		}
		if len(spacers) >= 2 {
			if err := s.addConstraint(isEmpty(spacers[0])); err != nil {
				return err
			}
			if err := s.addConstraint(eq(spacers[len(spacers)-1].size(), area.size(), grow)); err != nil {
				return err
			}
		}

	case FlexCenter:
		for _, sp := range inner {
			if err := s.addConstraint(eq(sp.size(), constExpr(spacingF), spacerSizeEq)); err != nil {
				return err
			}
		}
		if len(spacers) >= 2 {
			first, last := spacers[0], spacers[len(spacers)-1]
			if err := s.addConstraint(eq(first.size(), area.size(), grow)); err != nil {
				return err
			}
			if err := s.addConstraint(eq(last.size(), area.size(), grow)); err != nil {
				return err
			}
			if err := s.addConstraint(eq(first.size(), last.size(), spacerSizeEq)); err != nil {
				return err
			}
		}

	case FlexEnd:
		for _, sp := range inner {
			if err := s.addConstraint(eq(sp.size(), constExpr(spacingF), spacerSizeEq)); err != nil {
				return err
			}
		}
		if len(spacers) >= 2 {
			if err := s.addConstraint(isEmpty(spacers[len(spacers)-1])); err != nil {
				return err
			}
			if err := s.addConstraint(eq(spacers[0].size(), area.size(), grow)); err != nil {
				return err
			}
		}
	}
	return nil
}

// configureProportionalConstraints makes every pair of Proportional
// segments scale together: sizeA * weightB == sizeB * weightA. The cross
// multiplication avoids dividing inside the solver.
func configureProportionalConstraints(s *solver, segments []element, constraints []Constraint) error {
	for i := 0; i < len(constraints); i++ {
		if !constraints[i].IsProportional() {
			continue
		}
		for j := i + 1; j < len(constraints); j++ {
			if !constraints[j].IsProportional() {
				continue
			}
			// zero weights act as 1e-6: close enough to zero to be
			// dominated by any positive weight, far enough to keep the
			// solution numerically stable
			wi := max(float64(constraints[i].value), 1e-6)
			wj := max(float64(constraints[j].value), 1e-6)
			c := eq(exprScale(segments[i].size(), wj), exprScale(segments[j].size(), wi), proportionalScalingEq)
			if err := s.addConstraint(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// elementsToRects reads the solved variable values back, rounding each
// boundary to the nearest integer and saturating at zero width if rounding
// inverted a pair.
func elementsToRects(s *solver, elements []element, area Rect, direction Direction) []Rect {
	rects := make([]Rect, len(elements))
	for i, e := range elements {
		start := int(roundHalfAway(s.valueOf(e.start)))
		end := int(roundHalfAway(s.valueOf(e.end)))
		size := max(0, end-start)
		switch direction {
		case Horizontal:
			rects[i] = Rect{X: start, Y: area.Y, Width: size, Height: area.Height}
		case Vertical:
			rects[i] = Rect{X: area.X, Y: start, Width: area.Width, Height: size}
		}
	}
	return rects
}

// roundHalfAway rounds half away from zero, matching the rounding the
// layout results are specified with.
func roundHalfAway(v float64) float64 {
	if v < 0 {
		return -roundHalfAway(-v)
	}
	return float64(int64(v + 0.5))
}

// cacheKeyString serializes the layout deterministically for use in the
// result cache key. Two layouts that are structurally equal serialize to
// the same string.
func (l Layout) cacheKeyString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d,%d|%d|%d|", l.direction, l.margin.Horizontal, l.margin.Vertical, l.flex, l.spacing)
	for _, c := range l.constraints {
		fmt.Fprintf(&b, "%d:%d:%d;", c.kind, c.value, c.den)
	}
	return b.String()
}

// mustSplit solves without the cache, panicking on internal solver failure.
// The strength ladder makes every combination of user constraints
// satisfiable in the least-violated sense, so a failure here is a bug.
func (l Layout) mustSplit(area Rect) (segments, spacers []Rect) {
	segments, spacers, err := l.trySplit(area)
	if err != nil {
		panic(errors.Wrap(err, "layout: failed to split"))
	}
	return segments, spacers
}
