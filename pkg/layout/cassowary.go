package layout

import (
	"math"

	"github.com/pkg/errors"
)

// This file implements the linear-arithmetic constraint solver used by
// Layout.Split. It is a Cassowary-style simplex solver: constraints are
// linear equalities or inequalities over scalar variables, each carrying a
// numeric strength. Hard (required) constraints must hold; soft constraints
// are violated as little as possible, weighted by strength.
//
// The solver is add-only: Split builds a fresh solver, feeds it every
// constraint once, and reads the variable values back. There is no support
// for removing or editing constraints across calls; the result cache makes
// repeated solves of the same layout cheap instead.

// Strength constants. A constraint at or above strengthRequired is hard;
// everything below is soft and weighted into the objective function.
const (
	strengthRequired = 1_001_001_000.0
	strengthStrong   = 1_000_000.0
	strengthMedium   = 1_000.0
	strengthWeak     = 1.0
)

var (
	errUnsatisfiable = errors.New("layout: unsatisfiable constraint")
	errUnbounded     = errors.New("layout: objective is unbounded")
)

// variable identifies a scalar solver variable.
type variable uint32

// term is a coefficient applied to a variable.
type term struct {
	v     variable
	coeff float64
}

// expression is a linear combination of terms plus a constant.
type expression struct {
	terms    []term
	constant float64
}

// relation is the comparison operator of a constraint.
type relation uint8

const (
	relEQ relation = iota
	relLE
	relGE
)

// symConstraint relates an expression to zero: expr (op) 0.
type symConstraint struct {
	expr     expression
	op       relation
	strength float64
}

type symbolKind uint8

const (
	symbolInvalid symbolKind = iota
	symbolExternal
	symbolSlack
	symbolError
	symbolDummy
)

// symbol is an internal simplex variable. External symbols correspond to
// user variables; slack, error, and dummy symbols are introduced while
// augmenting constraints into rows.
type symbol struct {
	id   uint32
	kind symbolKind
}

// row is a linear expression over symbols used as a tableau row.
type row struct {
	cells    map[symbol]float64
	constant float64
}

func newRow(constant float64) *row {
	return &row{cells: make(map[symbol]float64), constant: constant}
}

func (r *row) copy() *row {
	cells := make(map[symbol]float64, len(r.cells))
	for s, c := range r.cells {
		cells[s] = c
	}
	return &row{cells: cells, constant: r.constant}
}

func nearZero(v float64) bool {
	const eps = 1e-8
	return v < eps && v > -eps
}

// insertSymbol adds coeff * sym to the row, removing the cell if the
// resulting coefficient is (near) zero.
func (r *row) insertSymbol(s symbol, coeff float64) {
	c := r.cells[s] + coeff
	if nearZero(c) {
		delete(r.cells, s)
	} else {
		r.cells[s] = c
	}
}

// insertRow adds coeff * other to the row.
func (r *row) insertRow(other *row, coeff float64) {
	r.constant += other.constant * coeff
	for s, c := range other.cells {
		r.insertSymbol(s, c*coeff)
	}
}

func (r *row) remove(s symbol) {
	delete(r.cells, s)
}

func (r *row) reverseSign() {
	r.constant = -r.constant
	for s, c := range r.cells {
		r.cells[s] = -c
	}
}

// solveForSymbol rewrites the row such that sym would equal the row.
// The symbol must have a non-zero coefficient.
func (r *row) solveForSymbol(s symbol) {
	coeff := -1.0 / r.cells[s]
	delete(r.cells, s)
	r.constant *= coeff
	for k, v := range r.cells {
		r.cells[k] = v * coeff
	}
}

// solveForSymbols rewrites the row as if lhs were on the left-hand side and
// rhs were being solved for.
func (r *row) solveForSymbols(lhs, rhs symbol) {
	r.insertSymbol(lhs, -1.0)
	r.solveForSymbol(rhs)
}

func (r *row) coefficientFor(s symbol) float64 {
	return r.cells[s]
}

// substitute replaces all occurrences of sym with the given row.
func (r *row) substitute(s symbol, other *row) {
	if c, ok := r.cells[s]; ok {
		delete(r.cells, s)
		r.insertRow(other, c)
	}
}

// tag tracks the marker symbols introduced for a constraint.
type tag struct {
	marker symbol
	other  symbol
}

// solver is the simplex tableau. Symbol choices are tie-broken by lowest
// symbol id so that solves are deterministic regardless of map iteration
// order; among equally-weighted optima the result is then stable.
type solver struct {
	rows       map[symbol]*row
	vars       map[variable]symbol
	objective  *row
	artificial *row
	nextID     uint32
}

func newSolver() *solver {
	return &solver{
		rows:      make(map[symbol]*row),
		vars:      make(map[variable]symbol),
		objective: newRow(0),
		nextID:    1,
	}
}

func (s *solver) newSymbol(kind symbolKind) symbol {
	id := s.nextID
	s.nextID++
	return symbol{id: id, kind: kind}
}

func (s *solver) symbolForVariable(v variable) symbol {
	if sym, ok := s.vars[v]; ok {
		return sym
	}
	sym := s.newSymbol(symbolExternal)
	s.vars[v] = sym
	return sym
}

// addConstraint augments the constraint into a row, makes some symbol basic
// in it, and re-optimizes the objective.
func (s *solver) addConstraint(c symConstraint) error {
	r, t := s.createRow(c)

	subject := chooseSubject(r, t)
	if subject.kind == symbolInvalid && allDummies(r) {
		if !nearZero(r.constant) {
			return errUnsatisfiable
		}
		subject = t.marker
	}

	if subject.kind == symbolInvalid {
		if !s.addWithArtificialVariable(r) {
			return errUnsatisfiable
		}
	} else {
		r.solveForSymbol(subject)
		s.substituteOut(subject, r)
		s.rows[subject] = r
	}

	return s.optimize(s.objective)
}

// createRow expands a constraint into a tableau row, substituting any basic
// variables, and introduces slack/error/dummy symbols by operator and
// strength.
func (s *solver) createRow(c symConstraint) (*row, tag) {
	r := newRow(c.expr.constant)
	for _, tm := range c.expr.terms {
		if nearZero(tm.coeff) {
			continue
		}
		sym := s.symbolForVariable(tm.v)
		if basic, ok := s.rows[sym]; ok {
			r.insertRow(basic, tm.coeff)
		} else {
			r.insertSymbol(sym, tm.coeff)
		}
	}

	var t tag
	switch c.op {
	case relLE, relGE:
		coeff := 1.0
		if c.op == relGE {
			coeff = -1.0
		}
		slack := s.newSymbol(symbolSlack)
		t.marker = slack
		r.insertSymbol(slack, coeff)
		if c.strength < strengthRequired {
			errSym := s.newSymbol(symbolError)
			t.other = errSym
			r.insertSymbol(errSym, -coeff)
			s.objective.insertSymbol(errSym, c.strength)
		}
	case relEQ:
		if c.strength < strengthRequired {
			errPlus := s.newSymbol(symbolError)
			errMinus := s.newSymbol(symbolError)
			t.marker = errPlus
			t.other = errMinus
			r.insertSymbol(errPlus, -1.0)
			r.insertSymbol(errMinus, 1.0)
			s.objective.insertSymbol(errPlus, c.strength)
			s.objective.insertSymbol(errMinus, c.strength)
		} else {
			dummy := s.newSymbol(symbolDummy)
			t.marker = dummy
			r.insertSymbol(dummy, 1.0)
		}
	}

	if r.constant < 0 {
		r.reverseSign()
	}
	return r, t
}

// chooseSubject picks the symbol to become basic for a new row: an external
// symbol if one exists, otherwise a negatively-weighted slack or error
// marker from the constraint itself.
func chooseSubject(r *row, t tag) symbol {
	best := symbol{}
	for s := range r.cells {
		if s.kind != symbolExternal {
			continue
		}
		if best.kind == symbolInvalid || s.id < best.id {
			best = s
		}
	}
	if best.kind == symbolExternal {
		return best
	}
	if (t.marker.kind == symbolSlack || t.marker.kind == symbolError) && r.coefficientFor(t.marker) < 0 {
		return t.marker
	}
	if (t.other.kind == symbolSlack || t.other.kind == symbolError) && r.coefficientFor(t.other) < 0 {
		return t.other
	}
	return symbol{}
}

func allDummies(r *row) bool {
	for s := range r.cells {
		if s.kind != symbolDummy {
			return false
		}
	}
	return true
}

// addWithArtificialVariable introduces a temporary artificial variable for a
// row with no usable subject and minimizes it to zero.
func (s *solver) addWithArtificialVariable(r *row) bool {
	art := s.newSymbol(symbolSlack)
	s.rows[art] = r.copy()
	s.artificial = r.copy()

	if err := s.optimize(s.artificial); err != nil {
		return false
	}
	success := nearZero(s.artificial.constant)
	s.artificial = nil

	if artRow, ok := s.rows[art]; ok {
		delete(s.rows, art)
		if len(artRow.cells) == 0 {
			return success
		}
		entering := anyPivotableSymbol(artRow)
		if entering.kind == symbolInvalid {
			return false
		}
		artRow.solveForSymbols(art, entering)
		s.substituteOut(entering, artRow)
		s.rows[entering] = artRow
	}

	for _, r := range s.rows {
		r.remove(art)
	}
	s.objective.remove(art)
	return success
}

// anyPivotableSymbol returns the lowest-id slack or error symbol in the row.
func anyPivotableSymbol(r *row) symbol {
	best := symbol{}
	for s := range r.cells {
		if s.kind != symbolSlack && s.kind != symbolError {
			continue
		}
		if best.kind == symbolInvalid || s.id < best.id {
			best = s
		}
	}
	return best
}

// substituteOut replaces sym in every row, the objective, and the artificial
// objective (if active).
func (s *solver) substituteOut(sym symbol, r *row) {
	for _, other := range s.rows {
		other.substitute(sym, r)
	}
	s.objective.substitute(sym, r)
	if s.artificial != nil {
		s.artificial.substitute(sym, r)
	}
}

// optimize runs the primal simplex until the objective is minimal.
func (s *solver) optimize(objective *row) error {
	for {
		entering := enteringSymbol(objective)
		if entering.kind == symbolInvalid {
			return nil
		}
		leaving, leavingRow := s.leavingRow(entering)
		if leavingRow == nil {
			return errors.WithStack(errUnbounded)
		}
		delete(s.rows, leaving)
		leavingRow.solveForSymbols(leaving, entering)
		s.substituteOut(entering, leavingRow)
		s.rows[entering] = leavingRow
	}
}

// enteringSymbol returns the lowest-id non-dummy symbol with a negative
// objective coefficient. Lowest-id selection is Bland's rule, which also
// guards against cycling.
func enteringSymbol(objective *row) symbol {
	best := symbol{}
	for s, c := range objective.cells {
		if s.kind == symbolDummy || c >= 0 {
			continue
		}
		if best.kind == symbolInvalid || s.id < best.id {
			best = s
		}
	}
	return best
}

// leavingRow finds the basic symbol with the minimum exit ratio for the
// entering symbol, tie-broken by lowest symbol id.
func (s *solver) leavingRow(entering symbol) (symbol, *row) {
	ratio := math.MaxFloat64
	var found symbol
	var foundRow *row
	for sym, r := range s.rows {
		if sym.kind == symbolExternal {
			continue
		}
		c := r.coefficientFor(entering)
		if c >= 0 {
			continue
		}
		candidate := -r.constant / c
		if candidate < ratio || (candidate == ratio && (foundRow == nil || sym.id < found.id)) {
			ratio = candidate
			found = sym
			foundRow = r
		}
	}
	return found, foundRow
}

// valueOf reads the solved value of a variable. Non-basic variables are
// zero by construction.
func (s *solver) valueOf(v variable) float64 {
	sym, ok := s.vars[v]
	if !ok {
		return 0
	}
	if r, ok := s.rows[sym]; ok {
		return r.constant
	}
	return 0
}
