package layout

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestSolver_RequiredEquality(t *testing.T) {
	s := newSolver()
	x := variable(0)

	if err := s.addConstraint(eq(varExpr(x), constExpr(5), strengthRequired)); err != nil {
		t.Fatalf("addConstraint() error = %v", err)
	}
	if got := s.valueOf(x); !almostEqual(got, 5) {
		t.Errorf("valueOf(x) = %v, want 5", got)
	}
}

func TestSolver_RequiredInequalityCapsSoftEquality(t *testing.T) {
	s := newSolver()
	x := variable(0)

	if err := s.addConstraint(le(varExpr(x), constExpr(10), strengthRequired)); err != nil {
		t.Fatalf("addConstraint(x <= 10) error = %v", err)
	}
	if err := s.addConstraint(eq(varExpr(x), constExpr(15), strengthStrong)); err != nil {
		t.Fatalf("addConstraint(x == 15) error = %v", err)
	}
	if got := s.valueOf(x); !almostEqual(got, 10) {
		t.Errorf("valueOf(x) = %v, want 10", got)
	}
}

func TestSolver_StrongerStrengthWins(t *testing.T) {
	s := newSolver()
	x := variable(0)

	if err := s.addConstraint(eq(varExpr(x), constExpr(2), strengthMedium)); err != nil {
		t.Fatalf("addConstraint(x == 2) error = %v", err)
	}
	if err := s.addConstraint(eq(varExpr(x), constExpr(6), strengthStrong)); err != nil {
		t.Fatalf("addConstraint(x == 6) error = %v", err)
	}
	if got := s.valueOf(x); !almostEqual(got, 6) {
		t.Errorf("valueOf(x) = %v, want 6", got)
	}
}

func TestSolver_EqualStrengthFirstWins(t *testing.T) {
	// Two equally-strong equalities that cannot both hold: the one added
	// first stays satisfied. Layout relies on this to make constraint order
	// the tie breaker.
	s := newSolver()
	x := variable(0)
	y := variable(1)

	sum := expression{terms: []term{{x, 1}, {y, 1}}}
	if err := s.addConstraint(eq(sum, constExpr(10), strengthRequired)); err != nil {
		t.Fatalf("addConstraint(x + y == 10) error = %v", err)
	}
	if err := s.addConstraint(ge(varExpr(x), constExpr(0), strengthRequired)); err != nil {
		t.Fatalf("addConstraint(x >= 0) error = %v", err)
	}
	if err := s.addConstraint(ge(varExpr(y), constExpr(0), strengthRequired)); err != nil {
		t.Fatalf("addConstraint(y >= 0) error = %v", err)
	}
	if err := s.addConstraint(eq(varExpr(x), constExpr(10), strengthMedium)); err != nil {
		t.Fatalf("addConstraint(x == 10) error = %v", err)
	}
	if err := s.addConstraint(eq(varExpr(y), constExpr(10), strengthMedium)); err != nil {
		t.Fatalf("addConstraint(y == 10) error = %v", err)
	}

	if got := s.valueOf(x); !almostEqual(got, 10) {
		t.Errorf("valueOf(x) = %v, want 10", got)
	}
	if got := s.valueOf(y); !almostEqual(got, 0) {
		t.Errorf("valueOf(y) = %v, want 0", got)
	}
}

func TestSolver_TwoVariables(t *testing.T) {
	s := newSolver()
	x := variable(0)
	y := variable(1)

	// x + y == 12, x - y == 2
	sum := expression{terms: []term{{x, 1}, {y, 1}}}
	diff := expression{terms: []term{{x, 1}, {y, -1}}}
	if err := s.addConstraint(eq(sum, constExpr(12), strengthRequired)); err != nil {
		t.Fatalf("addConstraint(x + y == 12) error = %v", err)
	}
	if err := s.addConstraint(eq(diff, constExpr(2), strengthRequired)); err != nil {
		t.Fatalf("addConstraint(x - y == 2) error = %v", err)
	}

	if got := s.valueOf(x); !almostEqual(got, 7) {
		t.Errorf("valueOf(x) = %v, want 7", got)
	}
	if got := s.valueOf(y); !almostEqual(got, 5) {
		t.Errorf("valueOf(y) = %v, want 5", got)
	}
}

func TestSolver_UnsatisfiableRequired(t *testing.T) {
	s := newSolver()
	x := variable(0)

	if err := s.addConstraint(eq(varExpr(x), constExpr(10), strengthRequired)); err != nil {
		t.Fatalf("addConstraint(x == 10) error = %v", err)
	}
	err := s.addConstraint(eq(varExpr(x), constExpr(5), strengthRequired))
	if err == nil {
		t.Fatal("addConstraint(x == 5) error = nil, want unsatisfiable")
	}
}

func TestSolver_UnknownVariableIsZero(t *testing.T) {
	s := newSolver()
	if got := s.valueOf(variable(42)); got != 0 {
		t.Errorf("valueOf(unknown) = %v, want 0", got)
	}
}
