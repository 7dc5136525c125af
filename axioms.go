package origami

import (
	"github.com/gogpu/origami/axiom"
	"github.com/gogpu/origami/pga"
)

// Axiom1 returns the crease through p0 and p1.
func Axiom1(p0, p1 Point) (Line, error) {
	return crease(1, axiom.Axiom1(p0.Multivector(), p1.Multivector()), nil)
}

// Axiom2 returns the crease that folds p0 onto p1.
func Axiom2(p0, p1 Point) (Line, error) {
	return crease(2, axiom.Axiom2(p0.Multivector(), p1.Multivector()), nil)
}

// Axiom3 returns the crease that folds l0 onto l1. A line and its own
// reverse have no bisector and yield ErrDegenerateCrease; Candidates lists
// the second bisector and the midline of opposed parallels.
func Axiom3(l0, l1 Line) (Line, error) {
	return crease(3, axiom.Axiom3(l0.Multivector(), l1.Multivector()), nil)
}

// Axiom4 returns the crease through p perpendicular to l.
func Axiom4(p Point, l Line) (Line, error) {
	return crease(4, axiom.Axiom4(p.Multivector(), l.Multivector()), nil)
}

// Axiom5 returns a crease through p1 that places p0 onto l, or
// ErrNoSolution when l is farther from p1 than p0 is.
func Axiom5(p0, p1 Point, l Line) (Line, error) {
	m, err := axiom.Axiom5(p0.Multivector(), p1.Multivector(), l.Multivector())
	return crease(5, m, err)
}

// Axiom6 always returns ErrUnsupported.
func Axiom6(p0, p1 Point, l0, l1 Line) (Line, error) {
	m, err := axiom.Axiom6(p0.Multivector(), p1.Multivector(), l0.Multivector(), l1.Multivector())
	return crease(6, m, err)
}

// Axiom7 returns the crease perpendicular to l1 that places p onto l0, or
// ErrNoSolution when l0 and l1 are parallel.
func Axiom7(p Point, l0, l1 Line) (Line, error) {
	m, err := axiom.Axiom7(p.Multivector(), l0.Multivector(), l1.Multivector())
	return crease(7, m, err)
}

// crease converts a solver result to a Line, rejecting degenerate creases.
func crease(n int, m pga.Multivector, err error) (Line, error) {
	if err != nil {
		Logger().Debug("origami: no crease", "axiom", n, "err", err)
		return Line{}, err
	}
	if axiom.Degenerate(m) {
		Logger().Debug("origami: degenerate crease", "axiom", n, "crease", m)
		return Line{}, ErrDegenerateCrease
	}
	l := LineFrom(m)
	Logger().Debug("origami: crease", "axiom", n, "line", l)
	return l, nil
}
