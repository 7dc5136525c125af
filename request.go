package origami

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/origami/axiom"
	"github.com/gogpu/origami/pga"
)

// Request names an axiom and its inputs, in the order the axiom functions
// take them: points first, then lines.
type Request struct {
	Axiom  int
	Points []Point
	Lines  []Line
}

// arity holds the number of points and lines each axiom takes.
var arity = map[int][2]int{
	1: {2, 0},
	2: {2, 0},
	3: {0, 2},
	4: {1, 1},
	5: {2, 1},
	6: {2, 2},
	7: {1, 2},
}

// Validate checks that the request names a known axiom, carries exactly the
// inputs it takes, and that every coordinate is finite. Failures wrap
// ErrInvalidRequest.
func (r Request) Validate() error {
	want, ok := arity[r.Axiom]
	if !ok {
		return fmt.Errorf("%w: unknown axiom %d", ErrInvalidRequest, r.Axiom)
	}
	if len(r.Points) != want[0] || len(r.Lines) != want[1] {
		return fmt.Errorf("%w: axiom %d takes %d points and %d lines, got %d and %d",
			ErrInvalidRequest, r.Axiom, want[0], want[1], len(r.Points), len(r.Lines))
	}
	for i, p := range r.Points {
		if !finite(p.X, p.Y) {
			return fmt.Errorf("%w: point %d is not finite", ErrInvalidRequest, i)
		}
	}
	for i, l := range r.Lines {
		if !finite(l.A, l.B, l.C) {
			return fmt.Errorf("%w: line %d is not finite", ErrInvalidRequest, i)
		}
		if l.Norm() < Epsilon {
			return fmt.Errorf("%w: line %d has no direction", ErrInvalidRequest, i)
		}
	}
	return nil
}

// String returns a canonical form of the request. Equal requests have equal
// strings, so it can serve as a cache key.
func (r Request) String() string {
	var sb strings.Builder
	sb.WriteString("axiom")
	sb.WriteString(strconv.Itoa(r.Axiom))
	for _, p := range r.Points {
		sb.WriteString(" p(")
		writeFloats(&sb, p.X, p.Y)
		sb.WriteByte(')')
	}
	for _, l := range r.Lines {
		sb.WriteString(" l(")
		writeFloats(&sb, l.A, l.B, l.C)
		sb.WriteByte(')')
	}
	return sb.String()
}

// Solve validates r and returns its primary crease.
func Solve(r Request) (Line, error) {
	if err := r.Validate(); err != nil {
		return Line{}, err
	}
	p, l := r.Points, r.Lines
	switch r.Axiom {
	case 1:
		return Axiom1(p[0], p[1])
	case 2:
		return Axiom2(p[0], p[1])
	case 3:
		return Axiom3(l[0], l[1])
	case 4:
		return Axiom4(p[0], l[0])
	case 5:
		return Axiom5(p[0], p[1], l[0])
	case 6:
		return Axiom6(p[0], p[1], l[0], l[1])
	default:
		return Axiom7(p[0], l[0], l[1])
	}
}

// Candidates validates r and returns every crease it admits, primary first.
// Axioms 3 and 5 may yield two creases; the others yield the one Solve
// returns.
func Candidates(r Request) ([]Line, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	var (
		ms  []pga.Multivector
		err error
	)
	switch r.Axiom {
	case 3:
		ms = axiom.Axiom3Candidates(r.Lines[0].Multivector(), r.Lines[1].Multivector())
		if len(ms) == 0 {
			err = ErrDegenerateCrease
		}
	case 5:
		ms, err = axiom.Axiom5Candidates(r.Points[0].Multivector(), r.Points[1].Multivector(), r.Lines[0].Multivector())
	default:
		l, err := Solve(r)
		if err != nil {
			return nil, err
		}
		return []Line{l}, nil
	}
	if err != nil {
		Logger().Debug("origami: no candidates", "request", r.String(), "err", err)
		return nil, err
	}
	out := make([]Line, len(ms))
	for i, m := range ms {
		out[i] = LineFrom(m)
	}
	return out, nil
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func writeFloats(sb *strings.Builder, vs ...float32) {
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
}
