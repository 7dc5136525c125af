package origami

import (
	"fmt"
	"math"

	"github.com/gogpu/origami/pga"
)

// Line is the oriented line A*x + B*y + C = 0. Negating all three
// coefficients gives the same set of points with the opposite orientation.
type Line struct {
	A, B, C float32
}

// LineFrom reads the line coefficients of m: A from e1, B from e2 and C
// from e0. Other grades are ignored.
func LineFrom(m pga.Multivector) Line {
	return Line{A: float32(m.E1()), B: float32(m.E2()), C: float32(m.E0())}
}

// LineThrough returns the line through the segment endpoints p0 and p1.
// It is the zero line when the points coincide.
func LineThrough(p0, p1 Point) Line {
	return Join(p0, p1)
}

// Multivector returns c*e0 + a*e1 + b*e2.
func (l Line) Multivector() pga.Multivector {
	return pga.Line(float64(l.A), float64(l.B), float64(l.C))
}

// Norm returns sqrt(A*A + B*B). It is zero for the line at infinity and the
// zero line.
func (l Line) Norm() float32 {
	return float32(math.Hypot(float64(l.A), float64(l.B)))
}

// Normalized returns l scaled so that A*A + B*B = 1. The line at infinity
// is returned unchanged.
func (l Line) Normalized() Line {
	return LineFrom(l.Multivector().Normalized())
}

// Eval returns A*x + B*y + C, the signed distance of p for a normalized line.
func (l Line) Eval(p Point) float32 {
	return l.A*p.X + l.B*p.Y + l.C
}

// String returns "ax + by + c = 0" with the coefficients filled in.
func (l Line) String() string {
	return fmt.Sprintf("%gx + %gy + %g = 0", l.A, l.B, l.C)
}
