package origami

import (
	"github.com/gogpu/origami/geometry"
)

// Epsilon is the tolerance band used for signs, parallelism and degenerate
// creases.
const Epsilon = geometry.Epsilon

// DistPointToLine returns the signed distance from p to l. It is positive on
// the side l's normal (A, B) points to.
func DistPointToLine(p Point, l Line) float32 {
	return float32(geometry.DistPointToLine(p.Multivector(), l.Multivector()))
}

// Reflect mirrors p across l. It returns ErrDegenerateCrease when l has no
// direction.
func Reflect(p Point, l Line) (Point, error) {
	m := l.Multivector()
	if m.Norm() < Epsilon {
		return Point{}, ErrDegenerateCrease
	}
	return PointFrom(geometry.Reflect(p.Multivector(), m.Normalized()))
}

// Meet returns the intersection of l0 and l1. Parallel lines meet at
// infinity and yield ErrIdealPoint.
func Meet(l0, l1 Line) (Point, error) {
	return PointFrom(geometry.Intersect(l0.Multivector().Normalized(), l1.Multivector().Normalized()))
}

// Join returns the line through p0 and p1. Swapping the points reverses
// the orientation.
func Join(p0, p1 Point) Line {
	return LineFrom(p0.Multivector().Join(p1.Multivector()))
}

// SignWithTolerance classifies v as -1, 0 or +1. Values within Epsilon of
// zero are 0.
func SignWithTolerance(v float32) int {
	switch {
	case v > Epsilon:
		return 1
	case v < -Epsilon:
		return -1
	default:
		return 0
	}
}
