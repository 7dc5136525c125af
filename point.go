package origami

import (
	"fmt"
	"math"

	"github.com/gogpu/origami/pga"
)

// Point is a Euclidean point in paper coordinates.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// PointFrom converts a point multivector to a Point by dividing out its
// homogeneous weight. It returns ErrIdealPoint when the weight is within
// Epsilon of zero, as for the meet of parallel lines.
func PointFrom(m pga.Multivector) (Point, error) {
	w := m.E12()
	if math.Abs(w) < Epsilon {
		return Point{}, fmt.Errorf("%w: %v", ErrIdealPoint, m)
	}
	return Point{X: float32(m.E20() / w), Y: float32(m.E01() / w)}, nil
}

// Multivector returns the normalized point x*e20 + y*e01 + e12.
func (p Point) Multivector() pga.Multivector {
	return pga.Point(float64(p.X), float64(p.Y))
}

// String returns "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
