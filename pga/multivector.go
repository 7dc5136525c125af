// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pga

import (
	"fmt"
	"math"
)

// BasisCount is the number of basis blades of 2D PGA.
const BasisCount = 8

// BasisNames are the blade names in coefficient order.
var BasisNames = [BasisCount]string{"1", "e0", "e1", "e2", "e01", "e20", "e12", "e012"}

const (
	// NormEpsilon is the norm below which Normalized and NormalizedIdeal
	// return their receiver unchanged.
	NormEpsilon = 1e-9

	// DivisionEpsilon is the magnitude below which a divisor counts as zero.
	DivisionEpsilon = 1e-9
)

// Multivector is a general element of R(2,0,1):
//
//	m[0] + m[1]*e0 + m[2]*e1 + m[3]*e2 + m[4]*e01 + m[5]*e20 + m[6]*e12 + m[7]*e012
type Multivector [BasisCount]float64

// Unit basis blades. These are read-only; methods never modify a receiver.
var (
	E0   = Basis(1, 1)
	E1   = Basis(2, 1)
	E2   = Basis(3, 1)
	E01  = Basis(4, 1)
	E20  = Basis(5, 1)
	E12  = Basis(6, 1)
	E012 = Basis(7, 1)

	// Permutations of the blades above, with the sign of the reordering.
	E10  = Basis(4, -1)
	E02  = Basis(5, -1)
	E21  = Basis(6, -1)
	E021 = Basis(7, -1)
	E102 = Basis(7, -1)
	E210 = Basis(7, -1)
	E120 = Basis(7, 1)
	E201 = Basis(7, 1)
)

// New returns a multivector with the given coefficients in basis order.
func New(s, e0, e1, e2, e01, e20, e12, e012 float64) Multivector {
	return Multivector{s, e0, e1, e2, e01, e20, e12, e012}
}

// FromSlice copies exactly BasisCount coefficients into a multivector.
func FromSlice(coeff []float64) (Multivector, error) {
	var m Multivector
	if len(coeff) != BasisCount {
		return m, fmt.Errorf("%w: got %d, want %d", ErrInvalidLength, len(coeff), BasisCount)
	}
	copy(m[:], coeff)
	return m, nil
}

// Zero returns the zero multivector.
func Zero() Multivector {
	return Multivector{}
}

// FromScalar returns the grade-0 multivector s.
func FromScalar(s float64) Multivector {
	return Multivector{0: s}
}

// Basis returns the blade at index scaled by coeff.
// It panics if index is out of range, like any array index.
func Basis(index int, coeff float64) Multivector {
	var m Multivector
	m[index] = coeff
	return m
}

// Origin returns the point at the origin, e12.
func Origin() Multivector {
	return E12
}

// Point returns the Euclidean point (x, y).
func Point(x, y float64) Multivector {
	var m Multivector
	m[4] = y // e01, dual to e2
	m[5] = x // e20, dual to e1
	m[6] = 1
	return m
}

// IdealPoint returns the point at infinity in direction (x, y).
func IdealPoint(x, y float64) Multivector {
	var m Multivector
	m[4] = y
	m[5] = x
	return m
}

// Line returns the line a*x + b*y + c = 0.
func Line(a, b, c float64) Multivector {
	var m Multivector
	m[1] = c
	m[2] = a
	m[3] = b
	return m
}

// Rotor returns the rotor turning by angle radians about (cx, cy).
// Positive angles turn clockwise in a y-up frame, which is counter-clockwise
// on a y-down canvas.
func Rotor(angle, cx, cy float64) Multivector {
	sin, cos := math.Sincos(angle * 0.5)
	return Point(cx, cy).Scale(sin).AddScalar(cos)
}

// Translator returns the translator moving elements by (dx, dy).
//
// A translator 1 + P/2 built from an ideal point P moves perpendicular to P
// by its ideal norm, so the ideal point used here is (dx, dy) turned a
// quarter turn: (dy, -dx).
func Translator(dx, dy float64) Multivector {
	return TranslatorAlong(IdealPoint(dy, -dx), 1)
}

// TranslatorAlong returns 1 + (dist/2)*p, the translator moving elements by
// dist times the ideal norm of p, perpendicular to the ideal point p.
// For the polar ideal point of a line, l*e012, that is a slide along l.
func TranslatorAlong(p Multivector, dist float64) Multivector {
	return p.Scale(0.5 * dist).AddScalar(1)
}

// Coeff returns the coefficient at index.
func (m Multivector) Coeff(index int) (float64, error) {
	if index < 0 || index >= BasisCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	return m[index], nil
}

// Scalar returns the scalar part.
func (m Multivector) Scalar() float64 { return m[0] }

// E0 returns the e0 coefficient.
func (m Multivector) E0() float64 { return m[1] }

// E1 returns the e1 coefficient.
func (m Multivector) E1() float64 { return m[2] }

// E2 returns the e2 coefficient.
func (m Multivector) E2() float64 { return m[3] }

// E01 returns the e01 coefficient.
func (m Multivector) E01() float64 { return m[4] }

// E20 returns the e20 coefficient.
func (m Multivector) E20() float64 { return m[5] }

// E12 returns the e12 coefficient.
func (m Multivector) E12() float64 { return m[6] }

// E012 returns the e012 coefficient.
func (m Multivector) E012() float64 { return m[7] }

// Grade returns the grade-g part of m, with every other coefficient zeroed.
func (m Multivector) Grade(g Grade) Multivector {
	var out Multivector
	for _, i := range g.Indices() {
		out[i] = m[i]
	}
	return out
}

// IsZero reports whether every coefficient is within eps of zero.
func (m Multivector) IsZero(eps float64) bool {
	for _, c := range m {
		if math.Abs(c) > eps {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether m and other differ by at most eps in every
// coefficient.
func (m Multivector) ApproxEqual(other Multivector, eps float64) bool {
	return m.Sub(other).IsZero(eps)
}

// Add returns m + other.
func (m Multivector) Add(other Multivector) Multivector {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// Sub returns m - other.
func (m Multivector) Sub(other Multivector) Multivector {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// Neg returns -m.
func (m Multivector) Neg() Multivector {
	return m.Scale(-1)
}

// AddScalar returns m + s.
func (m Multivector) AddScalar(s float64) Multivector {
	m[0] += s
	return m
}

// SubScalar returns m - s.
func (m Multivector) SubScalar(s float64) Multivector {
	m[0] -= s
	return m
}

// Scale returns m with every coefficient multiplied by s.
func (m Multivector) Scale(s float64) Multivector {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Div returns m with every coefficient divided by s.
func (m Multivector) Div(s float64) (Multivector, error) {
	if math.Abs(s) < DivisionEpsilon {
		return m, ErrDivideByZero
	}
	return m.Scale(1 / s), nil
}
