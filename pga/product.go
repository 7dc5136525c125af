// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pga

// Mul returns the geometric product m * other.
//
// The expansion distributes the product over all 64 blade pairs using
// e0*e0 = 0, e1*e1 = e2*e2 = 1 and anticommuting generators.
func (m Multivector) Mul(other Multivector) Multivector {
	a0, a1, a2, a3, a4, a5, a6, a7 := m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7]
	b0, b1, b2, b3, b4, b5, b6, b7 := other[0], other[1], other[2], other[3], other[4], other[5], other[6], other[7]

	return Multivector{
		a0*b0 + a2*b2 + a3*b3 - a6*b6,
		a0*b1 + a1*b0 - a2*b4 + a3*b5 - a6*b7 - a5*b3 + a4*b2 - a7*b6,
		a0*b2 + a2*b0 - a3*b6 + a6*b3,
		a0*b3 + a2*b6 - a6*b2 + a3*b0,
		a0*b4 + a1*b2 - a2*b1 + a3*b7 - a6*b5 + a5*b6 + a4*b0 + a7*b3,
		a0*b5 - a1*b3 + a2*b7 + a3*b1 + a6*b4 + a5*b0 - a4*b6 + a7*b2,
		a0*b6 + a2*b3 - a3*b2 + a6*b0,
		a0*b7 + a1*b6 + a2*b5 + a3*b4 + a6*b1 + a5*b2 + a4*b3 + a7*b0,
	}
}

// Wedge returns the outer product m ^ other: for each pair of grade-k and
// grade-s parts, the grade k+s part of their geometric product.
//
// For two lines this is their meet, the point where they intersect.
func (m Multivector) Wedge(other Multivector) Multivector {
	a0, a1, a2, a3, a4, a5, a6, a7 := m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7]
	b0, b1, b2, b3, b4, b5, b6, b7 := other[0], other[1], other[2], other[3], other[4], other[5], other[6], other[7]

	return Multivector{
		a0 * b0,
		a1*b0 + a0*b1,
		a2*b0 + a0*b2,
		a3*b0 + a0*b3,
		a4*b0 + a1*b2 - a2*b1 + a0*b4,
		a5*b0 + a3*b1 - a1*b3 + a0*b5,
		a6*b0 + a2*b3 - a3*b2 + a0*b6,
		a7*b0 + a4*b3 + a5*b2 + a6*b1 + a1*b6 + a2*b5 + a3*b4 + a0*b7,
	}
}

// Meet is Wedge under its incidence name. The meet of two parallel lines is
// an ideal point.
func (m Multivector) Meet(other Multivector) Multivector {
	return m.Wedge(other)
}

// Inner returns the symmetric inner product m | other: for each pair of
// grade-k and grade-s parts, the grade |k-s| part of their geometric product.
func (m Multivector) Inner(other Multivector) Multivector {
	a0, a1, a2, a3, a4, a5, a6, a7 := m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7]
	b0, b1, b2, b3, b4, b5, b6, b7 := other[0], other[1], other[2], other[3], other[4], other[5], other[6], other[7]

	return Multivector{
		a0*b0 + a2*b2 + a3*b3 - a6*b6,
		a1*b0 + a0*b1 + a4*b2 - a5*b3 + a3*b5 - a2*b4 - a7*b6 - a6*b7,
		a2*b0 + a0*b2 + a6*b3 - a3*b6,
		a3*b0 + a0*b3 - a6*b2 + a2*b6,
		a4*b0 + a7*b3 + a0*b4 + a3*b7,
		a5*b0 + a7*b2 + a0*b5 + a2*b7,
		a6*b0 + a0*b6,
		a7*b0 + a0*b7,
	}
}

// Dual returns the Poincare dual of m, which reverses the coefficient order
// (1 <-> e012, e0 <-> e12, e1 <-> e20, e2 <-> e01). Dual is its own inverse.
func (m Multivector) Dual() Multivector {
	var out Multivector
	for i := range m {
		out[i] = m[BasisCount-1-i]
	}
	return out
}

// Join returns the regressive product m & other, Dual(Dual(other) ^ Dual(m)).
// The join of two points is the line through them, oriented from m to other.
func (m Multivector) Join(other Multivector) Multivector {
	return other.Dual().Wedge(m.Dual()).Dual()
}
