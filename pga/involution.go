// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pga

import (
	"fmt"
	"math"
)

// Conjugation returns the Clifford conjugate, (-1)^(k(k+1)/2) on each
// grade-k part: vectors and bivectors are negated.
func (m Multivector) Conjugation() Multivector {
	for i := 1; i <= 6; i++ {
		m[i] = -m[i]
	}
	return m
}

// GradeInvolution returns the main involution, (-1)^k on each grade-k part:
// vectors and the trivector are negated.
func (m Multivector) GradeInvolution() Multivector {
	m[1], m[2], m[3] = -m[1], -m[2], -m[3]
	m[7] = -m[7]
	return m
}

// Reversion returns the reverse, (-1)^(k(k-1)/2) on each grade-k part:
// bivectors and the trivector are negated, so e20 becomes e02.
func (m Multivector) Reversion() Multivector {
	for i := 4; i <= 7; i++ {
		m[i] = -m[i]
	}
	return m
}

// Inverse returns m^-1 with m * m^-1 = m^-1 * m = 1.
//
// The numerator conj(m)*invol(m)*rev(m) makes m*num a pure scalar, so the
// inverse is num divided by that scalar. Ideal elements square to zero and
// report ErrNotInvertible.
func (m Multivector) Inverse() (Multivector, error) {
	num := m.Conjugation().Mul(m.GradeInvolution()).Mul(m.Reversion())
	den := m.Mul(num).Scalar()
	if math.Abs(den) < DivisionEpsilon {
		return Multivector{}, fmt.Errorf("%w: %v", ErrNotInvertible, m)
	}
	return num.Scale(1 / den), nil
}

// DivBy returns m * other^-1.
func (m Multivector) DivBy(other Multivector) (Multivector, error) {
	inv, err := other.Inverse()
	if err != nil {
		return Multivector{}, err
	}
	return m.Mul(inv), nil
}

// Norm returns sqrt(|<m * conj(m)>_0|). It is zero for null elements such as
// ideal points.
func (m Multivector) Norm() float64 {
	return math.Sqrt(math.Abs(m.Mul(m.Conjugation()).Scalar()))
}

// IdealNorm returns the norm of the dual, the magnitude carried by the
// degenerate e0 direction.
func (m Multivector) IdealNorm() float64 {
	return m.Dual().Norm()
}

// Normalized returns m divided by its norm. When the norm is below
// NormEpsilon, m is returned unchanged.
func (m Multivector) Normalized() Multivector {
	n := m.Norm()
	if n < NormEpsilon {
		return m
	}
	return m.Scale(1 / n)
}

// NormalizedIdeal returns m divided by its ideal norm, or m unchanged when
// that norm is below NormEpsilon.
func (m Multivector) NormalizedIdeal() Multivector {
	n := m.IdealNorm()
	if n < NormEpsilon {
		return m
	}
	return m.Scale(1 / n)
}

// Sandwich applies the rotor or translator m to x: m * x * conj(m).
func (m Multivector) Sandwich(x Multivector) Multivector {
	return m.Mul(x).Mul(m.Conjugation())
}
