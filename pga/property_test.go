// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pga

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const propertyRounds = 500

func randomMultivector(rng *rand.Rand) Multivector {
	var m Multivector
	for i := range m {
		m[i] = rng.Float64()*4 - 2
	}
	return m
}

func maxAbs(m Multivector) float64 {
	var v float64
	for _, c := range m {
		v = math.Max(v, math.Abs(c))
	}
	return v
}

func TestPropertyDualIsInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < propertyRounds; i++ {
		a := randomMultivector(rng)
		assert.Equal(t, a, a.Dual().Dual())
	}
}

func TestPropertyGeometricProductAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < propertyRounds; i++ {
		a, b, c := randomMultivector(rng), randomMultivector(rng), randomMultivector(rng)
		assertMultivector(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), 1e-9)
	}
}

func TestPropertyOuterProductAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < propertyRounds; i++ {
		a, b, c := randomMultivector(rng), randomMultivector(rng), randomMultivector(rng)
		assertMultivector(t, a.Wedge(b).Wedge(c), a.Wedge(b.Wedge(c)), 1e-9)
	}
}

func TestPropertyJoinDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < propertyRounds; i++ {
		a, b := randomMultivector(rng), randomMultivector(rng)
		assert.Equal(t, b.Dual().Wedge(a.Dual()).Dual(), a.Join(b))
	}
}

func TestPropertyNormalizedHasUnitNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < propertyRounds; i++ {
		a := randomMultivector(rng)
		if a.Norm() < 1e-3 {
			continue
		}
		assert.InDelta(t, 1.0, a.Normalized().Norm(), 1e-9)
	}
}

func TestPropertyInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	checked := 0
	for i := 0; i < propertyRounds; i++ {
		a := randomMultivector(rng)
		inv, err := a.Inverse()
		if errors.Is(err, ErrNotInvertible) {
			continue
		}
		checked++
		eps := 1e-9 * (1 + maxAbs(a)) * (1 + maxAbs(inv)) * 10
		assertMultivector(t, FromScalar(1), a.Mul(inv), eps)
	}
	assert.Positive(t, checked)
}

func TestPropertyPointLineDuality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < propertyRounds; i++ {
		x, y := rng.Float64()*10-5, rng.Float64()*10-5
		p := Point(x, y)
		// The dual of a point is a vector; the dual of a line is a bivector.
		assert.Equal(t, p.Dual(), p.Dual().Grade(VectorGrade))
		l := Line(x, y, 1)
		assert.Equal(t, l.Dual(), l.Dual().Grade(BivectorGrade))
	}
}
