// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package axiom solves the Huzita-Justin folding constructions.
//
// Every function takes points and lines as pga multivectors and returns the
// crease line of a single fold. Creases are normalized. Constructions that
// admit two folds return one primary crease; the Candidates variants list
// all of them.
//
//	Axiom 1  fold through p0 and p1
//	Axiom 2  fold p0 onto p1
//	Axiom 3  fold l0 onto l1
//	Axiom 4  fold through p perpendicular to l
//	Axiom 5  fold p0 onto l through p1
//	Axiom 6  fold p0 onto l0 and p1 onto l1 (unsupported)
//	Axiom 7  fold p onto l0 perpendicular to l1
//
// All functions are pure and safe for concurrent use.
package axiom

import (
	"math"

	"github.com/gogpu/origami/geometry"
	"github.com/gogpu/origami/pga"
)

// Epsilon is the tolerance for parallelism and degenerate creases.
const Epsilon = geometry.Epsilon

// Axiom1 returns the crease through p0 and p1.
// The result is the zero line when p0 and p1 coincide.
func Axiom1(p0, p1 pga.Multivector) pga.Multivector {
	return p0.Join(p1).Normalized()
}

// Axiom2 returns the crease that folds p0 onto p1: the perpendicular
// bisector of the segment p0 p1.
func Axiom2(p0, p1 pga.Multivector) pga.Multivector {
	line := p0.Join(p1)
	mid := geometry.Midpoint(p0, p1)
	return geometry.Orthogonal(mid, line).Normalized()
}

// Axiom3 returns the crease that folds l0 onto l1, the bisector of their
// orientations. When l0 and l1 are the same line with opposite orientation
// the bisector vanishes; callers detect this with Degenerate.
func Axiom3(l0, l1 pga.Multivector) pga.Multivector {
	return geometry.Bisector(l0, l1).Normalized()
}

// Axiom3Candidates returns every crease that folds l0 onto l1: the bisector
// and, for crossing lines, the supplementary bisector. Degenerate creases
// are dropped. Distinct parallel lines of opposite orientation yield their
// midline; a line and its own reverse yield nothing.
func Axiom3Candidates(l0, l1 pga.Multivector) []pga.Multivector {
	var out []pga.Multivector
	for _, c := range []pga.Multivector{
		Axiom3(l0, l1),
		geometry.SupplementaryBisector(l0, l1).Normalized(),
	} {
		if !Degenerate(c) {
			out = append(out, c)
		}
	}
	if len(out) == 0 && !geometry.Bisector(l0, l1).IsZero(Epsilon) {
		out = append(out, Axiom3(l0, l1.Neg()))
	}
	return out
}

// Axiom4 returns the crease through p perpendicular to l.
func Axiom4(p, l pga.Multivector) pga.Multivector {
	return geometry.Orthogonal(p, l).Normalized()
}

// Axiom5 returns a crease through p1 that places p0 onto l.
//
// The circle about p1 through p0 meets l in up to two points; the crease is
// the perpendicular bisector of p0 and the first such point reached by
// sliding forward along l from the foot of p1. If that crease degenerates
// (p0 already lies there) the other intersection is used. ErrNoSolution is
// returned when the circle misses l.
func Axiom5(p0, p1, l pga.Multivector) (pga.Multivector, error) {
	creases, err := Axiom5Candidates(p0, p1, l)
	if err != nil {
		return pga.Zero(), err
	}
	return creases[0], nil
}

// Axiom5Candidates returns every crease through p1 that places p0 onto l,
// primary first. A tangent circle yields a single crease.
func Axiom5Candidates(p0, p1, l pga.Multivector) ([]pga.Multivector, error) {
	r := geometry.DistPointToPoint(p0, p1)
	h := geometry.DistPointToLine(p1, l)
	if math.Abs(h) > r {
		return nil, ErrNoSolution
	}

	perp := geometry.Oriented(geometry.Intersect(geometry.Orthogonal(p1, l), l))
	dir := geometry.Direction(l)
	d := math.Sqrt(math.Max(0, r*r-h*h))

	offsets := []float64{d, -d}
	if d < Epsilon {
		offsets = offsets[:1]
	}

	var out []pga.Multivector
	for _, off := range offsets {
		target := geometry.TranslateAlong(perp, dir, off)
		crease := geometry.Orthogonal(p1, target.Join(p0)).Normalized()
		if !Degenerate(crease) {
			out = append(out, crease)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoSolution
	}
	return out, nil
}

// Axiom6 would fold p0 onto l0 and p1 onto l1 at once. That needs a cubic
// tangency solver and is not implemented; it always returns ErrUnsupported.
func Axiom6(p0, p1, l0, l1 pga.Multivector) (pga.Multivector, error) {
	return pga.Zero(), ErrUnsupported
}

// Axiom7 returns the crease perpendicular to l1 that places p onto l0.
// ErrNoSolution is returned when l0 and l1 are parallel.
func Axiom7(p, l0, l1 pga.Multivector) (pga.Multivector, error) {
	if geometry.Parallel(l0, l1, Epsilon) {
		return pga.Zero(), ErrNoSolution
	}
	through := geometry.ProjectLineOntoPoint(l1, p)
	target := geometry.Oriented(geometry.Intersect(through, l0))
	mid := geometry.Midpoint(p, target)
	return geometry.Orthogonal(mid, l1).Normalized(), nil
}

// Degenerate reports whether crease has vanished, which happens when the
// inputs of a construction coincide.
func Degenerate(crease pga.Multivector) bool {
	return crease.Norm() < Epsilon
}
