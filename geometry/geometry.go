// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geometry provides Euclidean queries and motions built from the
// operators of package pga: distances, angles, projections, reflections and
// rigid motions of points and lines.
//
// Functions that measure (distances, angles, bisectors) normalize their
// arguments first, so callers may pass weighted points and unnormalized lines.
package geometry

import (
	"math"

	"github.com/gogpu/origami/pga"
)

// Epsilon is the tolerance used for parallelism and sign checks.
const Epsilon = 0.001

// DistPointToPoint returns the distance between p1 and p2, the norm of the
// line joining them.
func DistPointToPoint(p1, p2 pga.Multivector) float64 {
	return p1.Normalized().Join(p2.Normalized()).Norm()
}

// DistPointToLine returns the signed distance from p to l: the e012 part of
// p ^ l. The sign tells which side of the oriented line p is on.
func DistPointToLine(p, l pga.Multivector) float64 {
	return Oriented(p).Wedge(l.Normalized()).E012()
}

// Angle returns the angle between l1 and l2 in [0, pi]. Lines with the same
// orientation meet at 0, opposite orientations at pi.
func Angle(l1, l2 pga.Multivector) float64 {
	cos := l1.Normalized().Inner(l2.Normalized()).Scalar()
	return math.Acos(clamp(cos, -1, 1))
}

// Parallel reports whether l1 and l2 are parallel within eps radians,
// regardless of orientation.
func Parallel(l1, l2 pga.Multivector, eps float64) bool {
	theta := Angle(l1, l2)
	return theta < eps || math.Pi-theta < eps
}

// Bisector returns one angle bisector of l1 and l2, n(l1) + n(l2). It is the
// zero line when l1 and l2 coincide with opposite orientations.
func Bisector(l1, l2 pga.Multivector) pga.Multivector {
	return l1.Normalized().Add(l2.Normalized())
}

// SupplementaryBisector returns the other angle bisector of l1 and l2: the
// perpendicular to Bisector through their meet.
func SupplementaryBisector(l1, l2 pga.Multivector) pga.Multivector {
	return Orthogonal(l1.Meet(l2), Bisector(l1, l2))
}

// Project returns (a | b) * b, the projection of a onto b. For a point a and
// a line b it is the foot of the perpendicular from a; for a line a and a
// point b it is the line through b parallel to a.
func Project(a, b pga.Multivector) pga.Multivector {
	return a.Inner(b).Mul(b)
}

// ProjectPointOntoLine returns the point of l closest to p.
func ProjectPointOntoLine(p, l pga.Multivector) pga.Multivector {
	return Project(p, l)
}

// ProjectLineOntoPoint returns the line through p parallel to l.
func ProjectLineOntoPoint(l, p pga.Multivector) pga.Multivector {
	return Project(l, p)
}

// Orthogonal returns p | l, the line through p perpendicular to l.
func Orthogonal(p, l pga.Multivector) pga.Multivector {
	return p.Inner(l)
}

// Reflect returns b * a * b, the reflection of a in b.
func Reflect(a, b pga.Multivector) pga.Multivector {
	return b.Mul(a).Mul(b)
}

// Rotate turns m by angle radians about (cx, cy).
func Rotate(m pga.Multivector, angle, cx, cy float64) pga.Multivector {
	return pga.Rotor(angle, cx, cy).Sandwich(m)
}

// Translate moves m by (dx, dy).
func Translate(m pga.Multivector, dx, dy float64) pga.Multivector {
	return pga.Translator(dx, dy).Sandwich(m)
}

// TranslateAlong moves m by dist perpendicular to the unit ideal point dir.
// With dir = Direction(l) this slides m along l.
func TranslateAlong(m, dir pga.Multivector, dist float64) pga.Multivector {
	return pga.TranslatorAlong(dir, dist).Sandwich(m)
}

// Direction returns the unit polar ideal point l * e012 of l. Translators
// built from it move parallel to l.
func Direction(l pga.Multivector) pga.Multivector {
	return l.Mul(pga.E012).NormalizedIdeal()
}

// Intersect returns the meet of two lines.
func Intersect(l1, l2 pga.Multivector) pga.Multivector {
	return l1.Meet(l2)
}

// JoinPoints returns the line through p1 and p2.
func JoinPoints(p1, p2 pga.Multivector) pga.Multivector {
	return p1.Join(p2)
}

// Oriented normalizes p and flips it so that its e12 coefficient is +1.
// The meet of two unnormalized lines can come out with either sign.
// Ideal points are only normalized.
func Oriented(p pga.Multivector) pga.Multivector {
	p = p.Normalized()
	if p.E12() < 0 {
		return p.Neg()
	}
	return p
}

// Midpoint returns the normalized midpoint of p0 and p1.
func Midpoint(p0, p1 pga.Multivector) pga.Multivector {
	return Oriented(p0).Add(Oriented(p1)).Normalized()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
