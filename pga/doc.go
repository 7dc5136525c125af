// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pga implements 2D projective geometric algebra, the algebra R(2,0,1).
//
// # Multivectors
//
// A [Multivector] is a fixed array of 8 coefficients over the basis blades
//
//	1, e0, e1, e2, e01, e20, e12, e012
//
// in exactly that order. The metric is degenerate: e0*e0 = 0 while
// e1*e1 = e2*e2 = 1, and distinct generators anticommute.
//
// # Geometric interpretation
//
// Elements of a single grade carry geometric meaning:
//   - Lines are grade-1: c*e0 + a*e1 + b*e2 is the line a*x + b*y + c = 0.
//   - Points are grade-2: x*e20 + y*e01 + w*e12. A point with w != 0 is
//     Euclidean (divide by w to read x and y); w == 0 is an ideal point,
//     a direction at infinity.
//   - Even elements (scalar + bivector) are rotors and translators, applied
//     with [Multivector.Sandwich].
//
// # Operators
//
// Go has no operator overloading, so every product is a named method:
//
//	a.Mul(b)    geometric product     (a * b)
//	a.Wedge(b)  outer product, meet   (a ^ b)
//	a.Inner(b)  symmetric inner       (a | b)
//	a.Join(b)   regressive product    (a & b)
//	a.Dual()    Poincare dual         (!a)
//
// All methods have value receivers and return new values; a Multivector is
// safe to share between goroutines.
package pga
