// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pga

import "errors"

var (
	// ErrNotInvertible is returned by Inverse and DivBy when the scalar
	// denominator of the inverse vanishes, e.g. for ideal points and lines.
	ErrNotInvertible = errors.New("pga: multivector is not invertible")

	// ErrDivideByZero is returned by Div when the divisor is (nearly) zero.
	ErrDivideByZero = errors.New("pga: division by zero")

	// ErrInvalidLength is returned by FromSlice when the input does not hold
	// exactly BasisCount coefficients.
	ErrInvalidLength = errors.New("pga: invalid coefficient count")

	// ErrInvalidIndex is returned for blade indices outside [0, BasisCount).
	ErrInvalidIndex = errors.New("pga: invalid blade index")
)
