// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package axiom

import "errors"

var (
	// ErrNoSolution is returned when a construction has no real crease, for
	// example when the circle of axiom 5 misses the target line or the lines
	// of axiom 7 are parallel.
	ErrNoSolution = errors.New("axiom: no solution")

	// ErrUnsupported is returned by constructions this package does not
	// implement. It is never returned for a construction that merely has no
	// solution.
	ErrUnsupported = errors.New("axiom: unsupported construction")
)
