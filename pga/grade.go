// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pga

import "fmt"

// Grade is the degree of a basis blade.
type Grade int

// Grades of 2D PGA.
const (
	ScalarGrade    Grade = iota // 1
	VectorGrade                 // e0, e1, e2 (lines)
	BivectorGrade               // e01, e20, e12 (points)
	TrivectorGrade              // e012 (pseudoscalar)
)

// Grades lists every grade of the algebra in ascending order.
var Grades = [...]Grade{ScalarGrade, VectorGrade, BivectorGrade, TrivectorGrade}

var gradeIndices = [...][]int{
	ScalarGrade:    {0},
	VectorGrade:    {1, 2, 3},
	BivectorGrade:  {4, 5, 6},
	TrivectorGrade: {7},
}

// Indices returns the blade indices belonging to the grade.
// The returned slice is a copy.
func (g Grade) Indices() []int {
	if g < ScalarGrade || g > TrivectorGrade {
		return nil
	}
	src := gradeIndices[g]
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// String returns the conventional name of the grade.
func (g Grade) String() string {
	switch g {
	case ScalarGrade:
		return "scalar"
	case VectorGrade:
		return "vector"
	case BivectorGrade:
		return "bivector"
	case TrivectorGrade:
		return "trivector"
	default:
		return fmt.Sprintf("Grade(%d)", int(g))
	}
}

// GradeOf returns the grade of the blade at index.
func GradeOf(index int) (Grade, error) {
	switch {
	case index == 0:
		return ScalarGrade, nil
	case index >= 1 && index <= 3:
		return VectorGrade, nil
	case index >= 4 && index <= 6:
		return BivectorGrade, nil
	case index == 7:
		return TrivectorGrade, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
}
