// Package origami computes origami folds with 2D projective geometric
// algebra.
//
// # Overview
//
// The Huzita-Justin axioms describe every crease that a single fold can
// construct from given points and lines. origami solves them and folds a
// sheet of paper along the result:
//
//	paper := origami.NewPaper(10, 10)
//	crease, err := origami.Axiom2(origami.Pt(0, 0), origami.Pt(10, 10))
//	if err != nil {
//	    return err
//	}
//	res, err := paper.Fold(crease)
//
// # Types
//
// Point and Line are small float32 values for callers. Line{A, B, C} is the
// oriented line A*x + B*y + C = 0. The arithmetic underneath runs in
// float64 on multivectors from package pga.
//
// # Errors
//
// A solver returns a crease or an error, never both:
//   - ErrNoSolution when the construction has no real crease
//   - ErrDegenerateCrease when the inputs collapse it to nothing
//   - ErrUnsupported for axiom 6
//
// # Packages
//
//   - pga: multivectors of R(2,0,1) and their products
//   - geometry: distances, angles, projections and motions
//   - axiom: the seven constructions over multivectors
//   - preview: rasterizes a FoldResult to an image
//
// # Coordinate System
//
// Paper coordinates are y-up. The preview package flips y when drawing.
package origami

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
