package origami

import (
	"errors"

	"github.com/gogpu/origami/axiom"
)

// Errors returned by the fold solvers. A nil error always comes with a
// usable crease, so callers never need to inspect a returned Line for
// degeneracy themselves.
var (
	// ErrNoSolution means the construction has no real crease for the
	// given inputs (axioms 5 and 7).
	ErrNoSolution = axiom.ErrNoSolution

	// ErrUnsupported means the construction is not implemented (axiom 6).
	ErrUnsupported = axiom.ErrUnsupported

	// ErrDegenerateCrease means the construction collapsed to a zero or
	// infinite line, for example axiom 3 applied to a line and its reverse
	// or axiom 1 applied to a single point.
	ErrDegenerateCrease = errors.New("origami: degenerate crease")

	// ErrIdealPoint means a point lies at infinity and has no Euclidean
	// coordinates, for example the meet of two parallel lines.
	ErrIdealPoint = errors.New("origami: point at infinity")

	// ErrInvalidPaper means a Paper has fewer than three corners or a
	// corner that is not finite.
	ErrInvalidPaper = errors.New("origami: invalid paper")

	// ErrInvalidRequest means a Request names an unknown axiom or carries
	// the wrong number of points or lines.
	ErrInvalidRequest = errors.New("origami: invalid request")
)
