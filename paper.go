package origami

import (
	"fmt"

	"github.com/gogpu/origami/geometry"
	"github.com/gogpu/origami/pga"
)

// Paper is a convex sheet described by its corners in order.
type Paper struct {
	Corners []Point
}

// NewPaper returns a w by h rectangle with its lower-left corner at the
// origin. Corners run (0,0), (w,0), (w,h), (0,h).
func NewPaper(w, h float32) Paper {
	return Paper{Corners: []Point{{0, 0}, {w, 0}, {w, h}, {0, h}}}
}

// NewPaperFromCorners returns the quadrilateral ul, ur, lr, ll.
func NewPaperFromCorners(ul, ur, lr, ll Point) Paper {
	return Paper{Corners: []Point{ul, ur, lr, ll}}
}

// Bounds returns the smallest axis-aligned box containing the corners.
func (p Paper) Bounds() (minPt, maxPt Point) {
	return bounds(p.Corners)
}

// Validate reports ErrInvalidPaper when p has fewer than three corners or a
// corner coordinate is NaN or infinite.
func (p Paper) Validate() error {
	if len(p.Corners) < 3 {
		return fmt.Errorf("%w: %d corners", ErrInvalidPaper, len(p.Corners))
	}
	for i, pt := range p.Corners {
		if !finite(pt.X, pt.Y) {
			return fmt.Errorf("%w: corner %d %v is not finite", ErrInvalidPaper, i, pt)
		}
	}
	return nil
}

// FoldResult is the outcome of folding a Paper along a crease.
//
// Positive holds the outline of the part that stays put, on the side the
// crease normal points to. Negative holds the outline of the flap after it
// has been reflected across the crease. Points on the crease appear in
// both.
type FoldResult struct {
	Crease   Line
	Positive []Point
	Negative []Point
}

// Bounds returns the smallest axis-aligned box containing both outlines.
func (r FoldResult) Bounds() (minPt, maxPt Point) {
	all := make([]Point, 0, len(r.Positive)+len(r.Negative))
	all = append(all, r.Positive...)
	all = append(all, r.Negative...)
	return bounds(all)
}

// Fold splits the paper along crease and reflects the negative side onto
// the positive one.
//
// Walking the outline, a cut point is inserted on every edge whose
// endpoints lie strictly on opposite sides of the crease. Every vertex and
// cut point with sign <= 0 is reflected into Negative; every one with
// sign >= 0 goes to Positive unchanged. Signs use SignWithTolerance.
func (p Paper) Fold(crease Line) (FoldResult, error) {
	if err := p.Validate(); err != nil {
		return FoldResult{}, err
	}
	if !finite(crease.A, crease.B, crease.C) {
		return FoldResult{}, fmt.Errorf("%w: crease %v is not finite", ErrDegenerateCrease, crease)
	}
	c := crease.Multivector()
	if c.Norm() < Epsilon {
		return FoldResult{}, ErrDegenerateCrease
	}
	c = c.Normalized()

	n := len(p.Corners)
	vertices := make([]pga.Multivector, n)
	signs := make([]int, n)
	for i, pt := range p.Corners {
		vertices[i] = pt.Multivector()
		signs[i] = side(vertices[i], c)
	}

	outline := make([]pga.Multivector, 0, n+2)
	for i := range vertices {
		j := (i + 1) % n
		outline = append(outline, vertices[i])
		if signs[i] != 0 && signs[j] != 0 && signs[i] != signs[j] {
			edge := vertices[i].Join(vertices[j])
			outline = append(outline, geometry.Oriented(edge.Meet(c)))
		}
	}

	res := FoldResult{Crease: LineFrom(c)}
	for _, v := range outline {
		s := side(v, c)
		if s <= 0 {
			q, err := PointFrom(geometry.Reflect(v, c))
			if err != nil {
				return FoldResult{}, fmt.Errorf("origami: fold: %w", err)
			}
			res.Negative = append(res.Negative, q)
		}
		if s >= 0 {
			q, err := PointFrom(v)
			if err != nil {
				return FoldResult{}, fmt.Errorf("origami: fold: %w", err)
			}
			res.Positive = append(res.Positive, q)
		}
	}
	Logger().Debug("origami: folded",
		"crease", res.Crease, "positive", len(res.Positive), "negative", len(res.Negative))
	return res, nil
}

// FoldRequest solves r and folds the paper along the primary crease.
func (p Paper) FoldRequest(r Request) (FoldResult, error) {
	crease, err := Solve(r)
	if err != nil {
		return FoldResult{}, err
	}
	return p.Fold(crease)
}

// side classifies a point against a normalized crease.
func side(v, crease pga.Multivector) int {
	return SignWithTolerance(float32(geometry.DistPointToLine(v, crease)))
}

func bounds(pts []Point) (minPt, maxPt Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	minPt, maxPt = pts[0], pts[0]
	for _, pt := range pts[1:] {
		minPt.X = min(minPt.X, pt.X)
		minPt.Y = min(minPt.Y, pt.Y)
		maxPt.X = max(maxPt.X, pt.X)
		maxPt.Y = max(maxPt.Y, pt.Y)
	}
	return minPt, maxPt
}
