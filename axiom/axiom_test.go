// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package axiom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/origami/geometry"
	"github.com/gogpu/origami/pga"
)

const tol = 1e-9

// assertSameLine checks that got and want describe the same line, either
// orientation.
func assertSameLine(t *testing.T, want, got pga.Multivector) {
	t.Helper()
	w, g := want.Normalized(), got.Normalized()
	if g.ApproxEqual(w, 1e-5) || g.ApproxEqual(w.Neg(), 1e-5) {
		return
	}
	t.Errorf("want line %v, got %v", want, got)
}

// assertLands checks that folding p along crease puts it on l.
func assertLands(t *testing.T, p, crease, l pga.Multivector) {
	t.Helper()
	folded := geometry.Reflect(p, crease)
	assert.InDelta(t, 0, geometry.DistPointToLine(folded, l), 1e-8, "fold of %v along %v misses %v", p, crease, l)
}

func TestAxiom1(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 pga.Multivector
		want   pga.Multivector
	}{
		{"x axis", pga.Point(0, 0), pga.Point(2, 0), pga.Line(0, 1, 0)},
		{"diagonal", pga.Point(1, 1), pga.Point(3, 3), pga.Line(1, -1, 0)},
		{"weighted", pga.Point(0, 1).Scale(3), pga.Point(5, 1), pga.Line(0, 1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crease := Axiom1(tt.p0, tt.p1)
			assertSameLine(t, tt.want, crease)
			assert.InDelta(t, 1, crease.Norm(), tol)
			assert.InDelta(t, 0, geometry.DistPointToLine(tt.p0, crease), tol)
			assert.InDelta(t, 0, geometry.DistPointToLine(tt.p1, crease), tol)
		})
	}

	t.Run("coincident points", func(t *testing.T) {
		assert.True(t, Degenerate(Axiom1(pga.Point(1, 2), pga.Point(1, 2))))
	})
}

func TestAxiom2(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 pga.Multivector
		want   pga.Multivector
	}{
		{"horizontal", pga.Point(0, 0), pga.Point(2, 0), pga.Line(1, 0, -1)},
		{"diagonal", pga.Point(1, 1), pga.Point(3, 3), pga.Line(1, 1, -4)},
		{"negative weight", pga.Point(1, 1), pga.Point(3, 3).Scale(-2), pga.Line(1, 1, -4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crease := Axiom2(tt.p0, tt.p1)
			assertSameLine(t, tt.want, crease)
			folded := geometry.Reflect(tt.p0, crease)
			assert.InDelta(t, 0, geometry.DistPointToPoint(folded, tt.p1), 1e-9)
		})
	}
}

func TestAxiom3(t *testing.T) {
	t.Run("crossing", func(t *testing.T) {
		crease := Axiom3(pga.Line(1, 0, 0), pga.Line(0, 1, 0))
		assertSameLine(t, pga.Line(1, 1, 0), crease)
		assertSameLine(t, pga.Line(0, 1, 0), geometry.Reflect(pga.Line(1, 0, 0), crease))
	})
	t.Run("parallel co-oriented", func(t *testing.T) {
		crease := Axiom3(pga.Line(0, 1, -1), pga.Line(0, 1, -3))
		assert.False(t, Degenerate(crease))
		assertSameLine(t, pga.Line(0, 1, -2), crease)
	})
	t.Run("same line opposite orientation", func(t *testing.T) {
		crease := Axiom3(pga.Line(0, 1, -1), pga.Line(0, -1, 1))
		assert.True(t, Degenerate(crease))
		assert.InDelta(t, 0, crease.Norm(), tol)
	})
}

func TestAxiom3Candidates(t *testing.T) {
	tests := []struct {
		name   string
		l0, l1 pga.Multivector
		want   []pga.Multivector
	}{
		{"crossing", pga.Line(1, 0, 0), pga.Line(0, 1, 0),
			[]pga.Multivector{pga.Line(1, 1, 0), pga.Line(1, -1, 0)}},
		{"oblique", pga.Line(1, 0, 0), pga.Line(1, 1, 0),
			[]pga.Multivector{pga.Line(0.92388, 0.382683, 0), pga.Line(0.382683, -0.92388, 0)}},
		{"parallel co-oriented", pga.Line(0, 1, -1), pga.Line(0, 1, -3),
			[]pga.Multivector{pga.Line(0, 1, -2)}},
		{"parallel opposite", pga.Line(0, 1, -1), pga.Line(0, -1, 3),
			[]pga.Multivector{pga.Line(0, 1, -2)}},
		{"same line opposite", pga.Line(0, 1, -1), pga.Line(0, -1, 1), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Axiom3Candidates(tt.l0, tt.l1)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assertSameLine(t, tt.want[i], got[i])
				// Every candidate folds l0 onto l1 as a set.
				folded := geometry.Reflect(tt.l0, got[i])
				assert.True(t, geometry.Parallel(folded, tt.l1, Epsilon))
			}
		})
	}
}

func TestAxiom4(t *testing.T) {
	tests := []struct {
		name string
		p, l pga.Multivector
		want pga.Multivector
	}{
		{"through (1,1) across x=0", pga.Point(1, 1), pga.Line(1, 0, 0), pga.Line(0, 1, -1)},
		{"point on line", pga.Point(0, 3), pga.Line(1, 0, 0), pga.Line(0, 1, -3)},
		{"oblique", pga.Point(0, 0), pga.Line(1, 1, -2), pga.Line(1, -1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crease := Axiom4(tt.p, tt.l)
			assertSameLine(t, tt.want, crease)
			assert.InDelta(t, math.Pi/2, geometry.Angle(crease, tt.l), 1e-9)
			assert.InDelta(t, 0, geometry.DistPointToLine(tt.p, crease), tol)
		})
	}
}

func TestAxiom5(t *testing.T) {
	tests := []struct {
		name      string
		p0, p1, l pga.Multivector
		want      []pga.Multivector
	}{
		{"vertical line", pga.Point(0, 0), pga.Point(4, 0), pga.Line(1, 0, -2),
			[]pga.Multivector{pga.Line(0.5, 0.866025, -2), pga.Line(0.5, -0.866025, -2)}},
		{"horizontal line", pga.Point(0, 0), pga.Point(4, 0), pga.Line(0, 1, -3),
			[]pga.Multivector{pga.Line(0.411438, 0.911438, -1.64575), pga.Line(0.911438, 0.411438, -3.64575)}},
		{"oblique line", pga.Point(1, 5), pga.Point(3, 1), pga.Line(1, 1, -1),
			[]pga.Multivector{pga.Line(-0.643579, -0.76538, 2.69612), pga.Line(0.368519, -0.92962, -0.175935)}},
		{"tangent", pga.Point(0, 0), pga.Point(4, 0), pga.Line(1, 0, -8),
			[]pga.Multivector{pga.Line(1, 0, -4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Axiom5Candidates(tt.p0, tt.p1, tt.l)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, crease := range got {
				assertSameLine(t, tt.want[i], crease)
				assertLands(t, tt.p0, crease, tt.l)
				assert.InDelta(t, 0, geometry.DistPointToLine(tt.p1, crease), 1e-9)

				folded := geometry.Reflect(tt.p0, crease)
				r := geometry.DistPointToPoint(tt.p0, tt.p1)
				assert.InDelta(t, r, geometry.DistPointToPoint(folded, tt.p1), 1e-9)
			}

			primary, err := Axiom5(tt.p0, tt.p1, tt.l)
			require.NoError(t, err)
			assert.Equal(t, got[0], primary)
		})
	}
}

func TestAxiom5PrimaryLandsOnLine(t *testing.T) {
	// (0,0) folds onto x = 2 at (2, 2*sqrt(3)) with the crease through (4,0).
	crease, err := Axiom5(pga.Point(0, 0), pga.Point(4, 0), pga.Line(1, 0, -2))
	require.NoError(t, err)

	folded := geometry.Oriented(geometry.Reflect(pga.Point(0, 0), crease))
	assert.InDelta(t, 2, folded.E20(), 1e-9)
	assert.InDelta(t, 2*math.Sqrt(3), folded.E01(), 1e-9)
	assert.InDelta(t, 4, geometry.DistPointToPoint(folded, pga.Point(4, 0)), 1e-9)
}

func TestAxiom5NoSolution(t *testing.T) {
	tests := []struct {
		name      string
		p0, p1, l pga.Multivector
	}{
		{"line beyond circle", pga.Point(0, 0), pga.Point(1, 0), pga.Line(1, 0, -5)},
		{"line behind circle", pga.Point(0, 0), pga.Point(1, 0), pga.Line(1, 0, 5)},
		{"p0 already tangent on line", pga.Point(2, 0), pga.Point(0, 0), pga.Line(1, 0, -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Axiom5(tt.p0, tt.p1, tt.l)
			assert.ErrorIs(t, err, ErrNoSolution)

			got, err := Axiom5Candidates(tt.p0, tt.p1, tt.l)
			assert.ErrorIs(t, err, ErrNoSolution)
			assert.Empty(t, got)
		})
	}
}

func TestAxiom5Property(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	solved := 0
	for i := 0; i < 500; i++ {
		p0 := pga.Point(rng.Float64()*10-5, rng.Float64()*10-5)
		p1 := pga.Point(rng.Float64()*10-5, rng.Float64()*10-5)
		l := pga.Line(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*10-5)

		r := geometry.DistPointToPoint(p0, p1)
		h := math.Abs(geometry.DistPointToLine(p1, l))

		crease, err := Axiom5(p0, p1, l)
		if h > r {
			assert.ErrorIs(t, err, ErrNoSolution)
			continue
		}
		if err != nil {
			continue
		}
		solved++
		assertLands(t, p0, crease, l)
	}
	assert.Positive(t, solved)
}

func TestAxiom6(t *testing.T) {
	crease, err := Axiom6(pga.Point(0, 0), pga.Point(1, 1), pga.Line(1, 0, -2), pga.Line(0, 1, -2))
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.NotErrorIs(t, err, ErrNoSolution)
	assert.Equal(t, pga.Zero(), crease)
}

func TestAxiom7(t *testing.T) {
	tests := []struct {
		name      string
		p, l0, l1 pga.Multivector
		want      pga.Multivector
	}{
		{"perpendicular lines", pga.Point(1, 1), pga.Line(1, 0, 0), pga.Line(0, 1, 0), pga.Line(1, 0, -0.5)},
		{"oblique lines", pga.Point(2, 3), pga.Line(1, 1, -1), pga.Line(1, -2, 0),
			pga.Line(-0.894427, -0.447214, 1.63978)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crease, err := Axiom7(tt.p, tt.l0, tt.l1)
			require.NoError(t, err)
			assertSameLine(t, tt.want, crease)
			assert.InDelta(t, math.Pi/2, geometry.Angle(crease, tt.l1), 1e-9)
			assertLands(t, tt.p, crease, tt.l0)
		})
	}
}

func TestAxiom7Parallel(t *testing.T) {
	tests := []struct {
		name   string
		l0, l1 pga.Multivector
	}{
		{"same orientation", pga.Line(1, 0, 0), pga.Line(1, 0, -3)},
		{"opposite orientation", pga.Line(1, 0, 0), pga.Line(-1, 0, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crease, err := Axiom7(pga.Point(1, 1), tt.l0, tt.l1)
			assert.ErrorIs(t, err, ErrNoSolution)
			assert.Equal(t, pga.Zero(), crease)
		})
	}
}
