// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scenario loads fold scenarios from YAML.
//
// A scenario names a sheet of paper and a list of folds to try on it:
//
//	paper: {width: 10, height: 10}
//	folds:
//	  - name: diagonal
//	    axiom: 1
//	    points: [[0, 0], [10, 10]]
//	  - axiom: 5
//	    points: [[0, 0], [4, 0]]
//	    lines: [[1, 0, -2]]
//	    candidates: true
//
// The paper may instead list four corners as [[x, y], ...] in order.
// Numbers may be written as integers, floats or quoted strings.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/origami"
)

// ErrInvalid is returned, wrapped with detail, for malformed scenarios.
var ErrInvalid = errors.New("scenario: invalid")

// Scenario is a validated scenario.
type Scenario struct {
	Paper origami.Paper
	Folds []Fold
}

// Fold is one fold of a scenario.
type Fold struct {
	Name       string
	Request    origami.Request
	Candidates bool
}

// document mirrors the YAML layout. Scalars are decoded loosely and
// converted with cast.
type document struct {
	Paper paperDoc  `yaml:"paper"`
	Folds []foldDoc `yaml:"folds"`
}

type paperDoc struct {
	Width   any     `yaml:"width"`
	Height  any     `yaml:"height"`
	Corners [][]any `yaml:"corners"`
}

type foldDoc struct {
	Name       string  `yaml:"name"`
	Axiom      any     `yaml:"axiom"`
	Points     [][]any `yaml:"points"`
	Lines      [][]any `yaml:"lines"`
	Candidates bool    `yaml:"candidates"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scenario: open: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Parse(f)
}

// Parse reads and validates a scenario from r. Unknown keys are rejected.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	paper, err := doc.Paper.resolve()
	if err != nil {
		return nil, err
	}
	if len(doc.Folds) == 0 {
		return nil, fmt.Errorf("%w: no folds", ErrInvalid)
	}

	s := &Scenario{Paper: paper, Folds: make([]Fold, 0, len(doc.Folds))}
	for i, fd := range doc.Folds {
		fold, err := fd.resolve(i)
		if err != nil {
			return nil, err
		}
		s.Folds = append(s.Folds, fold)
	}
	return s, nil
}

func (p paperDoc) resolve() (origami.Paper, error) {
	if len(p.Corners) > 0 {
		if p.Width != nil || p.Height != nil {
			return origami.Paper{}, fmt.Errorf("%w: paper has both size and corners", ErrInvalid)
		}
		if len(p.Corners) != 4 {
			return origami.Paper{}, fmt.Errorf("%w: paper needs 4 corners, got %d", ErrInvalid, len(p.Corners))
		}
		pts, err := points(p.Corners, "paper corner")
		if err != nil {
			return origami.Paper{}, err
		}
		return origami.NewPaperFromCorners(pts[0], pts[1], pts[2], pts[3]), nil
	}

	w, err := number(p.Width, "paper width")
	if err != nil {
		return origami.Paper{}, err
	}
	h, err := number(p.Height, "paper height")
	if err != nil {
		return origami.Paper{}, err
	}
	if w <= 0 || h <= 0 {
		return origami.Paper{}, fmt.Errorf("%w: paper size %gx%g must be positive", ErrInvalid, w, h)
	}
	return origami.NewPaper(w, h), nil
}

func (f foldDoc) resolve(i int) (Fold, error) {
	name := f.Name
	if name == "" {
		name = fmt.Sprintf("fold %d", i+1)
	}

	if _, ok := f.Axiom.(bool); ok {
		return Fold{}, fmt.Errorf("%w: %s: axiom %v is not an integer", ErrInvalid, name, f.Axiom)
	}
	n, err := cast.ToFloat64E(f.Axiom)
	if err != nil || f.Axiom == nil || n != math.Trunc(n) {
		return Fold{}, fmt.Errorf("%w: %s: axiom %v is not an integer", ErrInvalid, name, f.Axiom)
	}
	pts, err := points(f.Points, name+": point")
	if err != nil {
		return Fold{}, err
	}
	lines, err := lineList(f.Lines, name+": line")
	if err != nil {
		return Fold{}, err
	}

	req := origami.Request{Axiom: int(n), Points: pts, Lines: lines}
	if err := req.Validate(); err != nil {
		return Fold{}, fmt.Errorf("%w: %s: %w", ErrInvalid, name, err)
	}
	return Fold{Name: name, Request: req, Candidates: f.Candidates}, nil
}

func points(raw [][]any, what string) ([]origami.Point, error) {
	var out []origami.Point
	for i, xy := range raw {
		v, err := numbers(xy, 2, fmt.Sprintf("%s %d", what, i+1))
		if err != nil {
			return nil, err
		}
		out = append(out, origami.Pt(v[0], v[1]))
	}
	return out, nil
}

func lineList(raw [][]any, what string) ([]origami.Line, error) {
	var out []origami.Line
	for i, abc := range raw {
		v, err := numbers(abc, 3, fmt.Sprintf("%s %d", what, i+1))
		if err != nil {
			return nil, err
		}
		out = append(out, origami.Line{A: v[0], B: v[1], C: v[2]})
	}
	return out, nil
}

func numbers(raw []any, n int, what string) ([]float32, error) {
	if len(raw) != n {
		return nil, fmt.Errorf("%w: %s needs %d numbers, got %d", ErrInvalid, what, n, len(raw))
	}
	out := make([]float32, n)
	for i, v := range raw {
		f, err := number(v, what)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func number(v any, what string) (float32, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: %s is missing", ErrInvalid, what)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalid, what, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxFloat32 {
		return 0, fmt.Errorf("%w: %s is not a finite float32", ErrInvalid, what)
	}
	return float32(f), nil
}
