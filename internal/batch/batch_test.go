// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/origami"
)

func diagonal() Job {
	return Job{Request: origami.Request{Axiom: 1, Points: []origami.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}}}
}

func TestRunPreservesOrder(t *testing.T) {
	jobs := []Job{
		diagonal(),
		{Request: origami.Request{Axiom: 4, Points: []origami.Point{{X: 1, Y: 1}}, Lines: []origami.Line{{A: 1}}}},
		{Request: origami.Request{Axiom: 2, Points: []origami.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}},
		{Request: origami.Request{Axiom: 5, Points: []origami.Point{{X: 0, Y: 0}, {X: 4, Y: 0}}, Lines: []origami.Line{{A: 1, C: -2}}}, Candidates: true},
	}
	r := New(origami.NewPaper(10, 10), WithWorkers(3))

	results, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, jobs[i], res.Job)
		require.NoError(t, res.Err)
		require.NotEmpty(t, res.Creases)
		assert.Equal(t, res.Creases[0], res.Fold.Crease)
	}
	assert.Len(t, results[3].Creases, 2)

	want, err := origami.Solve(jobs[2].Request)
	require.NoError(t, err)
	assert.Equal(t, want, results[2].Creases[0])
}

func TestRunMemoizes(t *testing.T) {
	r := New(origami.NewPaper(10, 10), WithWorkers(1))
	jobs := []Job{diagonal(), diagonal(), diagonal()}
	jobs[2].Candidates = true

	results, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)

	assert.False(t, results[0].Cached)
	assert.True(t, results[1].Cached)
	assert.False(t, results[2].Cached, "candidate listing is a distinct job")
	assert.Equal(t, results[0].Creases, results[1].Creases)
	assert.Equal(t, 2, r.Memoized())

	again, err := r.Run(context.Background(), jobs[:1])
	require.NoError(t, err)
	assert.True(t, again[0].Cached)
}

func TestRunResultsDoNotShareMemo(t *testing.T) {
	r := New(origami.NewPaper(10, 10), WithWorkers(1))
	first, err := r.Run(context.Background(), []Job{diagonal()})
	require.NoError(t, err)
	want, err := r.Run(context.Background(), []Job{diagonal()})
	require.NoError(t, err)

	first[0].Creases[0] = origami.Line{}
	first[0].Fold.Positive[0] = origami.Pt(-99, -99)
	first[0].Fold.Negative[0] = origami.Pt(-99, -99)

	again, err := r.Run(context.Background(), []Job{diagonal()})
	require.NoError(t, err)
	assert.True(t, again[0].Cached)
	assert.Equal(t, want[0].Creases, again[0].Creases)
	assert.Equal(t, want[0].Fold, again[0].Fold)

	again[0].Fold.Positive[0] = origami.Pt(42, 42)
	assert.NotEqual(t, again[0].Fold.Positive[0], want[0].Fold.Positive[0])
}

func TestRunReportsRequestErrors(t *testing.T) {
	jobs := []Job{
		diagonal(),
		{Request: origami.Request{Axiom: 7, Points: []origami.Point{{X: 1, Y: 1}}, Lines: []origami.Line{{A: 1}, {A: 1, C: -3}}}},
		{Request: origami.Request{Axiom: 6}},
	}
	results, err := New(origami.NewPaper(10, 10)).Run(context.Background(), jobs)
	require.NoError(t, err)

	assert.NoError(t, results[0].Err)

	var reqErr *RequestError
	require.ErrorAs(t, results[1].Err, &reqErr)
	assert.Equal(t, 1, reqErr.Index)
	assert.ErrorIs(t, results[1].Err, origami.ErrNoSolution)
	assert.Empty(t, results[1].Creases)

	assert.ErrorIs(t, results[2].Err, origami.ErrInvalidRequest)
	assert.Contains(t, results[2].Err.Error(), "batch: request 2")
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := New(origami.NewPaper(1, 1)).Run(ctx, []Job{diagonal(), diagonal()})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.Nil(t, results)
}

func TestRunEmpty(t *testing.T) {
	results, err := New(origami.NewPaper(1, 1)).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestOptions(t *testing.T) {
	r := New(origami.NewPaper(1, 1), WithWorkers(0), WithTTL(-time.Second))
	assert.Positive(t, r.workers)
	assert.Equal(t, time.Duration(-1), r.ttl)

	r = New(origami.NewPaper(1, 1), WithWorkers(2), WithTTL(time.Minute))
	assert.Equal(t, 2, r.workers)
	assert.Equal(t, time.Minute, r.ttl)
}
