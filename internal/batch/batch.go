// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package batch solves many fold requests against one sheet of paper.
//
// A Runner fans jobs out over a bounded number of goroutines and memoizes
// the outcome of each distinct request, so repeated folds in a scenario are
// solved once. Solver failures are reported per job; only cancellation
// fails a whole run.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/origami"
)

// Job is one request to solve.
type Job struct {
	Request origami.Request

	// Candidates lists every crease the request admits instead of only
	// the primary one.
	Candidates bool
}

func (j Job) key() string {
	if j.Candidates {
		return j.Request.String() + " candidates"
	}
	return j.Request.String()
}

// Result is the outcome of one Job.
type Result struct {
	Index int
	Job   Job

	// Creases holds the primary crease first. It is empty when Err is set.
	Creases []origami.Line

	// Fold is the paper folded along the primary crease.
	Fold origami.FoldResult

	// Err is a *RequestError when the job failed.
	Err error

	// Cached reports whether the outcome came from the memo.
	Cached bool
}

// RequestError reports which job of a batch failed.
type RequestError struct {
	Index int
	Err   error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("batch: request %d: %v", e.Index, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// outcome is the memoized part of a Result.
type outcome struct {
	creases []origami.Line
	fold    origami.FoldResult
	err     error
}

// Runner solves batches of jobs. It is safe for concurrent use.
type Runner struct {
	paper   origami.Paper
	workers int
	ttl     time.Duration
	memo    *cache.Cache
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of jobs solved at once. The default is
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithTTL expires memoized outcomes after d. By default they never expire.
func WithTTL(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.ttl = d
		}
	}
}

// New returns a Runner that folds paper.
func New(paper origami.Paper, opts ...Option) *Runner {
	r := &Runner{
		paper:   paper,
		workers: runtime.GOMAXPROCS(0),
		ttl:     cache.NoExpiration,
	}
	for _, opt := range opts {
		opt(r)
	}
	cleanup := time.Duration(0)
	if r.ttl > 0 {
		cleanup = 2 * r.ttl
	}
	r.memo = cache.New(r.ttl, cleanup)
	return r
}

// Run solves jobs and returns one Result per job, in job order. It returns
// an error only when ctx is canceled before every job has been solved.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, job := range jobs {
		i, job := i, job
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.solve(i, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Memoized returns the number of distinct outcomes held in the memo.
func (r *Runner) Memoized() int {
	return r.memo.ItemCount()
}

func (r *Runner) solve(i int, job Job) Result {
	res := Result{Index: i, Job: job}

	key := job.key()
	var out outcome
	if v, ok := r.memo.Get(key); ok {
		out = v.(outcome)
		res.Cached = true
	} else {
		out = r.compute(job)
		r.memo.Set(key, out, cache.DefaultExpiration)
	}

	if out.err != nil {
		res.Err = &RequestError{Index: i, Err: out.err}
		origami.Logger().Debug("batch: request failed", "index", i, "request", key, "err", out.err)
		return res
	}
	// The memo keeps its own slices; callers may modify what they get.
	res.Creases = slices.Clone(out.creases)
	res.Fold = out.fold
	res.Fold.Positive = slices.Clone(out.fold.Positive)
	res.Fold.Negative = slices.Clone(out.fold.Negative)
	origami.Logger().Debug("batch: request solved", "index", i, "cached", res.Cached)
	return res
}

func (r *Runner) compute(job Job) outcome {
	var (
		creases []origami.Line
		err     error
	)
	if job.Candidates {
		creases, err = origami.Candidates(job.Request)
	} else {
		var l origami.Line
		l, err = origami.Solve(job.Request)
		creases = []origami.Line{l}
	}
	if err != nil {
		return outcome{err: err}
	}

	fold, err := r.paper.Fold(creases[0])
	if err != nil {
		return outcome{err: err}
	}
	return outcome{creases: creases, fold: fold}
}
