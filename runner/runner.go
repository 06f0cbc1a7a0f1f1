// SPDX-License-Identifier: MIT
// Package: vertexcover/runner
//
// runner.go - Runner construction and the RunOne/RunAll modes.

package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/vertexcover/bfs"
	"github.com/katalvlaran/vertexcover/core"
	"github.com/katalvlaran/vertexcover/cover"
	"github.com/katalvlaran/vertexcover/dataset"
	"github.com/katalvlaran/vertexcover/internal/ctxlog"
	"github.com/katalvlaran/vertexcover/render"
)

var (
	// ErrNilLoader is returned by New without a Loader.
	ErrNilLoader = errors.New("runner: loader is nil")

	// ErrNoRenderer is returned when Visualize is requested but the Runner
	// was built without a Renderer.
	ErrNoRenderer = errors.New("runner: visualization requested without a renderer")

	// ErrCoverInvalid is returned when verification finds an uncovered edge.
	ErrCoverInvalid = errors.New("runner: cover leaves edges uncovered")
)

// Runner executes cover algorithms against loaded datasets.
type Runner struct {
	loader   dataset.Loader
	renderer render.Renderer
	now      func() time.Time
	newID    func() uuid.UUID
	solve    func(cover.Algorithm, cover.Graph, ...cover.Option) (cover.Result, error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces time.Now for report timestamps.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("WithClock(nil)")
	}
	return func(r *Runner) { r.now = now }
}

// WithIDGenerator replaces uuid.New for report IDs.
func WithIDGenerator(fn func() uuid.UUID) Option {
	if fn == nil {
		panic("WithIDGenerator(nil)")
	}
	return func(r *Runner) { r.newID = fn }
}

// New builds a Runner. renderer may be nil when no run visualizes.
func New(loader dataset.Loader, renderer render.Renderer, opts ...Option) (*Runner, error) {
	if loader == nil {
		return nil, ErrNilLoader
	}
	r := &Runner{
		loader:   loader,
		renderer: renderer,
		now:      time.Now,
		newID:    uuid.New,
		solve:    cover.Algorithm.Solve,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// RunOne runs req.Algorithm on req.Dataset.
func (r *Runner) RunOne(ctx context.Context, req Request) (*Report, error) {
	if !req.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: %v", cover.ErrUnsupportedAlgorithm, req.Algorithm)
	}

	return r.run(ctx, req, []cover.Algorithm{req.Algorithm})
}

// RunAll runs every algorithm in cover.Algorithms() order on req.Dataset,
// skipping Exact when req.ExcludeExact is set.
func (r *Runner) RunAll(ctx context.Context, req Request) (*Report, error) {
	algos := make([]cover.Algorithm, 0, len(cover.Algorithms()))
	for _, a := range cover.Algorithms() {
		if a == cover.Exact && req.ExcludeExact {
			continue
		}
		algos = append(algos, a)
	}

	return r.run(ctx, req, algos)
}

func (r *Runner) run(ctx context.Context, req Request, algos []cover.Algorithm) (*Report, error) {
	if req.Visualize && r.renderer == nil {
		return nil, ErrNoRenderer
	}
	if req.PlotPath == "" {
		req.PlotPath = "."
	}

	rep := &Report{
		RunID:     r.newID(),
		Dataset:   req.Dataset,
		StartedAt: r.now(),
	}
	logger := ctxlog.FromContext(ctx).With("run_id", rep.RunID.String())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Info("Run started", "dataset", req.Dataset, "algorithms", len(algos), "visualize", req.Visualize)

	g, err := r.loader.Load(ctx, req.Dataset)
	if err != nil {
		return nil, fmt.Errorf("runner: load %s: %w", req.Dataset, err)
	}
	rep.Nodes = g.VertexCount()
	rep.Edges = g.EdgeCount()
	rep.MaxDegree = cover.MaxDegree(g)
	if rep.Components, rep.Isolated, err = bfs.CountComponents(g, bfs.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("runner: components of %s: %w", req.Dataset, err)
	}
	logger.Debug("Graph ready", "nodes", rep.Nodes, "edges", rep.Edges,
		"max_degree", rep.MaxDegree, "components", rep.Components, "isolated", rep.Isolated)

	for _, a := range algos {
		row, err := r.runAlgorithm(ctx, g, a, req, rep.MaxDegree)
		if err != nil {
			return nil, err
		}
		rep.Rows = append(rep.Rows, row)
	}
	logger.Info("Run finished", "rows", len(rep.Rows))

	return rep, nil
}

func (r *Runner) runAlgorithm(ctx context.Context, g *core.Graph, a cover.Algorithm, req Request, maxDegree int) (Row, error) {
	logger := ctxlog.FromContext(ctx).With("algorithm", a.Code())

	res, err := r.solve(a, g, cover.WithContext(ctx), cover.WithTimeLimit(req.TimeLimit))
	if err != nil {
		return Row{}, fmt.Errorf("runner: %s: %w", a.Code(), err)
	}
	row := newRow(res, maxDegree)
	logger.Info("Cover computed", "size", row.CoverSize, "seconds", row.Seconds, "search_nodes", res.SearchNodes)

	if req.Verify {
		if missing := cover.Uncovered(g, res.Cover); len(missing) > 0 {
			e := missing[0]
			return Row{}, fmt.Errorf("%w: %s leaves %d edge(s) uncovered, first %s-%s",
				ErrCoverInvalid, a.Code(), len(missing), e.From, e.To)
		}
		row.Verified = true
	}

	if req.Visualize {
		path, err := r.renderer.Render(ctx, g, res, req.PlotPath)
		if err != nil {
			return Row{}, fmt.Errorf("runner: render %s: %w", a.Code(), err)
		}
		row.PlotFile = path
		logger.Info("Cover rendered", "path", path)
	}

	return row, nil
}
