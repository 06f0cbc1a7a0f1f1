// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph input contract, Cover/Result values, functional options and sentinel errors.

package cover

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/vertexcover/core"
)

// Sentinel errors for cover computation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("cover: graph is nil")

	// ErrInvalidGraph is returned for self-loops, duplicate edges, empty IDs or
	// edges referencing unknown nodes.
	ErrInvalidGraph = errors.New("cover: invalid graph")

	// ErrUnsupportedAlgorithm is returned for an unknown algorithm selector.
	ErrUnsupportedAlgorithm = errors.New("cover: unsupported algorithm")

	// ErrTimeLimit is returned when the WithTimeLimit budget expires before Exact finishes.
	ErrTimeLimit = errors.New("cover: time limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cover: invalid option supplied")
)

// Graph is the read-only view an algorithm needs. *core.Graph satisfies it.
type Graph interface {
	// Vertices returns every node ID.
	Vertices() []string

	// Edges returns every edge; the slice order is the insertion order the
	// heuristics scan in.
	Edges() []*core.Edge
}

// Cover is a set of node IDs, sorted in natural order (core.CompareIDs).
type Cover []string

// Len returns the cover size.
func (c Cover) Len() int { return len(c) }

// Contains reports whether id is in the cover. O(log n).
func (c Cover) Contains(id string) bool {
	i := sort.Search(len(c), func(i int) bool { return core.CompareIDs(c[i], id) >= 0 })

	return i < len(c) && c[i] == id
}

// Set returns the cover as a membership map.
func (c Cover) Set() map[string]struct{} {
	out := make(map[string]struct{}, len(c))
	for _, id := range c {
		out[id] = struct{}{}
	}

	return out
}

// Result is the outcome of one algorithm call.
type Result struct {
	// Algorithm that produced the cover.
	Algorithm Algorithm

	// Cover holds the chosen nodes in natural order.
	Cover Cover

	// Elapsed is the wall-clock time of validation plus search.
	Elapsed time.Duration

	// SearchNodes counts branch-and-bound nodes visited (Exact only).
	SearchNodes int64
}

// Size returns the number of nodes in the cover.
func (r Result) Size() int { return len(r.Cover) }

// Seconds returns Elapsed in seconds.
func (r Result) Seconds() float64 { return r.Elapsed.Seconds() }

// BoundKind selects the lower bound Exact prunes with.
type BoundKind int

const (
	// MatchingBound prunes with |partial| + |greedy matching of remaining edges|.
	MatchingBound BoundKind = iota
	// NoBound prunes only when |partial| ≥ |best| (testing and benchmarking).
	NoBound
)

// Option configures an algorithm call via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of one call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// TimeLimit, if > 0, bounds the Exact search.
	TimeLimit time.Duration

	// Bound selects the Exact pruning bound.
	Bound BoundKind

	// SeedUpperBound starts Exact from the Greedy2 size instead of |V|.
	SeedUpperBound bool

	err error
}

// DefaultOptions returns background context, no time limit, MatchingBound and
// upper-bound seeding enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Bound:          MatchingBound,
		SeedUpperBound: true,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit bounds the Exact search. d == 0 means no limit; d < 0 is invalid.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: time limit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithBound selects the Exact pruning bound.
func WithBound(b BoundKind) Option {
	return func(o *Options) {
		switch b {
		case MatchingBound, NoBound:
			o.Bound = b
		default:
			o.err = fmt.Errorf("%w: unknown bound kind %d", ErrOptionViolation, b)
		}
	}
}

// WithUpperBoundSeed toggles seeding Exact with the Greedy2 cover size.
func WithUpperBoundSeed(enabled bool) Option {
	return func(o *Options) { o.SeedUpperBound = enabled }
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
