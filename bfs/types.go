package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS and Components.
var (
	// ErrStartVertexNotFound: the start ID is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option was given an out-of-range value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors: the graph failed to list a vertex's neighbors.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option adjusts a walk. A bad value is remembered and reported as
// ErrOptionViolation by the call that received it.
type Option func(*Options)

// Options is the resolved walk configuration.
type Options struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// OnVisit sees every vertex in visit order with its depth; an error
	// stops the walk and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 keeps the walk within that many edges of the start.
	MaxDepth int

	// FilterNeighbor returning false hides the edge curr-neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering
// and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext makes the walk stop when ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook. nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the walk to depth d; 0 lifts the bound and a
// negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge filter. nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.err
}

// Result is one walk: the visit Order, each reached vertex's Depth in edges
// and its Parent in the BFS tree (the start has none).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo returns the tree path start..dest, or an error when dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: %q not reached", dest)
	}
	path := make([]string, r.Depth[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
