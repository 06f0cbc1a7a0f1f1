// SPDX-License-Identifier: MIT
//
// File: instance.go
// Role: Validation and dense snapshot of a Graph, plus the shared run wrapper
//       that times every algorithm.
// Policy:
//   - Nodes are indexed in natural order; index order IS the tie-break order.
//   - Edges keep their insertion order and the (From, To) orientation.
//   - Malformed input is rejected here, before any algorithm runs.

package cover

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/vertexcover/core"
)

// instance is the dense, validated snapshot an algorithm works on.
type instance struct {
	ids   []string       // index → node ID, natural order
	index map[string]int // node ID → index
	edges [][2]int       // insertion order, (From, To)
	src   []*core.Edge   // src[i] is the edge edges[i] came from
	adj   [][]int        // index → neighbor indices, ascending
}

// newInstance validates g and builds its snapshot.
// Complexity: O(V log V + E log E) time, O(V + E) space.
func newInstance(g Graph) (*instance, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return nil, ErrGraphNil
	}

	ids := core.SortIDs(append([]string(nil), g.Vertices()...))
	in := &instance{
		ids:   ids,
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%w: empty node ID", ErrInvalidGraph)
		}
		if _, dup := in.index[id]; dup {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrInvalidGraph, id)
		}
		in.index[id] = i
	}

	edges := g.Edges()
	in.edges = make([][2]int, 0, len(edges))
	in.src = make([]*core.Edge, 0, len(edges))
	in.adj = make([][]int, len(ids))
	seen := make(map[[2]int]string, len(edges))
	for _, e := range edges {
		if e == nil {
			return nil, fmt.Errorf("%w: nil edge", ErrInvalidGraph)
		}
		u, okU := in.index[e.From]
		v, okV := in.index[e.To]
		switch {
		case !okU:
			return nil, fmt.Errorf("%w: edge %s references unknown node %q", ErrInvalidGraph, e.ID, e.From)
		case !okV:
			return nil, fmt.Errorf("%w: edge %s references unknown node %q", ErrInvalidGraph, e.ID, e.To)
		case u == v:
			return nil, fmt.Errorf("%w: self-loop on %q (edge %s)", ErrInvalidGraph, e.From, e.ID)
		}
		key := [2]int{min(u, v), max(u, v)}
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate edge %s-%s (edges %s and %s)", ErrInvalidGraph, e.From, e.To, prev, e.ID)
		}
		seen[key] = e.ID
		in.edges = append(in.edges, [2]int{u, v})
		in.src = append(in.src, e)
		in.adj[u] = append(in.adj[u], v)
		in.adj[v] = append(in.adj[v], u)
	}
	for _, nbrs := range in.adj {
		sort.Ints(nbrs)
	}

	return in, nil
}

// n returns the node count.
func (in *instance) n() int { return len(in.ids) }

// cover converts node indices into a Cover in natural order.
func (in *instance) cover(idx []int) Cover {
	sorted := append([]int(nil), idx...)
	sort.Ints(sorted)
	out := make(Cover, len(sorted))
	for i, x := range sorted {
		out[i] = in.ids[x]
	}

	return out
}

// solver is the per-algorithm search over a validated instance.
type solver func(ctx context.Context, in *instance, o *Options) (idx []int, searchNodes int64, err error)

// run resolves options, validates and snapshots g, runs solve and times it all.
// No Result is returned alongside an error.
func run(a Algorithm, g Graph, opts []Option, solve solver) (Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, err
	}

	ctx := o.Ctx
	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.TimeLimit)
		defer cancel()
	}
	if err = ctx.Err(); err != nil {
		return Result{}, interrupted(a, o, err)
	}

	start := time.Now()
	in, err := newInstance(g)
	if err != nil {
		return Result{}, err
	}
	idx, nodes, err := solve(ctx, in, &o)
	if err != nil {
		return Result{}, interrupted(a, o, err)
	}

	return Result{
		Algorithm:   a,
		Cover:       in.cover(idx),
		Elapsed:     time.Since(start),
		SearchNodes: nodes,
	}, nil
}

// interrupted maps context errors to ErrTimeLimit when the budget came from WithTimeLimit.
func interrupted(a Algorithm, o Options, err error) error {
	if o.TimeLimit > 0 && errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w (%s): %w", a.Code(), ErrTimeLimit, o.TimeLimit, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: search interrupted: %w", a.Code(), err)
	}

	return err
}
