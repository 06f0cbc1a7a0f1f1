// SPDX-License-Identifier: MIT
//
// File: exact.go
// Role: Branch-and-bound minimum vertex cover.
//
// Search:
//  1. Edges are sorted by (min index, max index); the branch edge is always
//     the smallest edge not yet covered, so a single cursor suffices.
//  2. At (u,v): branch (a) puts u in the cover, branch (b) puts v in it.
//     Every cover contains u or v, so the two branches are exhaustive.
//  3. Leaf: no uncovered edge left; record the partial cover if strictly
//     smaller than the incumbent.
//  4. Prune when |partial| ≥ best (NoBound) or when
//     |partial| + |greedy maximal matching of the uncovered edges| ≥ best
//     (MatchingBound). Matched edges are vertex-disjoint, each needs its own
//     node, so the bound is admissible.
//  5. Optional seeding: best starts at |Greedy2 cover| + 1. Only the size is
//     seeded, never the cover, so the returned cover is still the first
//     minimum cover in (u before v) order.
//  6. ctx is polled at every branch point.
//
// Complexity:
//   - O(2^k) search nodes for a cover of size k, O(E) work per node.
//   - Memory: O(V + E); recursion depth ≤ k.

package cover

import (
	"context"
	"errors"
	"sort"
)

// errSearchExhausted signals a search that finished without any cover, which
// can only happen if the seeded upper bound was wrong.
var errSearchExhausted = errors.New("cover: exact search exhausted without a cover")

// exactEngine holds all search data. A dedicated struct keeps the hot-path
// state explicit instead of captured by closures.
type exactEngine struct {
	ctx context.Context

	edges    [][2]int // sorted (lo, hi)
	useBound bool

	inCover []bool
	partial []int

	best     []int
	bestSize int
	found    bool

	// matching-bound scratch: mark[x] == epoch ⇒ x matched in this pass
	mark  []int
	epoch int

	steps int64
}

// ExactCover returns a minimum vertex cover of g.
//
// Errors:
//   - ErrGraphNil, ErrInvalidGraph for bad input.
//   - ErrOptionViolation for bad options.
//   - ErrTimeLimit (WithTimeLimit) or a wrapped context error (WithContext)
//     when the search is interrupted.
func ExactCover(g Graph, opts ...Option) (Result, error) {
	return run(Exact, g, opts, solveExact)
}

func solveExact(ctx context.Context, in *instance, o *Options) ([]int, int64, error) {
	n := in.n()
	e := &exactEngine{
		ctx:      ctx,
		edges:    make([][2]int, len(in.edges)),
		useBound: o.Bound == MatchingBound,
		inCover:  make([]bool, n),
		partial:  make([]int, 0, n),
		mark:     make([]int, n),
		bestSize: n + 1,
	}
	for i, ed := range in.edges {
		e.edges[i] = [2]int{min(ed[0], ed[1]), max(ed[0], ed[1])}
	}
	sort.Slice(e.edges, func(i, j int) bool {
		if e.edges[i][0] != e.edges[j][0] {
			return e.edges[i][0] < e.edges[j][0]
		}
		return e.edges[i][1] < e.edges[j][1]
	})

	if o.SeedUpperBound {
		e.bestSize = len(maximalMatching(in)) * 2 // Greedy2 cover size
		e.bestSize++
	}

	if err := e.dfs(0); err != nil {
		return nil, e.steps, err
	}
	if !e.found {
		return nil, e.steps, errSearchExhausted
	}

	return e.best, e.steps, nil
}

// covered reports whether edge i already has an endpoint in the partial cover.
func (e *exactEngine) covered(i int) bool {
	return e.inCover[e.edges[i][0]] || e.inCover[e.edges[i][1]]
}

// dfs explores the subtree whose smallest possibly-uncovered edge is at pos.
func (e *exactEngine) dfs(pos int) error {
	select {
	case <-e.ctx.Done():
		return e.ctx.Err()
	default:
	}
	e.steps++

	for pos < len(e.edges) && e.covered(pos) {
		pos++
	}
	k := len(e.partial)

	if pos == len(e.edges) {
		if k < e.bestSize {
			e.best = append(e.best[:0], e.partial...)
			e.bestSize = k
			e.found = true
		}
		return nil
	}

	if e.useBound {
		if k+e.matchingBound(pos) >= e.bestSize {
			return nil
		}
	} else if k >= e.bestSize {
		return nil
	}

	u, v := e.edges[pos][0], e.edges[pos][1]
	for _, x := range [2]int{u, v} {
		e.inCover[x] = true
		e.partial = append(e.partial, x)
		err := e.dfs(pos + 1)
		e.partial = e.partial[:k]
		e.inCover[x] = false
		if err != nil {
			return err
		}
	}

	return nil
}

// matchingBound greedily matches the uncovered edges from pos onward.
func (e *exactEngine) matchingBound(pos int) int {
	e.epoch++
	m := 0
	for i := pos; i < len(e.edges); i++ {
		u, v := e.edges[i][0], e.edges[i][1]
		if e.inCover[u] || e.inCover[v] {
			continue
		}
		if e.mark[u] == e.epoch || e.mark[v] == e.epoch {
			continue
		}
		e.mark[u], e.mark[v] = e.epoch, e.epoch
		m++
	}

	return m
}
