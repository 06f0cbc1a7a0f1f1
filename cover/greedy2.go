// SPDX-License-Identifier: MIT
//
// File: greedy2.go
// Role: 2-approximation via a greedy maximal matching.
//
// Why ≤ 2·OPT: matched edges are pairwise vertex-disjoint, so any cover needs
// a distinct node for each of them (OPT ≥ |M|); the algorithm takes 2·|M| nodes.
// Why a cover: an edge left unmatched had an already-matched endpoint when it
// was scanned, and matched endpoints are all in the cover.

package cover

import (
	"context"

	"github.com/katalvlaran/vertexcover/core"
)

// Greedy2 returns both endpoints of a maximal matching built by scanning
// edges in insertion order.
//
// Complexity: O(V log V + E).
func Greedy2(g Graph, opts ...Option) (Result, error) {
	return run(Greedy2Approx, g, opts, solveGreedy2)
}

func solveGreedy2(_ context.Context, in *instance, _ *Options) ([]int, int64, error) {
	matching := maximalMatching(in)
	out := make([]int, 0, 2*len(matching))
	for _, i := range matching {
		out = append(out, in.edges[i][0], in.edges[i][1])
	}

	return out, 0, nil
}

// maximalMatching scans in.edges in order and keeps every edge whose
// endpoints are both still free. It returns positions into in.edges.
func maximalMatching(in *instance) []int {
	matched := make([]bool, in.n())
	var out []int
	for i, e := range in.edges {
		if matched[e[0]] || matched[e[1]] {
			continue
		}
		matched[e[0]], matched[e[1]] = true, true
		out = append(out, i)
	}

	return out
}

// MaximalMatching returns the edges of the greedy maximal matching Greedy2
// uses, in scan order. Any vertex cover of g has at least len(result) nodes.
//
// Errors: ErrGraphNil, ErrInvalidGraph.
func MaximalMatching(g Graph) ([]*core.Edge, error) {
	in, err := newInstance(g)
	if err != nil {
		return nil, err
	}
	m := maximalMatching(in)
	out := make([]*core.Edge, len(m))
	for j, i := range m {
		out[j] = in.src[i]
	}

	return out, nil
}
