// SPDX-License-Identifier: MIT
//
// File: greedylogn.go
// Role: Max-degree greedy cover, H(Δ)-approximation.
//
// Degree bookkeeping:
//   - deg[x] is the number of uncovered edges at x.
//   - Every node with deg > 0 sits in an ordered map keyed by (deg, index).
//     The comparator orders by degree ascending, then index DESCENDING, so
//     Max() yields the highest degree with the lowest index among ties.
//   - Taking x: remove its key, then for each neighbor y not in the cover
//     (edge x-y was uncovered) re-key y with deg[y]-1, dropping it at 0.
//
// Complexity: O((V + E) log V) time, O(V + E) space.

package cover

import (
	"context"

	"github.com/emirpasic/gods/maps/treemap"
)

// degreeKey orders nodes in the degree queue.
type degreeKey struct {
	deg int
	idx int
}

// degreeKeyComparator implements utils.Comparator for degreeKey.
func degreeKeyComparator(a, b interface{}) int {
	x, y := a.(degreeKey), b.(degreeKey)
	switch {
	case x.deg < y.deg:
		return -1
	case x.deg > y.deg:
		return 1
	case x.idx > y.idx:
		return -1
	case x.idx < y.idx:
		return 1
	default:
		return 0
	}
}

// GreedyLogN returns a cover built by repeatedly adding the node of maximum
// remaining degree (ties: lowest node in natural order) until no edge is
// uncovered. |C| ≤ H(Δ)·OPT where Δ is the maximum degree of g.
func GreedyLogN(g Graph, opts ...Option) (Result, error) {
	return run(GreedyLogNApprox, g, opts, solveGreedyLogN)
}

func solveGreedyLogN(_ context.Context, in *instance, _ *Options) ([]int, int64, error) {
	n := in.n()
	deg := make([]int, n)
	queue := treemap.NewWith(degreeKeyComparator)
	for x := 0; x < n; x++ {
		deg[x] = len(in.adj[x])
		if deg[x] > 0 {
			queue.Put(degreeKey{deg: deg[x], idx: x}, x)
		}
	}

	inCover := make([]bool, n)
	out := make([]int, 0)
	for !queue.Empty() {
		k, _ := queue.Max()
		top := k.(degreeKey)
		queue.Remove(top)

		x := top.idx
		inCover[x] = true
		out = append(out, x)
		for _, y := range in.adj[x] {
			if inCover[y] {
				continue
			}
			queue.Remove(degreeKey{deg: deg[y], idx: y})
			deg[y]--
			if deg[y] > 0 {
				queue.Put(degreeKey{deg: deg[y], idx: y}, y)
			}
		}
		deg[x] = 0
	}

	return out, 0, nil
}
