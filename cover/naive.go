// SPDX-License-Identifier: MIT

package cover

import "context"

// Naive returns a vertex cover built by repeatedly taking the first uncovered
// edge in insertion order and adding its From endpoint.
//
// It is a correctness-only baseline: the cover is always valid but its size
// has no bound relative to the optimum (a star entered leaf-first yields all
// leaves instead of the center).
//
// Complexity: O(V log V + E).
func Naive(g Graph, opts ...Option) (Result, error) {
	return run(NaiveApprox, g, opts, solveNaive)
}

func solveNaive(_ context.Context, in *instance, _ *Options) ([]int, int64, error) {
	inCover := make([]bool, in.n())
	out := make([]int, 0)
	for _, e := range in.edges {
		if inCover[e[0]] || inCover[e[1]] {
			continue
		}
		// Taking e[0] removes every edge incident to it; later edges touching
		// it are skipped by the check above.
		inCover[e[0]] = true
		out = append(out, e[0])
	}

	return out, 0, nil
}
