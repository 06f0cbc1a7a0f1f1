// Package cover computes vertex covers of an undirected simple graph: a subset
// of nodes touching every edge.
//
// What
//
//   - ExactCover: branch and bound, returns a minimum cover.
//   - Naive: first-edge/first-endpoint heuristic, no ratio guarantee.
//   - Greedy2: both endpoints of a maximal matching, |C| ≤ 2·OPT.
//   - GreedyLogN: repeatedly takes a max-degree node, |C| ≤ H(Δ)·OPT.
//
// Every algorithm has the same shape:
//
//	res, err := cover.ExactCover(g, opts...)
//	res.Cover   // sorted node IDs (natural order, see core.CompareIDs)
//	res.Elapsed // wall-clock time of validation + search
//
// and the closed Algorithm enumeration selects one of them by code:
//
//	a, err := cover.ParseAlgorithm("greedy-2")
//	res, err := a.Solve(g)
//
// Input
//
//	Algorithms read a Graph (Vertices + Edges; *core.Graph satisfies it) and
//	snapshot it into a dense index form before searching. Self-loops, duplicate
//	edges, empty IDs and edges that reference unknown nodes are rejected with
//	ErrInvalidGraph; no cover is produced for malformed input. An edgeless graph
//	is not an error: every algorithm returns an empty cover.
//
// Determinism
//
//   - Exact branches on the index-smallest uncovered edge (u,v), u before v,
//     and returns the first minimum cover met in that order.
//   - Naive takes the first uncovered edge in insertion order and its From endpoint.
//   - Greedy2 scans edges in insertion order.
//   - GreedyLogN breaks degree ties toward the lowest node in natural order.
//
// The exact cover is not canonical (e.g. lexicographically smallest); it is
// only stable across runs.
//
// Cancellation
//
//	Exact is exponential in the worst case (O(2^k) search nodes for a cover of
//	size k). WithContext and WithTimeLimit bound it: the context is polled at
//	every branch point and an interrupted search returns ErrTimeLimit or the
//	context error, never a partial cover.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - ExactCover: O(2^k · E) time, O(V + E) memory.
//   - Naive:      O(V log V + E).
//   - Greedy2:    O(V log V + E).
//   - GreedyLogN: O((V + E) log V).
package cover
