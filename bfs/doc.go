// Package bfs provides breadth-first search over a core.Graph and, built on
// it, connected-component discovery.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a
//     start vertex and returns a Result with the visit Order, the Depth of
//     every reached vertex and the Parent links of the BFS tree.
//   - Components partitions the vertex set into connected components.
//   - Hooks: OnVisit may abort the walk with an error; FilterNeighbor may
//     skip individual edges; MaxDepth bounds the walk.
//
// Why
//
//	The cover algorithms treat the graph as a whole, but their behaviour is
//	easiest to read per component: the optimum of a graph is the sum of the
//	optima of its components, and isolated vertices never enter a cover.
//	Run reports list the component count next to the node and edge counts.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in natural ID order and Components
//	seeds each walk from the smallest unvisited ID, so visit orders and the
//	component list are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d) (neighbor lists are sorted on every lookup)
//   - Memory: O(V)
//
// Cancellation
//
//	WithContext is checked once per dequeued vertex.
package bfs
