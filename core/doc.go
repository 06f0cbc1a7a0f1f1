// Package core provides the in-memory undirected simple Graph that every other
// vertexcover package reads from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted edges only.
//   - Simple by default: self-loops return ErrLoopNotAllowed and a second edge
//     between the same endpoints returns ErrMultiEdgeNotAllowed.
//   - WithLoops / WithMultiEdges relax those checks. They exist so fixtures can
//     build malformed inputs on purpose; the cover package rejects such graphs.
//   - Nested-map adjacency: adjacency[u][v][edgeID] = struct{}{}, mirrored for v→u.
//   - Edge IDs "e1", "e2", … follow insertion order.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Determinism:
//
//	Vertices() and NeighborIDs() return IDs in natural order (see CompareIDs):
//	integer IDs compare numerically, everything else lexicographically.
//	Edges() returns edges in insertion order. Every algorithm tie-break in
//	package cover is defined on top of these two orders.
//
// Core Methods:
//
//	AddVertex(id string) error                    // O(1)
//	SetVertexAttr(id, key string, v any) error    // O(1)
//	AddEdge(from, to string) (edgeID string, err) // O(1) amortized
//	HasVertex / HasEdge                           // O(1)
//	Vertices() []string                           // O(V log V)
//	Edges() []*Edge                               // O(E log E)
//	NeighborIDs(id) ([]string, error)             // O(d log d)
//	Degree(id) (int, error)                       // O(d)
//	Stats() *GraphStats                           // O(V+E)
//	Clone() *Graph                                // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
