// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries and adjacency helpers.

package core

// NeighborIDs returns the unique neighbors of id in natural order.
// A self-loop lists id itself once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr, bucket := range g.adjacency[id] {
		if len(bucket) == 0 {
			continue
		}
		out = append(out, nbr)
	}

	return SortIDs(out), nil
}

// ensureAdjacency creates the nested buckets for u (and u→v when v is given).
// Caller must hold muEdgeAdj for writing.
func ensureAdjacency(g *Graph, u string, v ...string) {
	inner, ok := g.adjacency[u]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacency[u] = inner
	}
	for _, to := range v {
		if _, ok := inner[to]; !ok {
			inner[to] = make(map[string]struct{})
		}
	}
}
