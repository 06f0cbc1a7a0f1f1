// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters, the Stats summary and Clone.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// Name returns the optional graph name set with WithName.
func (g *Graph) Name() string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.name
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int

	// MaxDegree is Δ, the largest vertex degree (0 for an edgeless graph).
	MaxDegree int

	// IsolatedCount is the number of vertices with degree 0.
	IsolatedCount int

	AllowsLoops bool
	AllowsMulti bool
}

// Stats returns a deterministic, read-only summary of g.
// Complexity: O(V+E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
	}
	for id := range g.vertices {
		deg := 0
		for nbr, bucket := range g.adjacency[id] {
			if nbr == id {
				deg += 2 * len(bucket)
				continue
			}
			deg += len(bucket)
		}
		if deg == 0 {
			stats.IsolatedCount++
		}
		if deg > stats.MaxDegree {
			stats.MaxDegree = deg
		}
	}

	return &stats
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Edge IDs and insertion order are preserved; Vertex.Attrs maps are copied shallowly.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		name:       g.name,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id, v := range g.vertices {
		attrs := make(map[string]interface{}, len(v.Attrs))
		for k, val := range v.Attrs {
			attrs[k] = val
		}
		clone.vertices[id] = &Vertex{ID: id, Attrs: attrs}
	}
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
	}
	for u, inner := range g.adjacency {
		ci := make(map[string]map[string]struct{}, len(inner))
		for v, bucket := range inner {
			cb := make(map[string]struct{}, len(bucket))
			for eid := range bucket {
				cb[eid] = struct{}{}
			}
			ci[v] = cb
		}
		clone.adjacency[u] = ci
	}

	return clone
}
