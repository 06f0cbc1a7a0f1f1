// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/SetVertexAttr/VertexAttrs,
//       Vertices/VertexCount and Degree.
// Determinism:
//   - Vertices() returns IDs in natural order (CompareIDs).
// Concurrency:
//   - Mutations under muVert write lock (adjacency bootstrap under muEdgeAdj).
//   - Read queries under read locks, muVert before muEdgeAdj.

package core

// AddVertex inserts a vertex if it does not exist yet.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // idempotent
	}
	g.vertices[id] = &Vertex{ID: id, Attrs: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// SetVertexAttr stores value under key on an existing vertex.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) SetVertexAttr(id, key string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Attrs[key] = value

	return nil
}

// VertexAttrs returns a copy of the attribute map of vertex id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(len(attrs)).
func (g *Graph) VertexAttrs(id string) (map[string]interface{}, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make(map[string]interface{}, len(v.Attrs))
	for k, val := range v.Attrs {
		out[k] = val
	}

	return out, nil
}

// Vertices returns all vertex IDs in natural order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}

	return SortIDs(ids)
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id.
// A self-loop (only possible with WithLoops) counts twice, as in classic theory.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	deg := 0
	for nbr, bucket := range g.adjacency[id] {
		if nbr == id {
			deg += 2 * len(bucket)
			continue
		}
		deg += len(bucket)
	}

	return deg, nil
}
