// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to, creating missing
// endpoints on the fly.
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint in either orientation.
//  4. Generate eid, store the edge, link adjacency and its mirror.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid, seq := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, seq: seq}
	g.edges[eid] = e

	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge joins from and to (either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns all edges in insertion order.
// The returned pointers are live catalog entries; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID advances the edge counter and renders its textual ID.
// Caller must hold muEdgeAdj for writing.
func nextEdgeID(g *Graph) (string, uint64) {
	g.nextEdgeID++
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf), g.nextEdgeID
}
