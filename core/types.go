// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// Attrs carries optional per-node data read by loaders and renderers
// ("x", "y", "label"). It is copied shallowly by Clone.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attrs stores arbitrary user data.
	Attrs map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
// From and To keep the order in which the endpoints were supplied to AddEdge;
// the cover heuristics rely on that order for their tie-breaks.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as supplied.
	From string

	// To is the second endpoint as supplied.
	To string

	seq uint64 // insertion sequence, drives Edges() order
}

// Other returns the endpoint of e that is not id.
// For a self-loop, or when id is not an endpoint, it returns From.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithName attaches a human-readable name (typically the dataset path).
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is the core in-memory undirected graph.
//
// muVert protects vertices; muEdgeAdj protects edges, adjacency and nextEdgeID.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	name       string

	// Storage
	nextEdgeID uint64             // edge ID generator, guarded by muEdgeAdj
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v][edgeID] = struct{}{}; undirected edges are mirrored.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is simple: no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
