package bfs

import (
	"github.com/katalvlaran/vertexcover/core"
)

// Components returns the connected components of g. Each component lists
// its vertices in BFS order from its smallest ID; components are ordered by
// that smallest ID. MaxDepth and FilterNeighbor apply to every walk, so a
// filter that drops edges splits components accordingly.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	ids := g.Vertices()
	visited := make(map[string]bool, len(ids))
	var out [][]string
	for _, id := range ids {
		if visited[id] {
			continue
		}
		w := newWalker(g, o, visited)
		w.enqueue(id, 0, "")
		if err := w.loop(); err != nil {
			return nil, err
		}
		out = append(out, w.res.Order)
	}

	return out, nil
}

// CountComponents returns the number of connected components of g and how
// many of them are single isolated vertices.
func CountComponents(g *core.Graph, opts ...Option) (components, isolated int, err error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return 0, 0, err
	}
	for _, c := range comps {
		if len(c) == 1 {
			isolated++
		}
	}
	return len(comps), isolated, nil
}
