// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// helpers.go - shared vertex/edge insertion with uniform error context.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vertexcover/core"
)

// ringRadius scales circular layouts; renderers rescale to their viewport.
const ringRadius = 100.0

// addVertex inserts id into g, wrapping failures with the constructor name.
func addVertex(g *core.Graph, method, id string) error {
	if err := g.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return nil
}

// addEdge inserts the undirected edge u-v into g.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}

// place stores (x, y) on id when cfg.positions is set.
func place(g *core.Graph, cfg builderConfig, method, id string, x, y float64) error {
	if !cfg.positions {
		return nil
	}
	if err := g.SetVertexAttr(id, "x", x); err != nil {
		return fmt.Errorf("%s: position %s: %w", method, id, err)
	}
	if err := g.SetVertexAttr(id, "y", y); err != nil {
		return fmt.Errorf("%s: position %s: %w", method, id, err)
	}

	return nil
}

// ringPoint returns the position of slot i of n on a circle, slot 0 at the top.
func ringPoint(i, n int) (x, y float64) {
	theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

	return ringRadius * math.Cos(theta), ringRadius * math.Sin(theta)
}

// addRing adds vertices idFn(0..n-1), placed on a circle.
func addRing(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := addVertex(g, method, id); err != nil {
			return err
		}
		x, y := ringPoint(i, n)
		if err := place(g, cfg, method, id, x, y); err != nil {
			return err
		}
	}

	return nil
}
