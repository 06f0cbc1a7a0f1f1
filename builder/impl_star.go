// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Center vertex cfg.centerID first, then leaves idFn(1..n-1).
//   - Edges Center-leaf in leaf order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexcover/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one center and n-1
// leaves. Its minimum cover is the center alone.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := cfg.centerID
		if err := addVertex(g, methodStar, center); err != nil {
			return err
		}
		if err := place(g, cfg, methodStar, center, 0, 0); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addVertex(g, methodStar, leaf); err != nil {
				return err
			}
			x, y := ringPoint(i-1, n-1)
			if err := place(g, cfg, methodStar, leaf, x, y); err != nil {
				return err
			}
			if err := addEdge(g, methodStar, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
