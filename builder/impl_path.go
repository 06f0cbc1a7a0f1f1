// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices idFn(0..n-1); edges (i-1)-i for i=1..n-1 in increasing order.
//   - Positions: evenly spaced on the x axis.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexcover/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
	pathSpacing  = 10.0
)

// Path returns a Constructor that builds a simple path P_n.
// A minimum cover of P_n has ⌊n/2⌋ nodes.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := addVertex(g, methodPath, id); err != nil {
				return err
			}
			if err := place(g, cfg, methodPath, id, float64(i)*pathSpacing, 0); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
