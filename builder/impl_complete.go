// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices idFn(0..n-1) on a circle; edges i-j for i<j, i then j ascending.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexcover/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n. Any n-1 of its vertices
// form a minimum cover.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		if err := addRing(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
