// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_wheel.go - Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); rim is C_{n-1}.
//   - Rim built by Cycle(n-1), then center cfg.centerID, then spokes Center-rim(i).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexcover/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n: a cycle on n-1 rim vertices
// plus a center joined to each of them.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}

		center := cfg.centerID
		if err := addVertex(g, methodWheel, center); err != nil {
			return err
		}
		if err := place(g, cfg, methodWheel, center, 0, 0); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
