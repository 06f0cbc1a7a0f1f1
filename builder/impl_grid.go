// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs "r,c" in row-major order (fixed scheme, idFn is not used).
//   - Per cell in row-major order: right edge, then bottom edge.
//   - Positions: (c, r) scaled by gridSpacing.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/vertexcover/core"
)

const (
	methodGrid  = "Grid"
	minGridDim  = 1
	gridSpacing = 10.0
)

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
// Grids are bipartite; a minimum cover has ⌊rows·cols/2⌋ nodes.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := addVertex(g, methodGrid, id); err != nil {
					return err
				}
				if err := place(g, cfg, methodGrid, id, float64(c)*gridSpacing, float64(r)*gridSpacing); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
