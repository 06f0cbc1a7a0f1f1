// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs leftPrefix+0..n1-1, then right IDs rightPrefix+0..n2-1.
//   - Edges L_i-R_j for i asc, j asc.
//   - Positions: left column at x=0, right column at x=ringRadius.
//
// Complexity: O(n1·n2) time, O(n1+n2) extra space.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/vertexcover/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
	partitionSpacing        = 10.0
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}. By König's
// theorem its minimum cover is the smaller side.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := make([]string, n1)
		right := make([]string, n2)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
		}
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
		}

		for side, ids := range [2][]string{left, right} {
			for i, id := range ids {
				if err := addVertex(g, methodCompleteBipartite, id); err != nil {
					return err
				}
				err := place(g, cfg, methodCompleteBipartite, id, float64(side)*ringRadius, float64(i)*partitionSpacing)
				if err != nil {
					return err
				}
			}
		}

		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
