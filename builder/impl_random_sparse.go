// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n, p); every unordered pair {i, j}, i<j, is an edge
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0, 1}
//     is deterministic and draws nothing.
//   - Trial order: i asc, then j asc; one Float64 draw per pair.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexcover/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addRing(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, methodRandomSparse, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
