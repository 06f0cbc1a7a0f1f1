// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_random_regular.go - RandomRegular(n, d) constructor.
//
// Model: configuration (stub-matching) model with bounded retries.
//   - Each vertex contributes d stubs; stubs are shuffled and paired in order.
//   - A pairing with a self-loop or a repeated pair is rejected as a whole.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   - cfg.rng required (else ErrNeedRandSource).
//   - After maxStubMatchingAttempts rejected pairings: ErrConstructFailed.
//   - Edges are emitted in pairing order.
//
// Complexity: O(n·d) per attempt; attempts are constant-bounded.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexcover/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that samples a simple d-regular graph.
// Any cover of it has at least n/2 nodes when d ≥ 1.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		pairs, ok := [][2]int(nil), len(stubs) == 0
		for attempt := 0; attempt < maxStubMatchingAttempts && !ok; attempt++ {
			pairs, ok = matchStubs(cfg, stubs)
		}
		if !ok {
			return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
				methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
		}

		if err := addRing(g, cfg, methodRandomRegular, n); err != nil {
			return err
		}
		for _, pr := range pairs {
			if err := addEdge(g, methodRandomRegular, cfg.idFn(pr[0]), cfg.idFn(pr[1])); err != nil {
				return err
			}
		}

		return nil
	}
}

// matchStubs shuffles stubs in place and pairs neighbours; ok is false when
// the pairing has a loop or a repeated pair.
func matchStubs(cfg builderConfig, stubs []int) (pairs [][2]int, ok bool) {
	cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

	seen := make(map[[2]int]struct{}, len(stubs)/2)
	pairs = make([][2]int, 0, len(stubs)/2)
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return nil, false
		}
		key := [2]int{min(u, v), max(u, v)}
		if _, dup := seen[key]; dup {
			return nil, false
		}
		seen[key] = struct{}{}
		pairs = append(pairs, [2]int{u, v})
	}

	return pairs, true
}
