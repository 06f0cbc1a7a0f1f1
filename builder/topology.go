// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// topology.go - name-based lookup of constructors for command-line use.

package builder

import (
	"fmt"
	"sort"
)

// Params carries the size knobs a named topology reads.
//   - N: vertex count (path, cycle, star, wheel, complete, random, regular),
//     rows (grid) or left side (bipartite).
//   - M: columns (grid) or right side (bipartite).
//   - P: edge probability (random).
//   - D: degree (regular).
type Params struct {
	N, M int
	P    float64
	D    int
}

var topologies = map[string]func(Params) Constructor{
	"path":      func(p Params) Constructor { return Path(p.N) },
	"cycle":     func(p Params) Constructor { return Cycle(p.N) },
	"star":      func(p Params) Constructor { return Star(p.N) },
	"wheel":     func(p Params) Constructor { return Wheel(p.N) },
	"complete":  func(p Params) Constructor { return Complete(p.N) },
	"bipartite": func(p Params) Constructor { return CompleteBipartite(p.N, p.M) },
	"grid":      func(p Params) Constructor { return Grid(p.N, p.M) },
	"random":    func(p Params) Constructor { return RandomSparse(p.N, p.P) },
	"regular":   func(p Params) Constructor { return RandomRegular(p.N, p.D) },
}

// Topologies returns the names ForTopology accepts, sorted.
func Topologies() []string {
	out := make([]string, 0, len(topologies))
	for name := range topologies {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// ForTopology returns the Constructor registered under name.
// Parameter validation happens when the Constructor runs.
func ForTopology(name string, p Params) (Constructor, error) {
	mk, ok := topologies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownTopology, name, Topologies())
	}

	return mk(p), nil
}
