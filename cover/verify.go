// SPDX-License-Identifier: MIT
//
// File: verify.go
// Role: Checks on computed covers and the quantities the ratio bounds use.

package cover

import "github.com/katalvlaran/vertexcover/core"

// IsCover reports whether every edge of g has at least one endpoint in c.
// Nodes of c that are not in g are ignored.
func IsCover(g Graph, c Cover) bool {
	return len(Uncovered(g, c)) == 0
}

// Uncovered returns the edges of g with neither endpoint in c, in insertion order.
func Uncovered(g Graph, c Cover) []*core.Edge {
	if g == nil {
		return nil
	}
	set := c.Set()
	var out []*core.Edge
	for _, e := range g.Edges() {
		if e == nil {
			continue
		}
		_, a := set[e.From]
		_, b := set[e.To]
		if !a && !b {
			out = append(out, e)
		}
	}

	return out
}

// IsMinimal reports whether c is a cover of g from which no single node can be
// removed without uncovering an edge. A minimum cover is always minimal; the
// converse does not hold.
func IsMinimal(g Graph, c Cover) bool {
	if !IsCover(g, c) {
		return false
	}
	set := c.Set()
	// x is redundant iff every neighbor of x is also in the cover.
	needed := make(map[string]bool, len(set))
	for _, e := range g.Edges() {
		if e == nil {
			continue
		}
		_, a := set[e.From]
		_, b := set[e.To]
		if a && !b {
			needed[e.From] = true
		}
		if b && !a {
			needed[e.To] = true
		}
	}
	for id := range set {
		if !needed[id] {
			return false
		}
	}

	return true
}

// MaxDegree returns Δ, the maximum number of edges incident to one node of g.
func MaxDegree(g Graph) int {
	if g == nil {
		return 0
	}
	deg := make(map[string]int)
	best := 0
	for _, e := range g.Edges() {
		if e == nil {
			continue
		}
		deg[e.From]++
		deg[e.To]++
		best = max(best, deg[e.From], deg[e.To])
	}

	return best
}

// Harmonic returns H(n) = 1 + 1/2 + … + 1/n, and 0 for n < 1.
func Harmonic(n int) float64 {
	h := 0.0
	for i := n; i >= 1; i-- {
		h += 1 / float64(i)
	}

	return h
}
