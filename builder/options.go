// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options mutate builderConfig before any constructor runs.
//   • Option constructors PANIC on nil functions; constructors never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets bipartite side labels. Empty values mean "use defaults".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}

// WithCenterID renames the hub vertex of Star and Wheel. Empty means "Center".
func WithCenterID(id string) BuilderOption {
	return func(c *builderConfig) { c.centerID = id }
}

// WithPositions makes constructors store "x"/"y" vertex attributes.
func WithPositions() BuilderOption {
	return func(c *builderConfig) { c.positions = true }
}
