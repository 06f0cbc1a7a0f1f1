// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn      = DefaultIDFn ("0","1","2",...)
//   • rng       = nil (stochastic topologies refuse to run without one)
//   • left/right = "L" / "R"
//   • center    = "Center"
//   • positions = off

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn
	// rng drives stochastic topologies; nil means no randomness.
	rng *rand.Rand

	// Bipartite ID prefixes. Empty → defaults.
	leftPrefix  string
	rightPrefix string

	// centerID names the hub of Star and Wheel.
	centerID string

	// positions makes constructors store "x"/"y" attributes.
	positions bool
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	defaultCenterID    = "Center"
)

// newBuilderConfig applies opts in order (last wins) over the defaults and
// resolves empty labels back to their defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		centerID:    defaultCenterID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}
	if cfg.centerID == "" {
		cfg.centerID = defaultCenterID
	}

	return cfg
}
