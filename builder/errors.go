// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors add context with %w.
// Priority when several checks fail: size, then probability, then RNG presence.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is outside the range the constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempts (e.g.
// stub matching in RandomRegular) or was handed a nil constructor or graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology is returned by ForTopology for an unrecognised name.
var ErrUnknownTopology = errors.New("builder: unknown topology")
