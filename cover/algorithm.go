// SPDX-License-Identifier: MIT
//
// File: algorithm.go
// Role: Closed enumeration of the four algorithms with selector codes, report
//       labels, ratio bounds and exhaustive dispatch.

package cover

import (
	"fmt"
	"math"
)

// Algorithm identifies one of the four cover algorithms.
// The zero value is Exact.
type Algorithm int

// Declaration order is the report order used when running all algorithms.
const (
	Exact Algorithm = iota
	NaiveApprox
	GreedyLogNApprox
	Greedy2Approx

	algorithmCount = iota
)

var (
	algorithmCodes = [algorithmCount]string{
		Exact:            "exact",
		NaiveApprox:      "naive",
		GreedyLogNApprox: "greedy-log-n",
		Greedy2Approx:    "greedy-2",
	}
	algorithmLabels = [algorithmCount]string{
		Exact:            "Exact",
		NaiveApprox:      "Naive Approximation",
		GreedyLogNApprox: "Greedy log(n) Approximation",
		Greedy2Approx:    "Greedy 2-Approximation",
	}
)

// Algorithms returns every algorithm in report order.
func Algorithms() []Algorithm {
	return []Algorithm{Exact, NaiveApprox, GreedyLogNApprox, Greedy2Approx}
}

// Codes returns the selector codes of every algorithm in report order.
func Codes() []string {
	out := make([]string, 0, algorithmCount)
	for _, a := range Algorithms() {
		out = append(out, a.Code())
	}

	return out
}

// ParseAlgorithm maps a selector code to its Algorithm.
func ParseAlgorithm(code string) (Algorithm, error) {
	for i, c := range algorithmCodes {
		if c == code {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q (want one of %v)", ErrUnsupportedAlgorithm, code, Codes())
}

// Valid reports whether a is one of the declared algorithms.
func (a Algorithm) Valid() bool { return a >= 0 && a < algorithmCount }

// Code returns the short selector code, e.g. "greedy-2".
func (a Algorithm) Code() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}

	return algorithmCodes[a]
}

// Label returns the display label used in reports.
func (a Algorithm) Label() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmLabels[a]
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return a.Code() }

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(a))
	}

	return []byte(a.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// RatioBound returns the guaranteed worst-case |C|/OPT for a graph with
// maximum degree maxDegree: 1 for Exact, 2 for Greedy2, H(Δ) for GreedyLogN
// and +Inf for Naive.
func (a Algorithm) RatioBound(maxDegree int) float64 {
	switch a {
	case Exact:
		return 1
	case Greedy2Approx:
		return 2
	case GreedyLogNApprox:
		if maxDegree < 1 {
			return 1
		}
		return Harmonic(maxDegree)
	case NaiveApprox:
		return math.Inf(1)
	default:
		return math.NaN()
	}
}

// Solve runs the algorithm on g.
func (a Algorithm) Solve(g Graph, opts ...Option) (Result, error) {
	switch a {
	case Exact:
		return ExactCover(g, opts...)
	case NaiveApprox:
		return Naive(g, opts...)
	case GreedyLogNApprox:
		return GreedyLogN(g, opts...)
	case Greedy2Approx:
		return Greedy2(g, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(a))
	}
}
