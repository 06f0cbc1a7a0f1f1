// SPDX-License-Identifier: MIT
// Package: vertexcover/runner
//
// report.go - run requests, per-algorithm rows and run reports.

package runner

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/vertexcover/cover"
)

// Request describes one run.
type Request struct {
	// Dataset is the path handed to the Loader.
	Dataset string

	// Algorithm is used by RunOne; RunAll ignores it.
	Algorithm cover.Algorithm

	// Visualize renders every cover into PlotPath.
	Visualize bool

	// PlotPath is the render output directory ("." when empty).
	PlotPath string

	// TimeLimit bounds the Exact search; zero means none.
	TimeLimit time.Duration

	// Verify checks the covering invariant on every result.
	Verify bool

	// ExcludeExact makes RunAll skip the Exact algorithm.
	ExcludeExact bool
}

// Ratio is an approximation guarantee. An unbounded ratio encodes as JSON null.
type Ratio float64

// MarshalJSON implements json.Marshaler.
func (r Ratio) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// Bounded reports whether the ratio is finite.
func (r Ratio) Bounded() bool {
	return !math.IsInf(float64(r), 0) && !math.IsNaN(float64(r))
}

// Row is the outcome of one algorithm on the dataset.
type Row struct {
	Algorithm  cover.Algorithm `json:"-"`
	Code       string          `json:"algorithm"`
	Label      string          `json:"label"`
	CoverSize  int             `json:"cover_size"`
	Elapsed    time.Duration   `json:"-"`
	Seconds    float64         `json:"seconds"`
	Cover      cover.Cover     `json:"cover"`
	PlotFile   string          `json:"plot_file,omitempty"`
	RatioBound Ratio           `json:"ratio_bound"`
	Verified   bool            `json:"verified,omitempty"` // passed the covering check
}

// Report collects the rows of one run.
type Report struct {
	RunID      uuid.UUID `json:"run_id"`
	Dataset    string    `json:"dataset"`
	Nodes      int       `json:"nodes"`
	Edges      int       `json:"edges"`
	MaxDegree  int       `json:"max_degree"`
	Components int       `json:"components"` // connected components
	Isolated   int       `json:"isolated"`   // components of a single node
	Rows       []Row     `json:"rows"`
	StartedAt  time.Time `json:"started_at"`
}

// Row returns the row for a, if the run included it.
func (r *Report) Row(a cover.Algorithm) (Row, bool) {
	for _, row := range r.Rows {
		if row.Algorithm == a {
			return row, true
		}
	}
	return Row{}, false
}

func newRow(res cover.Result, maxDegree int) Row {
	cov := res.Cover
	if cov == nil {
		cov = cover.Cover{}
	}
	return Row{
		Algorithm:  res.Algorithm,
		Code:       res.Algorithm.Code(),
		Label:      res.Algorithm.Label(),
		CoverSize:  res.Size(),
		Elapsed:    res.Elapsed,
		Seconds:    res.Seconds(),
		Cover:      cov,
		RatioBound: Ratio(res.Algorithm.RatioBound(maxDegree)),
	}
}
