// SPDX-License-Identifier: MIT
// Package: vertexcover/runner

// Package runner orchestrates benchmark runs: load a dataset once, run one or
// every cover algorithm on it, time each call, optionally verify and render
// the covers, and collect the results in a Report.
//
// The Runner depends on two narrow capabilities injected at construction,
// a dataset.Loader and a render.Renderer, so tests can swap either for a fake.
//
//	r, err := runner.New(dataset.NewLoader(), renderer)
//	rep, err := r.RunAll(ctx, runner.Request{Dataset: "g.col", ExcludeExact: true})
//
// Algorithms run sequentially on the same graph. Any algorithm error, a
// failed verification or a failed render aborts the run; no partial report is
// returned with an error.
package runner
