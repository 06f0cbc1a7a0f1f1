// Package vertexcover benchmarks exact and approximate algorithms for the
// minimum vertex cover problem on undirected graphs.
//
// A vertex cover is a set of nodes such that every edge has at least one
// endpoint in the set. Finding a smallest one is NP-hard; this module pairs
// an exact branch-and-bound search with three polynomial heuristics and a
// command that times them side by side.
//
// Layout:
//
//	core/      : thread-safe simple Graph (vertices, edges, attributes, natural ID order)
//	cover/     : the four algorithms, the Algorithm enum, verification helpers
//	builder/   : deterministic topology constructors (path, star, grid, random, ...)
//	bfs/       : breadth-first search and connected components
//	dataset/   : edge list, DIMACS, JSON and HCL readers and writers
//	render/    : Graphviz DOT and SVG drawings of a cover
//	runner/    : run one or all algorithms on a dataset, collect a Report
//	cmd/vertexcover : the command-line front end
//
// Quick example:
//
//	    1───2───3───4
//
//	cover.ExactCover returns [1 3]; cover.Greedy2 returns [1 2 3 4].
//
//	go install github.com/katalvlaran/vertexcover/cmd/vertexcover@latest
package vertexcover
