// Package dataset loads undirected simple graphs from files and writes them
// back out.
//
// Formats
//
//   - Edge list (.txt, .edges, .el and any unknown extension): one "u v" pair
//     per line; "#" and "%" start comments; a line with a single token declares
//     an isolated node; more than two tokens is ErrParse.
//   - DIMACS (.col, .dimacs, .clq): "c" comments, one "p edge N M" line, then
//     "e u v" lines. Nodes 1..N are declared by the problem line.
//   - JSON (.json): {"nodes": [...], "edges": [...]} where a node is an ID
//     (string or number) or an object {"id", "x", "y", "label"} and an edge is
//     a pair [u, v] or an object {"source", "target"}. The networkx node-link
//     key "links" is accepted in place of "edges", but not alongside it.
//   - HCL (.hcl): node "id" { x = 1  y = 2  label = "..." } and
//     edge "u" "v" {} blocks.
//
// Validation
//
//	Self-loops, duplicate edges (in either orientation) and empty IDs are
//	rejected with ErrInvalidGraph, which also matches cover.ErrInvalidGraph.
//	When a format declares its nodes (DIMACS always; JSON when "nodes" is
//	present; HCL when any node block is present) an edge to an undeclared node
//	is rejected too. Syntax problems return ErrParse with the file position.
//
// Node positions "x"/"y" and "label" are stored as vertex attributes.
package dataset
