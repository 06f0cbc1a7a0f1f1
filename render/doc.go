// SPDX-License-Identifier: MIT
// Package: vertexcover/render

// Package render draws a graph together with a computed vertex cover.
//
// A Renderer writes one file per call into an output directory and returns
// its path. Two renderers are provided:
//
//   - DOT: Graphviz source, <dir>/<code>.dot. Cover nodes are filled, edges
//     are coloured by how many of their endpoints the cover holds.
//   - SVG: a self-contained image, <dir>/<code>.svg. Node positions come
//     from the "x"/"y" vertex attributes when every node has both (see
//     builder.WithPositions), otherwise nodes sit on a circle in natural
//     order.
//
// Edges left uncovered (only possible when rendering a foreign, invalid
// cover) are drawn dashed in the alert colour.
//
// New picks a renderer by name:
//
//	r, err := render.New("svg")
//	path, err := r.Render(ctx, g, res, "./plots")
package render
