// SPDX-License-Identifier: MIT
// Package: vertexcover/render
//
// layout.go - node placement for image renderers.

package render

import (
	"math"

	"github.com/katalvlaran/vertexcover/core"
)

type point struct{ X, Y float64 }

// layout places every vertex inside a width x height box with margin on each
// side. Stored x/y attributes win when every vertex has both.
func layout(g *core.Graph, width, height, margin float64) map[string]point {
	ids := g.Vertices()
	raw, ok := storedPositions(g, ids)
	if !ok {
		raw = circle(ids)
	}

	return fit(raw, width, height, margin)
}

func storedPositions(g *core.Graph, ids []string) (map[string]point, bool) {
	if len(ids) == 0 {
		return nil, false
	}
	out := make(map[string]point, len(ids))
	for _, id := range ids {
		attrs, err := g.VertexAttrs(id)
		if err != nil {
			return nil, false
		}
		x, okX := number(attrs["x"])
		y, okY := number(attrs["y"])
		if !okX || !okY {
			return nil, false
		}
		out[id] = point{x, y}
	}

	return out, true
}

// circle puts ids on a unit circle in the given order, the first at the top.
func circle(ids []string) map[string]point {
	out := make(map[string]point, len(ids))
	for i, id := range ids {
		theta := 2*math.Pi*float64(i)/float64(len(ids)) - math.Pi/2
		out[id] = point{math.Cos(theta), math.Sin(theta)}
	}

	return out
}

// fit scales and translates pts uniformly into the drawable area.
// Degenerate extents (one node, a vertical line) are centred.
func fit(pts map[string]point, width, height, margin float64) map[string]point {
	if len(pts) == 0 {
		return pts
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	w, h := width-2*margin, height-2*margin
	spanX, spanY := maxX-minX, maxY-minY
	scale := math.Inf(1)
	if spanX > 0 {
		scale = w / spanX
	}
	if spanY > 0 {
		scale = math.Min(scale, h/spanY)
	}
	if math.IsInf(scale, 1) {
		scale = 0
	}
	offX := margin + (w-spanX*scale)/2
	offY := margin + (h-spanY*scale)/2

	out := make(map[string]point, len(pts))
	for id, p := range pts {
		out[id] = point{offX + (p.X-minX)*scale, offY + (p.Y-minY)*scale}
	}

	return out
}

func number(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case float32:
		return number(float64(x))
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
