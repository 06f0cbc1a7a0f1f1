// SPDX-License-Identifier: MIT
// Package: vertexcover/render
//
// svg.go - standalone SVG renderer.

package render

import (
	"bufio"
	"context"
	"fmt"
	"html"
	"math"

	"github.com/katalvlaran/vertexcover/core"
	"github.com/katalvlaran/vertexcover/cover"
)

const (
	svgMargin  = 40.0
	svgCaption = 24.0 // band at the top holding the caption
)

// SVG writes a standalone SVG image. Build one with New("svg").
type SVG struct {
	style style
}

// Render writes <dir>/<code>.svg.
func (s *SVG) Render(ctx context.Context, g *core.Graph, res cover.Result, dir string) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}

	return writeFile(ctx, dir, res, ".svg", func(w *bufio.Writer) error {
		return s.write(w, g, res)
	})
}

func (s *SVG) write(w *bufio.Writer, g *core.Graph, res cover.Result) error {
	st := s.style
	width, height := float64(st.width), float64(st.height)
	in := res.Cover.Set()

	n := g.VertexCount()
	radius := nodeRadius(n, width, height)
	pos := layout(g, width, height-svgCaption, svgMargin)

	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		st.width, st.height, st.width, st.height)
	fmt.Fprintf(w, `<rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")
	fmt.Fprintf(w, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="16" text-anchor="middle">%s</text>`+"\n",
		width/2, svgCaption*0.75, html.EscapeString(caption(g, res)))

	fmt.Fprintln(w, `<g stroke-linecap="round">`)
	for _, e := range g.Edges() {
		a, b := pos[e.From], pos[e.To]
		color, extra := st.edgeColor, ""
		switch classify(e, in) {
		case edgeUncovered:
			color, extra = st.alertColor, ` stroke-dasharray="6 4"`
		case edgeSingle:
			color = st.coverColor
		case edgeDouble:
			color, extra = st.coverColor, ` stroke-width="3"`
		}
		fmt.Fprintf(w, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"%s/>`+"\n",
			a.X, a.Y+svgCaption, b.X, b.Y+svgCaption, html.EscapeString(color), extra)
	}
	fmt.Fprintln(w, `</g>`)

	fmt.Fprintln(w, `<g stroke="#333333" font-family="sans-serif" text-anchor="middle">`)
	for _, id := range g.Vertices() {
		p := pos[id]
		fill := st.plainColor
		if _, ok := in[id]; ok {
			fill = st.coverColor
		}
		fmt.Fprintf(w, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"><title>%s</title></circle>`+"\n",
			p.X, p.Y+svgCaption, radius, html.EscapeString(fill), html.EscapeString(id))
		if st.labels {
			fmt.Fprintf(w, `<text x="%.2f" y="%.2f" font-size="%.1f" stroke="none" dominant-baseline="central">%s</text>`+"\n",
				p.X, p.Y+svgCaption, radius, html.EscapeString(id))
		}
	}
	fmt.Fprintln(w, `</g>`)
	_, err := w.WriteString("</svg>\n")

	return err
}

// nodeRadius shrinks nodes as the graph grows, between 3 and 14 pixels.
func nodeRadius(n int, width, height float64) float64 {
	if n < 1 {
		return 14
	}
	r := math.Min(width, height) / (4 * math.Sqrt(float64(n)))

	return math.Max(3, math.Min(14, r))
}
