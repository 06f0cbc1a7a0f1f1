// SPDX-License-Identifier: MIT
// Package: vertexcover/render
//
// dot.go - Graphviz DOT renderer.

package render

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/vertexcover/core"
	"github.com/katalvlaran/vertexcover/cover"
)

// DOT writes Graphviz source. Build one with New("dot").
type DOT struct {
	style style
}

// Render writes <dir>/<code>.dot.
func (d *DOT) Render(ctx context.Context, g *core.Graph, res cover.Result, dir string) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}

	return writeFile(ctx, dir, res, ".dot", func(w *bufio.Writer) error {
		return d.write(w, g, res)
	})
}

func (d *DOT) write(w *bufio.Writer, g *core.Graph, res cover.Result) error {
	st := d.style
	in := res.Cover.Set()

	name := g.Name()
	if name == "" {
		name = "G"
	}
	fmt.Fprintf(w, "graph %s {\n", dotQuote(name))
	fmt.Fprintf(w, "  label=%s;\n  labelloc=t;\n", dotQuote(caption(g, res)))
	fmt.Fprintf(w, "  node [shape=circle, style=filled, fillcolor=%s];\n", dotQuote(st.plainColor))
	fmt.Fprintf(w, "  edge [color=%s];\n", dotQuote(st.edgeColor))

	for _, id := range g.Vertices() {
		var attrs []string
		if _, ok := in[id]; ok {
			attrs = append(attrs, "fillcolor="+dotQuote(st.coverColor), "penwidth=2")
		}
		if !st.labels {
			attrs = append(attrs, `label=""`)
		}
		if len(attrs) == 0 {
			fmt.Fprintf(w, "  %s;\n", dotQuote(id))
			continue
		}
		fmt.Fprintf(w, "  %s [%s];\n", dotQuote(id), strings.Join(attrs, ", "))
	}

	for _, e := range g.Edges() {
		switch classify(e, in) {
		case edgeUncovered:
			fmt.Fprintf(w, "  %s -- %s [color=%s, style=dashed];\n", dotQuote(e.From), dotQuote(e.To), dotQuote(st.alertColor))
		case edgeDouble:
			fmt.Fprintf(w, "  %s -- %s [color=%s, penwidth=2];\n", dotQuote(e.From), dotQuote(e.To), dotQuote(st.coverColor))
		default:
			fmt.Fprintf(w, "  %s -- %s [color=%s];\n", dotQuote(e.From), dotQuote(e.To), dotQuote(st.coverColor))
		}
	}
	_, err := w.WriteString("}\n")

	return err
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
