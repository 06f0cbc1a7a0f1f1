package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/vertexcover/core"
)

// Write encodes g in the given format. Vertices are written in natural order,
// edges in insertion order, so Write followed by Decode rebuilds an identical
// graph (DIMACS keeps non-numeric IDs in "c id" comments).
func Write(w io.Writer, g *core.Graph, format Format) error {
	if g == nil {
		return invalidf("nil graph")
	}
	switch format {
	case EdgeList:
		return writeEdgeList(w, g)
	case DIMACS:
		return writeDIMACS(w, g)
	case JSON:
		return writeJSON(w, g)
	case HCL:
		return writeHCL(w, g)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// plainID reports whether id survives whitespace tokenisation and comments.
func plainID(id string) bool {
	return id != "" && !strings.ContainsAny(id, " \t\r\n#%")
}

func writeEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s nodes=%d edges=%d\n", graphName(g), g.VertexCount(), g.EdgeCount())
	for _, id := range g.Vertices() {
		if !plainID(id) {
			return invalidf("node ID %q cannot be written as an edge list", id)
		}
		if d, _ := g.Degree(id); d == 0 {
			fmt.Fprintln(bw, id)
		}
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s %s\n", e.From, e.To)
	}
	return bw.Flush()
}

func writeDIMACS(w io.Writer, g *core.Graph) error {
	ids := g.Vertices()
	num := make(map[string]int, len(ids))
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "c %s\n", graphName(g))
	for i, id := range ids {
		num[id] = i + 1
		if id == strconv.Itoa(i+1) {
			continue
		}
		if !plainID(id) {
			return invalidf("node ID %q cannot be written as DIMACS", id)
		}
		fmt.Fprintf(bw, "c %s %d %s\n", idComment, i+1, id)
	}
	fmt.Fprintf(bw, "p edge %d %d\n", len(ids), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "e %d %d\n", num[e.From], num[e.To])
	}
	return bw.Flush()
}

type jsonOutNode struct {
	ID    string   `json:"id"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
	Label string   `json:"label,omitempty"`
}

func writeJSON(w io.Writer, g *core.Graph) error {
	doc := struct {
		Nodes []jsonOutNode `json:"nodes"`
		Edges [][2]string   `json:"edges"`
	}{
		Nodes: make([]jsonOutNode, 0, g.VertexCount()),
		Edges: make([][2]string, 0, g.EdgeCount()),
	}
	for _, id := range g.Vertices() {
		attrs, _ := g.VertexAttrs(id)
		n := jsonOutNode{ID: id}
		if x, ok := toFloat(attrs["x"]); ok {
			n.X = &x
		}
		if y, ok := toFloat(attrs["y"]); ok {
			n.Y = &y
		}
		if label, ok := attrs["label"].(string); ok {
			n.Label = label
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, [2]string{e.From, e.To})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeHCL(w io.Writer, g *core.Graph) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, id := range g.Vertices() {
		blk := body.AppendNewBlock("node", []string{id}).Body()
		attrs, _ := g.VertexAttrs(id)
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if v, ok := toCty(attrs[k]); ok {
				blk.SetAttributeValue(k, v)
			}
		}
	}
	for _, e := range g.Edges() {
		body.AppendNewBlock("edge", []string{e.From, e.To})
	}

	_, err := w.Write(f.Bytes())
	return err
}

func graphName(g *core.Graph) string {
	if g.Name() != "" {
		return g.Name()
	}
	return "graph"
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

func toCty(v any) (cty.Value, bool) {
	if f, ok := toFloat(v); ok {
		return cty.NumberFloatVal(f), true
	}
	switch x := v.(type) {
	case string:
		return cty.StringVal(x), true
	case bool:
		return cty.BoolVal(x), true
	default:
		return cty.NilVal, false
	}
}
