package dataset

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclGraphFile represents the top-level structure of a graph file for decoding.
type hclGraphFile struct {
	Nodes []*hclNode `hcl:"node,block"`
	Edges []*hclEdge `hcl:"edge,block"`
}

type hclNode struct {
	ID    string   `hcl:"id,label"`
	X     *float64 `hcl:"x,optional"`
	Y     *float64 `hcl:"y,optional"`
	Label *string  `hcl:"label,optional"`
	// Any other attribute lands in the vertex attributes as is.
	Extra hcl.Body `hcl:",remain"`
}

type hclEdge struct {
	From string `hcl:"from,label"`
	To   string `hcl:"to,label"`
}

func readHCL(r io.Reader, a *assembler) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return parsef("%s: %v", a.name, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, a.name)
	if diags.HasErrors() {
		return parsef("%s: %v", a.name, diags)
	}
	var parsed hclGraphFile
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return parsef("%s: %v", a.name, diags)
	}

	for i, n := range parsed.Nodes {
		at := fmt.Sprintf("node[%d]", i)
		if err := a.node(n.ID, at); err != nil {
			return err
		}
		if err := a.hclAttrs(n, at); err != nil {
			return err
		}
	}
	a.declared = len(parsed.Nodes) > 0

	for i, e := range parsed.Edges {
		if err := a.edge(e.From, e.To, fmt.Sprintf("edge[%d]", i)); err != nil {
			return err
		}
	}

	return nil
}

func (a *assembler) hclAttrs(n *hclNode, at string) error {
	if n.X != nil {
		if err := a.attr(n.ID, "x", *n.X); err != nil {
			return err
		}
	}
	if n.Y != nil {
		if err := a.attr(n.ID, "y", *n.Y); err != nil {
			return err
		}
	}
	if n.Label != nil {
		if err := a.attr(n.ID, "label", *n.Label); err != nil {
			return err
		}
	}
	if n.Extra == nil {
		return nil
	}

	attrs, diags := n.Extra.JustAttributes()
	if diags.HasErrors() {
		return parsef("%s: %s: %v", a.name, at, diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return parsef("%s: %s: %v", a.name, at, diags)
		}
		goVal, ok := ctyPrimitive(val)
		if !ok {
			return parsef("%s: %s: attribute %q must be a string, number or bool, got %s",
				a.name, at, name, val.Type().FriendlyName())
		}
		if err := a.attr(n.ID, name, goVal); err != nil {
			return err
		}
	}

	return nil
}

// ctyPrimitive converts a known, non-null primitive cty value to Go.
func ctyPrimitive(v cty.Value) (any, bool) {
	if v.IsNull() || !v.IsKnown() {
		return nil, false
	}
	switch v.Type() {
	case cty.String:
		return v.AsString(), true
	case cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f, true
	case cty.Bool:
		return v.True(), true
	default:
		return nil, false
	}
}
