package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vertexcover/core"
)

// assembler turns parsed nodes and edges into a *core.Graph and enforces the
// simple-graph rules with positions in the error messages.
type assembler struct {
	name     string // file name for messages
	g        *core.Graph
	declared bool // edges must reference declared nodes
	lenient  bool // skip duplicate edges instead of failing
	skipped  int  // duplicates skipped in lenient mode
}

func newAssembler(name string, lenient bool) *assembler {
	return &assembler{name: name, g: core.NewGraph(core.WithName(name)), lenient: lenient}
}

// node declares id; redeclaring a node is an error.
func (a *assembler) node(id, at string) error {
	if id == "" {
		return invalidf("%s: %s: empty node ID", a.name, at)
	}
	if a.g.HasVertex(id) {
		return invalidf("%s: %s: node %q declared twice", a.name, at, id)
	}
	return a.g.AddVertex(id)
}

// attr stores a vertex attribute on a declared node.
func (a *assembler) attr(id, key string, value any) error {
	return a.g.SetVertexAttr(id, key, value)
}

// edge adds u-v, mapping core errors onto ErrInvalidGraph.
func (a *assembler) edge(u, v, at string) error {
	if u == "" || v == "" {
		return invalidf("%s: %s: empty node ID", a.name, at)
	}
	if a.declared {
		for _, id := range [2]string{u, v} {
			if !a.g.HasVertex(id) {
				return invalidf("%s: %s: edge %s-%s references undeclared node %q", a.name, at, u, v, id)
			}
		}
	}

	_, err := a.g.AddEdge(u, v)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrLoopNotAllowed):
		return invalidf("%s: %s: self-loop on %q", a.name, at, u)
	case errors.Is(err, core.ErrMultiEdgeNotAllowed):
		if a.lenient {
			a.skipped++
			return nil
		}
		return invalidf("%s: %s: duplicate edge %s-%s", a.name, at, u, v)
	default:
		return fmt.Errorf("%s: %s: %w", a.name, at, err)
	}
}
