package dataset_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vertexcover/builder"
	"github.com/katalvlaran/vertexcover/core"
	"github.com/katalvlaran/vertexcover/cover"
	"github.com/katalvlaran/vertexcover/dataset"
)

// shape is a comparable summary of a graph.
type shape struct {
	Nodes []string
	Edges [][2]string
}

func shapeOf(g *core.Graph) shape {
	s := shape{Nodes: g.Vertices()}
	for _, e := range g.Edges() {
		s.Edges = append(s.Edges, [2]string{e.From, e.To})
	}
	return s
}

func decode(t *testing.T, format dataset.Format, src string) (*core.Graph, error) {
	t.Helper()
	return dataset.Decode(context.Background(), strings.NewReader(src), "test", format)
}

func TestDecode_Formats(t *testing.T) {
	t.Parallel()

	want := shape{
		Nodes: []string{"1", "2", "3", "4", "5"},
		Edges: [][2]string{{"1", "2"}, {"2", "3"}, {"3", "1"}, {"3", "4"}},
	}
	tests := []struct {
		name   string
		format dataset.Format
		src    string
	}{
		{"edgelist", dataset.EdgeList, `# triangle with a tail
% another comment style
1 2
2 3   # inline
3 1 0.5
3 4

5
`},
		{"dimacs", dataset.DIMACS, `c triangle with a tail
p edge 5 4
e 1 2
e 2 3
e 3 1
e 3 4
`},
		{"json objects", dataset.JSON, `{"nodes":[{"id":"1"},{"id":2},"3",4,{"id":"5"}],
"edges":[["1","2"],[2,3],{"source":3,"target":1},{"source":"3","target":"4"}]}`},
		{"json node-link", dataset.JSON, `{"directed":false,"multigraph":false,"graph":{},
"nodes":[{"id":1},{"id":2},{"id":3},{"id":4},{"id":5}],
"links":[{"source":1,"target":2},{"source":2,"target":3},{"source":3,"target":1},{"source":3,"target":4}]}`},
		{"hcl", dataset.HCL, `
node "1" {}
node "2" {}
node "3" {}
node "4" {}
node "5" {}
edge "1" "2" {}
edge "2" "3" {}
edge "3" "1" {}
edge "3" "4" {}
`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := decode(t, tc.format, tc.src)
			require.NoError(t, err)
			if diff := cmp.Diff(want, shapeOf(g)); diff != "" {
				t.Fatalf("graph mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Attributes(t *testing.T) {
	t.Parallel()

	g, err := decode(t, dataset.HCL, `
node "a" {
  x     = 1.5
  y     = -2
  label = "Alpha"
  color = "red"
  hub   = true
}
node "b" {}
edge "a" "b" {}
`)
	require.NoError(t, err)
	attrs, err := g.VertexAttrs("a")
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{
		"x": 1.5, "y": -2.0, "label": "Alpha", "color": "red", "hub": true,
	}, attrs)

	g, err = decode(t, dataset.JSON, `{"nodes":[{"id":"p","x":3,"y":4,"label":"P"}],"edges":[]}`)
	require.NoError(t, err)
	attrs, err = g.VertexAttrs("p")
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"x": 3.0, "y": 4.0, "label": "P"}, attrs)
}

func TestDecode_InvalidGraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format dataset.Format
		src    string
	}{
		{"edgelist self-loop", dataset.EdgeList, "1 1\n"},
		{"edgelist duplicate", dataset.EdgeList, "1 2\n2 1\n"},
		{"dimacs out of range", dataset.DIMACS, "p edge 2 1\ne 1 3\n"},
		{"dimacs self-loop", dataset.DIMACS, "p edge 2 1\ne 2 2\n"},
		{"json undeclared", dataset.JSON, `{"nodes":["1","2"],"edges":[["1","9"]]}`},
		{"json empty id", dataset.JSON, `{"nodes":[""]}`},
		{"json duplicate node", dataset.JSON, `{"nodes":["1","1"]}`},
		{"json directed", dataset.JSON, `{"directed":true,"nodes":[],"links":[]}`},
		{"hcl undeclared", dataset.HCL, "node \"a\" {}\nedge \"a\" \"b\" {}\n"},
		{"hcl duplicate", dataset.HCL, "edge \"a\" \"b\" {}\nedge \"b\" \"a\" {}\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := decode(t, tc.format, tc.src)
			require.ErrorIs(t, err, dataset.ErrInvalidGraph)
			require.ErrorIs(t, err, cover.ErrInvalidGraph)
			require.Nil(t, g)
		})
	}
}

func TestDecode_ParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format dataset.Format
		src    string
	}{
		{"dimacs no problem line", dataset.DIMACS, "e 1 2\n"},
		{"dimacs empty", dataset.DIMACS, "c nothing\n"},
		{"dimacs bad header", dataset.DIMACS, "p edge x 1\n"},
		{"dimacs count mismatch", dataset.DIMACS, "p edge 3 2\ne 1 2\n"},
		{"dimacs short edge", dataset.DIMACS, "p edge 3 1\ne 1\n"},
		{"edgelist extra tokens", dataset.EdgeList, "1 2 3 4\n"},
		{"edgelist trailing garbage", dataset.EdgeList, "1 2\n5 6 garbage\n"},
		{"json syntax", dataset.JSON, `{"nodes": [`},
		{"json edges and links", dataset.JSON, `{"edges":[["a","b"]],"links":[{"source":"c","target":"d"}]}`},
		{"json bad edge", dataset.JSON, `{"edges": [["1"]]}`},
		{"json bad id", dataset.JSON, `{"edges": [[true, "1"]]}`},
		{"hcl syntax", dataset.HCL, `node "a" {`},
		{"hcl unknown block", dataset.HCL, `vertex "a" {}`},
		{"hcl list attribute", dataset.HCL, `node "a" { tags = ["x"] }`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := decode(t, tc.format, tc.src)
			require.ErrorIs(t, err, dataset.ErrParse)
		})
	}

	_, err := decode(t, dataset.Format("xml"), "")
	require.ErrorIs(t, err, dataset.ErrUnknownFormat)
}

func TestDecode_EmptyInputs(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		format dataset.Format
		src    string
	}{
		{dataset.EdgeList, ""},
		{dataset.DIMACS, "p edge 0 0\n"},
		{dataset.JSON, `{}`},
		{dataset.HCL, ""},
	} {
		g, err := decode(t, tc.format, tc.src)
		require.NoError(t, err, tc.format)
		require.Zero(t, g.VertexCount())
		require.Zero(t, g.EdgeCount())
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithPositions()},
		builder.RandomSparse(15, 0.25))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("lonely"))

	for _, f := range dataset.Formats() {
		f := f
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, dataset.Write(&buf, g, f))

			back, err := dataset.Decode(context.Background(), &buf, "rt", f)
			require.NoError(t, err)
			if diff := cmp.Diff(shapeOf(g), shapeOf(back)); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}

	var buf bytes.Buffer
	require.ErrorIs(t, dataset.Write(&buf, g, "png"), dataset.ErrUnknownFormat)
}

func TestWrite_DIMACSRenumbers(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Star(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.Write(&buf, g, dataset.DIMACS))
	require.Equal(t, `c graph
c id 3 Center
p edge 3 2
e 3 1
e 3 2
`, buf.String())
}

func TestWrite_RejectsUnwritableIDs(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	_, err := g.AddEdge("a b", "c")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.ErrorIs(t, dataset.Write(&buf, g, dataset.EdgeList), dataset.ErrInvalidGraph)
	require.NoError(t, dataset.Write(&buf, g, dataset.JSON))
}

func TestFileLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	col := filepath.Join(dir, "dup.col")
	require.NoError(t, os.WriteFile(col, []byte("p edge 3 3\ne 1 2\ne 2 1\ne 2 3\n"), 0o600))

	_, err := dataset.NewLoader().Load(context.Background(), col)
	require.ErrorIs(t, err, dataset.ErrInvalidGraph)

	g, err := dataset.NewLoader(dataset.WithLenientDuplicates()).Load(context.Background(), col)
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())

	txt := filepath.Join(dir, "graph.data")
	require.NoError(t, os.WriteFile(txt, []byte("{\"edges\":[[\"1\",\"2\"]]}"), 0o600))
	g, err = dataset.NewLoader().Load(context.Background(), txt)
	require.NoError(t, err)
	require.Zero(t, g.EdgeCount(), "unknown extension reads as an edge list")
	g, err = dataset.NewLoader(dataset.WithFormat(dataset.JSON)).Load(context.Background(), txt)
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())

	_, err = dataset.NewLoader().Load(context.Background(), filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dataset.NewLoader().Load(ctx, col)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFormats(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]dataset.Format{
		"a.txt": dataset.EdgeList, "a.EDGES": dataset.EdgeList, "a": dataset.EdgeList,
		"a.col": dataset.DIMACS, "a.clq": dataset.DIMACS, "a.dimacs": dataset.DIMACS,
		"a.json": dataset.JSON, "a.hcl": dataset.HCL,
	} {
		require.Equal(t, want, dataset.FormatFromPath(path), path)
	}

	f, err := dataset.ParseFormat("COL")
	require.NoError(t, err)
	require.Equal(t, dataset.DIMACS, f)
	_, err = dataset.ParseFormat("graphml")
	require.ErrorIs(t, err, dataset.ErrUnknownFormat)
	require.Equal(t, ".col", dataset.DIMACS.Ext())
	require.Equal(t, ".txt", dataset.EdgeList.Ext())
}
