package cover

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vertexcover/core"
)

// fakeGraph lets tests hand the algorithms inputs *core.Graph refuses to hold.
type fakeGraph struct {
	nodes []string
	edges []*core.Edge
}

func (f fakeGraph) Vertices() []string   { return f.nodes }
func (f fakeGraph) Edges() []*core.Edge { return f.edges }

func edge(id, u, v string) *core.Edge { return &core.Edge{ID: id, From: u, To: v} }

func TestNewInstance_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		g    Graph
		want error
	}{
		{"nil interface", nil, ErrGraphNil},
		{"typed nil", (*core.Graph)(nil), ErrGraphNil},
		{"empty id", fakeGraph{nodes: []string{"a", ""}}, ErrInvalidGraph},
		{"duplicate node", fakeGraph{nodes: []string{"a", "a"}}, ErrInvalidGraph},
		{"nil edge", fakeGraph{nodes: []string{"a"}, edges: []*core.Edge{nil}}, ErrInvalidGraph},
		{"unknown from", fakeGraph{nodes: []string{"a"}, edges: []*core.Edge{edge("e1", "x", "a")}}, ErrInvalidGraph},
		{"unknown to", fakeGraph{nodes: []string{"a"}, edges: []*core.Edge{edge("e1", "a", "x")}}, ErrInvalidGraph},
		{"self loop", fakeGraph{nodes: []string{"a"}, edges: []*core.Edge{edge("e1", "a", "a")}}, ErrInvalidGraph},
		{"duplicate edge reversed", fakeGraph{
			nodes: []string{"a", "b"},
			edges: []*core.Edge{edge("e1", "a", "b"), edge("e2", "b", "a")},
		}, ErrInvalidGraph},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := newInstance(tc.g)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewInstance_CoreGraphModes(t *testing.T) {
	t.Parallel()

	loops := core.NewGraph(core.WithLoops())
	_, err := loops.AddEdge("a", "a")
	require.NoError(t, err)
	_, err = newInstance(loops)
	require.ErrorIs(t, err, ErrInvalidGraph)

	multi := core.NewGraph(core.WithMultiEdges())
	_, err = multi.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = multi.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = newInstance(multi)
	require.ErrorIs(t, err, ErrInvalidGraph)
}

func TestNewInstance_Snapshot(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for _, e := range [][2]string{{"10", "2"}, {"b", "a"}, {"2", "a"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("1"))

	in, err := newInstance(g)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "10", "a", "b"}, in.ids)
	require.Equal(t, [][2]int{{2, 1}, {4, 3}, {1, 3}}, in.edges)
	require.Equal(t, [][]int{{}, {2, 3}, {1}, {1, 4}, {3}}, normalize(in.adj))
	require.Equal(t, Cover{"1", "10", "b"}, in.cover([]int{4, 0, 2}))
}

// normalize turns nil adjacency rows into empty ones for comparison.
func normalize(adj [][]int) [][]int {
	out := make([][]int, len(adj))
	for i, row := range adj {
		out[i] = append([]int{}, row...)
	}
	return out
}

func TestRun_OptionErrors(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	_, err := ExactCover(g, WithTimeLimit(-time.Second))
	require.ErrorIs(t, err, ErrOptionViolation)

	_, err = ExactCover(g, WithBound(BoundKind(9)))
	require.ErrorIs(t, err, ErrOptionViolation)
}

func TestInterrupted(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.TimeLimit = time.Millisecond
	err := interrupted(Exact, o, context.DeadlineExceeded)
	require.ErrorIs(t, err, ErrTimeLimit)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	err = interrupted(Exact, DefaultOptions(), context.DeadlineExceeded)
	require.False(t, errors.Is(err, ErrTimeLimit))
	require.ErrorIs(t, err, context.DeadlineExceeded)

	err = interrupted(Exact, o, context.Canceled)
	require.False(t, errors.Is(err, ErrTimeLimit))
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, errSearchExhausted, interrupted(Exact, o, errSearchExhausted))
}
