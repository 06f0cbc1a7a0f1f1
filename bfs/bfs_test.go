package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/vertexcover/bfs"
	"github.com/katalvlaran/vertexcover/builder"
	"github.com/katalvlaran/vertexcover/core"
)

// edges builds a simple graph from pairs.
func edges(t *testing.T, opts []core.GraphOption, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, p := range pairs {
		if _, err := g.AddEdge(p[0], p[1]); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", p[0], p[1], err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Components(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("Components(nil): want ErrGraphNil, got %v", err)
	}
}

// TestCycleAndDepths covers a 4-cycle and checks layers.
func TestCycleAndDepths(t *testing.T) {
	g := edges(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for v, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[v]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
	if path, _ := res.PathTo("C"); !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v; want [A B C]", path)
	}
}

// TestBFS_MaxDepthAndFilter verifies depth limits and edge filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := edges(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"})

	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	res, _ := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	}))
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoopAndParallelDedup ensures loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := edges(t, []core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		[2]string{"A", "A"}, [2]string{"A", "B"}, [2]string{"A", "B"})
	res, _ := bfs.BFS(g, "A")
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Parallel: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisit asserts visit order with depths and abort propagation.
func TestBFS_OnVisit(t *testing.T) {
	g := edges(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"})

	var vis []string
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, d int) error {
		vis = append(vis, id+"@"+strconv.Itoa(d))
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A@0", "B@1", "C@2"}; !reflect.DeepEqual(vis, want) {
		t.Errorf("OnVisit = %v; want %v", vis, want)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) || !strings.Contains(err.Error(), `"B"`) {
		t.Errorf("abort: got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS and Components.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("BFS: want context.Canceled, got %v", err)
	}
	if _, err := bfs.Components(g, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Components: want context.Canceled, got %v", err)
	}
}

// TestComponents checks partitioning, ordering and isolated counting.
func TestComponents(t *testing.T) {
	g := edges(t, nil,
		[2]string{"3", "4"}, [2]string{"10", "11"}, [2]string{"11", "12"}, [2]string{"1", "2"})
	_ = g.AddVertex("z")
	_ = g.AddVertex("0")

	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"0"}, {"1", "2"}, {"3", "4"}, {"10", "11", "12"}, {"z"}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}

	n, iso, err := bfs.CountComponents(g)
	if err != nil || n != 5 || iso != 2 {
		t.Errorf("CountComponents = %d, %d, %v; want 5, 2, nil", n, iso, err)
	}

	comps, _ = bfs.Components(core.NewGraph())
	if len(comps) != 0 {
		t.Errorf("empty graph: got %v", comps)
	}
}

// TestComponents_Builders cross-checks builder topologies.
func TestComponents_Builders(t *testing.T) {
	for name, tc := range map[string]struct {
		cons builder.Constructor
		want int
	}{
		"wheel":     {builder.Wheel(7), 1},
		"grid":      {builder.Grid(3, 4), 1},
		"two paths": {nil, 2},
	} {
		var (
			g   *core.Graph
			err error
		)
		if tc.cons == nil {
			g, err = builder.BuildGraph(nil, nil, builder.Path(3))
			if err == nil {
				err = builder.Apply(g, []builder.BuilderOption{builder.WithIDScheme(func(i int) string { return "q" + strconv.Itoa(i) })}, builder.Path(2))
			}
		} else {
			g, err = builder.BuildGraph(nil, nil, tc.cons)
		}
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if n, _, _ := bfs.CountComponents(g); n != tc.want {
			t.Errorf("%s: %d components; want %d", name, n, tc.want)
		}
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := edges(t, nil, [2]string{"A", "B"})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.Components(g); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
