package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/vertexcover/bfs"
	"github.com/katalvlaran/vertexcover/builder"
	"github.com/katalvlaran/vertexcover/core"
)

// ExampleBFS demonstrates BFS layering on a 3x3 grid; the visit order
// follows non-decreasing Manhattan distance from the corner.
func ExampleBFS() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, builder.GridID(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo(builder.GridID(2, 2))
	fmt.Println(path)

	// Output:
	// [0,0 0,1 1,0 0,2 1,1 2,0 1,2 2,1 2,2]
	// [0,0 0,1 0,2 1,2 2,2]
}

// ExampleComponents splits two triangles and an isolated vertex.
func ExampleComponents() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"x", "y"}, {"y", "z"}, {"z", "x"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}
	_ = g.AddVertex("lonely")

	comps, _ := bfs.Components(g)
	fmt.Println(comps)
	n, isolated, _ := bfs.CountComponents(g)
	fmt.Println(n, isolated)

	// Output:
	// [[a b c] [lonely] [x y z]]
	// 3 1
}
