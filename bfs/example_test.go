// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid.
// Node i*3+j sits at row i, column j; the search starts in the top-left corner.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for id := 0; id < 9; id++ {
		_ = g.AddNode(core.NodeID(id), fmt.Sprintf("cell%d", id))
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			u := core.NodeID(i*3 + j)
			if j+1 < 3 {
				_ = g.AddEdge(u, u+1, 1, core.Good)
			}
			if i+1 < 3 {
				_ = g.AddEdge(u, u+3, 1, core.Good)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println("level of 8:", res.Level[8])
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// level of 8: 4
}

// ExampleResult_PathTo shows fewest-hop path reconstruction.
func ExampleResult_PathTo() {
	g := core.NewGraph()
	for id := 0; id < 4; id++ {
		_ = g.AddNode(core.NodeID(id), "")
	}
	_ = g.AddEdge(0, 1, 100, core.Poor)
	_ = g.AddEdge(1, 3, 100, core.Poor)
	_ = g.AddEdge(0, 2, 1, core.Good)
	_ = g.AddEdge(2, 3, 1, core.Good)

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(3)
	fmt.Println(path)
	// Output:
	// [0 1 3]
}
