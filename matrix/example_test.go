// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/matrix"
)

// ExampleNewAdjacencyMatrix prints a small kilometre table and node degrees.
func ExampleNewAdjacencyMatrix() {
	g := core.NewGraph()
	_ = g.AddNode(0, "Yopal")
	_ = g.AddNode(1, "Aguazul")
	_ = g.AddNode(2, "Mani")
	_ = g.AddEdge(0, 1, 28, core.Good)
	_ = g.AddEdge(0, 2, 65, core.Good)
	_ = g.AddEdge(1, 2, 42, core.Fair)

	am, _ := matrix.NewAdjacencyMatrix(g)
	for i, row := range am.Data {
		fmt.Println(am.IDs[i], row, "degree", am.Degree(am.IDs[i]))
	}
	// Output:
	// 0 [0 28 65] degree 2
	// 1 [28 0 42] degree 2
	// 2 [65 42 0] degree 2
}
