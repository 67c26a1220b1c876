// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// ExampleGraph builds a triangle of municipalities and prints the neighborhood of one.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddNode(0, "Yopal")
	_ = g.AddNode(1, "Aguazul")
	_ = g.AddNode(2, "Mani")

	_ = g.AddEdge(0, 2, 65, core.Good)
	_ = g.AddEdge(0, 1, 28, core.Good)
	_ = g.AddEdge(1, 2, 42, core.Fair)

	nbs, _ := g.SortedNeighbors(0)
	for _, v := range nbs {
		fmt.Printf("%s -> %s %.1f km (%s, penalized %.1f)\n",
			g.Name(0), g.Name(v.To), v.Distance, v.Condition, v.Penalized())
	}
	fmt.Println("connected:", g.IsConnected())
	// Output:
	// Yopal -> Aguazul 28.0 km (Good, penalized 28.0)
	// Yopal -> Mani 65.0 km (Good, penalized 65.0)
	// connected: true
}
