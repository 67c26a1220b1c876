// SPDX-License-Identifier: MIT

package dataset_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roadnet/dataset"
)

// ExampleCasanare lists the sample municipalities and their road counts.
func ExampleCasanare() {
	g, err := dataset.Casanare()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, n := range g.Nodes()[:4] {
		fmt.Printf("%d %-10s %d roads\n", n.ID, n.Name, g.Degree(n.ID))
	}
	fmt.Println(g.NodeCount(), "nodes,", g.EdgeCount(), "roads")
	// Output:
	// 0 Yopal      3 roads
	// 1 Aguazul    3 roads
	// 2 Tauramena  3 roads
	// 3 Mani       3 roads
	// 10 nodes, 13 roads
}

// ExampleLoad reads a two-node network from YAML.
func ExampleLoad() {
	doc := `
nodes:
  - {id: 0, name: Yopal}
  - {id: 1, name: Aguazul}
roads:
  - {from: 0, to: 1, km: 28, condition: Fair}
`
	g, err := dataset.Load(strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)
		return
	}
	nbs, _ := g.Neighbors(0)
	fmt.Printf("%s -> %s %.1f km, penalized %.1f\n", g.Name(0), g.Name(nbs[0].To), nbs[0].Distance, nbs[0].Penalized())
	// Output:
	// Yopal -> Aguazul 28.0 km, penalized 33.6
}
