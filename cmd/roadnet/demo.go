// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dataset"
	"github.com/katalvlaran/roadnet/dfs"
	"github.com/katalvlaran/roadnet/internal/view"
	"github.com/katalvlaran/roadnet/prim_kruskal"
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every report on the network",
		Long: `demo prints the full report: the network model, BFS and DFS from the first
municipality, connectivity, shortest routes with and without condition
penalties, the sample origin/destination comparisons, critical points, route
redundancy for the sample pairs and the penalized maintenance backbone.`,
		Args: cobra.NoArgs,
		RunE: a.withGraph(func(cmd *cobra.Command, _ []string) error {
			return a.demo(cmd.Context())
		}),
	}
}

func (a *app) demo(ctx context.Context) error {
	ids := a.graph.NodeIDs()
	if len(ids) == 0 {
		return a.render.Nodes(nil)
	}
	origin := ids[0]
	r := a.render

	r.Section("Part A: network model")
	if err := r.Nodes(view.Nodes(a.graph)); err != nil {
		return err
	}
	if err := r.Adjacency(view.AdjacencyList(a.graph)); err != nil {
		return err
	}
	m, err := view.MatrixOf(a.graph)
	if err != nil {
		return err
	}
	if err = r.Matrix(m); err != nil {
		return err
	}

	r.Section("Part B: traversals")
	br, err := bfs.BFS(a.graph, origin)
	if err != nil {
		return err
	}
	if err = r.Traversal(view.BFS(a.graph, br)); err != nil {
		return err
	}
	dr, err := dfs.DFS(a.graph, origin)
	if err != nil {
		return err
	}
	if err = r.Traversal(view.DFS(a.graph, dr)); err != nil {
		return err
	}
	c, err := view.ConnectivityOf(a.graph)
	if err != nil {
		return err
	}
	if err = r.Connectivity(c); err != nil {
		return err
	}

	r.Section("Part C: shortest routes")
	for _, penalized := range []bool{false, true} {
		if err = a.routes(origin, penalized); err != nil {
			return err
		}
	}
	for _, pair := range demoPairs(a.graph) {
		if err = a.compare(pair[0], pair[1]); err != nil {
			return err
		}
	}

	r.Section("Part D: critical points")
	if err = a.critical(); err != nil {
		return err
	}
	for _, pair := range demoPairs(a.graph) {
		if err = a.redundancy(ctx, pair[0], pair[1]); err != nil {
			return err
		}
	}
	if !c.Connected {
		return nil
	}

	return a.backbone(prim_kruskal.MethodKruskal, true,
		prim_kruskal.WithWeightFunc(a.weight(true)))
}

// demoPairs returns the sample origin/destination pairs that exist in g.
func demoPairs(g *core.Graph) [][2]core.NodeID {
	var out [][2]core.NodeID
	for _, p := range dataset.DemoRoutes {
		if g.HasNode(p[0]) && g.HasNode(p[1]) {
			out = append(out, p)
		}
	}

	return out
}
