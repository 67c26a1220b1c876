// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadnet/articulation"
	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dataset"
	"github.com/katalvlaran/roadnet/dfs"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/flow"
	"github.com/katalvlaran/roadnet/internal/server"
	"github.com/katalvlaran/roadnet/internal/view"
	"github.com/katalvlaran/roadnet/prim_kruskal"
)

func (a *app) nodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List municipalities and their road counts",
		Args:  cobra.NoArgs,
		RunE: a.withGraph(func(_ *cobra.Command, _ []string) error {
			return a.render.Nodes(view.Nodes(a.graph))
		}),
	}
}

func (a *app) adjacencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjacency",
		Short: "Print every municipality's roads",
		Args:  cobra.NoArgs,
		RunE: a.withGraph(func(_ *cobra.Command, _ []string) error {
			return a.render.Adjacency(view.AdjacencyList(a.graph))
		}),
	}
}

func (a *app) matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the adjacency matrix and node degrees",
		Args:  cobra.NoArgs,
		RunE: a.withGraph(func(_ *cobra.Command, _ []string) error {
			m, err := view.MatrixOf(a.graph)
			if err != nil {
				return err
			}
			return a.render.Matrix(m)
		}),
	}
}

func (a *app) bfsCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "bfs ORIGIN",
		Short: "Breadth-first traversal from ORIGIN (id or name)",
		Args:  cobra.ExactArgs(1),
		RunE: a.withGraph(func(_ *cobra.Command, args []string) error {
			origin, err := a.node(args[0])
			if err != nil {
				return err
			}
			res, err := bfs.BFS(a.graph, origin, bfs.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			return a.render.Traversal(view.BFS(a.graph, res))
		}),
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many hops (0 = no limit)")

	return cmd
}

func (a *app) dfsCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "dfs ORIGIN",
		Short: "Depth-first traversal from ORIGIN with the path to each municipality",
		Args:  cobra.ExactArgs(1),
		RunE: a.withGraph(func(_ *cobra.Command, args []string) error {
			origin, err := a.node(args[0])
			if err != nil {
				return err
			}
			res, err := dfs.DFS(a.graph, origin, dfs.WithMaxDepth(maxDepth))
			if err != nil {
				return err
			}
			return a.render.Traversal(view.DFS(a.graph, res))
		}),
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "stop below this depth (-1 = no limit)")

	return cmd
}

func (a *app) routeCmd() *cobra.Command {
	var penalized bool
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Shortest route between two municipalities",
		Args:  cobra.ExactArgs(2),
		RunE: a.withGraph(func(_ *cobra.Command, args []string) error {
			from, err := a.node(args[0])
			if err != nil {
				return err
			}
			to, err := a.node(args[1])
			if err != nil {
				return err
			}
			rt, err := dijkstra.RouteBetween(a.graph, from, to, a.weightOpts(penalized)...)
			if err != nil {
				return err
			}
			return a.render.Route(routeTitle(a.graph, from, to, penalized), view.RouteOf(a.graph, rt))
		}),
	}
	cmd.Flags().BoolVar(&penalized, "penalized", false, "weigh roads by condition")

	return cmd
}

func routeTitle(g *core.Graph, from, to core.NodeID, penalized bool) string {
	mode := "raw km"
	if penalized {
		mode = "penalized"
	}

	return fmt.Sprintf("Route %s -> %s (%s)", g.Name(from), g.Name(to), mode)
}

func (a *app) routesCmd() *cobra.Command {
	var penalized bool
	cmd := &cobra.Command{
		Use:   "routes ORIGIN",
		Short: "Shortest route from ORIGIN to every municipality",
		Args:  cobra.ExactArgs(1),
		RunE: a.withGraph(func(_ *cobra.Command, args []string) error {
			origin, err := a.node(args[0])
			if err != nil {
				return err
			}
			return a.routes(origin, penalized)
		}),
	}
	cmd.Flags().BoolVar(&penalized, "penalized", false, "weigh roads by condition")

	return cmd
}

func (a *app) routes(origin core.NodeID, penalized bool) error {
	entries, err := dijkstra.Table(a.graph, origin, a.weightOpts(penalized)...)
	if err != nil {
		return err
	}

	return a.render.Routes(view.RoutesOf(a.graph, origin, penalized, entries))
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare FROM TO",
		Short: "Compare the raw and condition-penalized routes",
		Args:  cobra.ExactArgs(2),
		RunE: a.withGraph(func(_ *cobra.Command, args []string) error {
			from, err := a.node(args[0])
			if err != nil {
				return err
			}
			to, err := a.node(args[1])
			if err != nil {
				return err
			}
			return a.compare(from, to)
		}),
	}
}

func (a *app) compare(from, to core.NodeID) error {
	cmp, err := dijkstra.Compare(a.graph, from, to, dijkstra.WithPenalties(a.penalties))
	if err != nil {
		return err
	}

	return a.render.Comparison(view.ComparisonOf(a.graph, cmp))
}

func (a *app) connectedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connected",
		Short: "Report whether every municipality can reach every other",
		Args:  cobra.NoArgs,
		RunE: a.withGraph(func(_ *cobra.Command, _ []string) error {
			c, err := view.ConnectivityOf(a.graph)
			if err != nil {
				return err
			}
			return a.render.Connectivity(c)
		}),
	}
}

func (a *app) criticalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "critical",
		Short: "List municipalities and roads whose loss disconnects the network",
		Args:  cobra.NoArgs,
		RunE: a.withGraph(func(_ *cobra.Command, _ []string) error {
			return a.critical()
		}),
	}
}

func (a *app) critical() error {
	res, err := articulation.Find(a.graph, articulation.WithLogger(a.logger))
	if err != nil {
		return err
	}

	return a.render.Critical(view.CriticalOf(a.graph, res))
}

func (a *app) weight(penalized bool) core.WeightFunc {
	if penalized {
		return a.penalties.Weight
	}

	return core.RawWeight
}

func (a *app) backboneCmd() *cobra.Command {
	var (
		penalized bool
		method    string
		root      string
	)
	cmd := &cobra.Command{
		Use:   "backbone",
		Short: "Cheapest set of roads that keeps every municipality connected",
		Args:  cobra.NoArgs,
		RunE: a.withGraph(func(_ *cobra.Command, _ []string) error {
			opts := []prim_kruskal.Option{
				prim_kruskal.WithMethod(method),
				prim_kruskal.WithWeightFunc(a.weight(penalized)),
			}
			if root != "" {
				id, err := a.node(root)
				if err != nil {
					return err
				}
				opts = append(opts, prim_kruskal.WithRoot(id))
			}
			return a.backbone(method, penalized, opts...)
		}),
	}
	f := cmd.Flags()
	f.BoolVar(&penalized, "penalized", false, "weigh roads by condition")
	f.StringVar(&method, "method", prim_kruskal.MethodKruskal, "kruskal or prim")
	f.StringVar(&root, "root", "", "starting municipality for prim")

	return cmd
}

func (a *app) backbone(method string, penalized bool, opts ...prim_kruskal.Option) error {
	res, err := prim_kruskal.Compute(a.graph, opts...)
	if err != nil {
		return err
	}

	return a.render.Backbone(view.BackboneOf(a.graph, method, penalized, res))
}

func (a *app) redundancyCmd() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "redundancy FROM TO",
		Short: "Count routes that share no road and list the roads whose closure cuts the link",
		Args:  cobra.ExactArgs(2),
		RunE: a.withGraph(func(cmd *cobra.Command, args []string) error {
			from, err := a.node(args[0])
			if err != nil {
				return err
			}
			to, err := a.node(args[1])
			if err != nil {
				return err
			}
			return a.redundancy(cmd.Context(), from, to, flow.WithMethod(method))
		}),
	}
	cmd.Flags().StringVar(&method, "method", flow.MethodEdmondsKarp, "edmonds-karp, dinic or ford-fulkerson")

	return cmd
}

func (a *app) redundancy(ctx context.Context, from, to core.NodeID, opts ...flow.Option) error {
	res, err := flow.Compute(ctx, a.graph, from, to, append(opts, flow.WithLogger(a.logger))...)
	if err != nil {
		return err
	}

	return a.render.Redundancy(view.RedundancyOf(a.graph, res))
}

func (a *app) hubCmd() *cobra.Command {
	var penalized bool
	cmd := &cobra.Command{
		Use:   "hub",
		Short: "All-pairs costs: each municipality's eccentricity and the network center",
		Args:  cobra.NoArgs,
		RunE: a.withGraph(func(_ *cobra.Command, _ []string) error {
			h, err := view.HubOf(a.graph, a.weight(penalized), penalized)
			if err != nil {
				return err
			}
			return a.render.Hub(h)
		}),
	}
	cmd.Flags().BoolVar(&penalized, "penalized", false, "weigh roads by condition")

	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the network over a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: a.withGraph(func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			srv := server.New(a.graph, server.WithLogger(a.logger), server.WithPenalties(a.penalties))
			return srv.Run(cmd.Context(), addr)
		}),
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

func (a *app) generateCmd() *cobra.Command {
	var (
		shape        string
		n, cols      int
		p            float64
		seed         int64
		kmMin, kmMax float64
		pGood, pFair float64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a synthetic network as a YAML dataset",
		Long: `generate builds a synthetic road network (path, cycle, star, grid or random)
with seeded road lengths and conditions and prints it in the dataset format
accepted by --dataset.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.setup(false); err != nil {
				return err
			}
			if kmMin < 0 || kmMax < kmMin {
				return fmt.Errorf("generate: need 0 <= --km-min <= --km-max, got %g, %g", kmMin, kmMax)
			}
			if pGood < 0 || pFair < 0 || pGood+pFair > 1 {
				return fmt.Errorf("generate: need --good, --fair >= 0 with sum <= 1, got %g, %g", pGood, pFair)
			}
			cons, err := builder.Shape(shape, n, cols, p)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithLogger(a.logger)},
				[]builder.BuilderOption{
					builder.WithSeed(seed),
					builder.WithKMFn(builder.UniformKM(kmMin, kmMax)),
					builder.WithConditionFn(builder.MixedConditions(pGood, pFair)),
				},
				cons,
			)
			if err != nil {
				return err
			}
			return dataset.Write(a.out, g)
		},
	}
	f := cmd.Flags()
	f.StringVar(&shape, "shape", "grid", "path, cycle, star, grid or random")
	f.IntVar(&n, "n", 4, "node count (rows for grid)")
	f.IntVar(&cols, "cols", 4, "grid columns")
	f.Float64Var(&p, "p", 0.3, "road probability for random")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.Float64Var(&kmMin, "km-min", 10, "shortest road (km)")
	f.Float64Var(&kmMax, "km-max", 100, "longest road (km)")
	f.Float64Var(&pGood, "good", 0.6, "share of Good roads")
	f.Float64Var(&pFair, "fair", 0.3, "share of Fair roads")

	return cmd
}
