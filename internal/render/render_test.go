// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/articulation"
	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dataset"
	"github.com/katalvlaran/roadnet/dfs"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/flow"
	"github.com/katalvlaran/roadnet/internal/render"
	"github.com/katalvlaran/roadnet/internal/view"
	"github.com/katalvlaran/roadnet/prim_kruskal"
)

func setup(t *testing.T, asJSON bool) (*core.Graph, *bytes.Buffer, *render.Renderer) {
	t.Helper()
	g, err := dataset.Casanare()
	require.NoError(t, err)
	var buf bytes.Buffer

	return g, &buf, render.New(&buf, asJSON)
}

func TestTables(t *testing.T) {
	g, buf, r := setup(t, false)
	assert.False(t, r.JSON())

	require.NoError(t, r.Nodes(view.Nodes(g)))
	assert.Contains(t, buf.String(), "Municipalities (10)")
	assert.Contains(t, buf.String(), "Hato Corozal")

	buf.Reset()
	require.NoError(t, r.Adjacency(view.AdjacencyList(g)))
	assert.Contains(t, buf.String(), "110.40")

	buf.Reset()
	m, err := view.MatrixOf(g)
	require.NoError(t, err)
	require.NoError(t, r.Matrix(m))
	assert.Contains(t, buf.String(), "Degrees")
	assert.Contains(t, buf.String(), "9 Hato Corozal")
}

func TestTraversalReports(t *testing.T) {
	g, buf, r := setup(t, false)
	require.NoError(t, g.AddNode(10, "Sacama"))

	br, err := bfs.BFS(g, dataset.Yopal)
	require.NoError(t, err)
	require.NoError(t, r.Traversal(view.BFS(g, br)))
	out := buf.String()
	assert.Contains(t, out, "BFS from Yopal")
	assert.Contains(t, out, "Visited 10 of 11")
	assert.Contains(t, out, "UNREACHED Sacama (10)")

	buf.Reset()
	dr, err := dfs.DFS(g, dataset.Yopal)
	require.NoError(t, err)
	require.NoError(t, r.Traversal(view.DFS(g, dr)))
	assert.Contains(t, buf.String(), "Yopal -> Aguazul -> Tauramena -> Villanueva")
}

func TestRouteReports(t *testing.T) {
	g, buf, r := setup(t, false)

	cmp, err := dijkstra.Compare(g, dataset.Yopal, dataset.Monterrey)
	require.NoError(t, err)
	require.NoError(t, r.Comparison(view.ComparisonOf(g, cmp)))
	out := buf.String()
	assert.Contains(t, out, "Yopal -> Aguazul -> Tauramena -> Monterrey")
	assert.Contains(t, out, "15.00 km detour")

	buf.Reset()
	require.NoError(t, r.Route("Route", view.RouteOf(g, cmp.Penalized)))
	assert.Contains(t, buf.String(), "Cost: 133.00")

	buf.Reset()
	require.NoError(t, r.Route("Route", view.Route{}))
	assert.Contains(t, buf.String(), "no route")

	buf.Reset()
	entries, err := dijkstra.Table(g, dataset.Yopal)
	require.NoError(t, err)
	require.NoError(t, r.Routes(view.RoutesOf(g, dataset.Yopal, false, entries)))
	assert.Contains(t, buf.String(), "Shortest routes from Yopal (raw km)")
	assert.Contains(t, buf.String(), "143.00")
}

func TestAnalysisReports(t *testing.T) {
	g, buf, r := setup(t, false)

	c, err := view.ConnectivityOf(g)
	require.NoError(t, err)
	require.NoError(t, r.Connectivity(c))
	assert.Contains(t, buf.String(), "Components: 1")

	buf.Reset()
	res, err := articulation.Find(g)
	require.NoError(t, err)
	require.NoError(t, r.Critical(view.CriticalOf(g, res)))
	assert.Contains(t, buf.String(), "Aguazul (1)")
	assert.Contains(t, buf.String(), "Aguazul -- Tauramena")

	buf.Reset()
	h, err := view.HubOf(g, core.RawWeight, false)
	require.NoError(t, err)
	require.NoError(t, r.Hub(h))
	assert.Contains(t, buf.String(), "Center: Yopal")

	buf.Reset()
	mst, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	require.NoError(t, r.Backbone(view.BackboneOf(g, prim_kruskal.MethodKruskal, false, mst)))
	assert.Contains(t, buf.String(), "Maintenance backbone (kruskal, raw km)")
	assert.Contains(t, buf.String(), "9 roads  Cost: 428.00")

	buf.Reset()
	fr, err := flow.Dinic(context.Background(), g, dataset.HatoCorozal, dataset.Villanueva)
	require.NoError(t, err)
	require.NoError(t, r.Redundancy(view.RedundancyOf(g, fr)))
	out := buf.String()
	assert.Contains(t, out, "Redundancy: Hato Corozal -> Villanueva (dinic)")
	assert.Contains(t, out, "Independent routes: 1")
	assert.Contains(t, out, "Closing these 1 roads cuts the link:")
	assert.Contains(t, out, "Tauramena")

	buf.Reset()
	require.NoError(t, g.AddNode(10, "Sacama"))
	fr, err = flow.EdmondsKarp(context.Background(), g, dataset.Yopal, 10)
	require.NoError(t, err)
	require.NoError(t, r.Redundancy(view.RedundancyOf(g, fr)))
	assert.Contains(t, buf.String(), "no route between these municipalities")
}

func TestJSONMode(t *testing.T) {
	g, buf, r := setup(t, true)
	r.Section("ignored in json mode")

	cmp, err := dijkstra.Compare(g, dataset.Yopal, dataset.Orocue)
	require.NoError(t, err)
	require.NoError(t, r.Comparison(view.ComparisonOf(g, cmp)))

	var got view.Comparison
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.True(t, got.SamePath)
	assert.InDelta(t, 158.6, got.Penalized.Cost, 1e-9)
	assert.Equal(t, "Orocue", got.To.Name)
}
