// SPDX-License-Identifier: MIT

package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dfs"
)

// buildGraph creates nodes 0..n-1 named N0.. and the given 1 km Good roads.
func buildGraph(t *testing.T, n int, roads [][2]core.NodeID) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.NodeID(i), "N"+string(rune('0'+i))))
	}
	for _, r := range roads {
		require.NoError(t, g.AddEdge(r[0], r[1], 1, core.Good))
	}

	return g
}

// recursiveOrder is the reference recursive DFS with sorted neighbors.
func recursiveOrder(g *core.Graph, origin core.NodeID) []core.NodeID {
	seen := map[core.NodeID]bool{}
	var order []core.NodeID
	var visit func(core.NodeID)
	visit = func(u core.NodeID) {
		seen[u] = true
		order = append(order, u)
		nbs, _ := g.SortedNeighbors(u)
		for _, v := range nbs {
			if !seen[v.To] {
				visit(v.To)
			}
		}
	}
	visit(origin)

	return order
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_OriginNotFound(t *testing.T) {
	g := buildGraph(t, 1, nil)
	res, err := dfs.DFS(g, 3)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrOriginNotFound)
}

func TestDFS_BadMaxDepth(t *testing.T) {
	g := buildGraph(t, 1, nil)
	_, err := dfs.DFS(g, 0, dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_MatchesRecursiveOrder(t *testing.T) {
	// roads inserted out of id order on purpose
	g := buildGraph(t, 8, [][2]core.NodeID{
		{0, 5}, {0, 2}, {5, 7}, {2, 7}, {2, 1}, {1, 3}, {3, 0}, {7, 6}, {6, 4}, {4, 5},
	})
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, recursiveOrder(g, 0), res.Order)
	assert.Equal(t, []core.NodeID{0, 2, 1, 3, 7, 5, 4, 6}, res.Order)
}

func TestDFS_PathUnwindsOnBacktrack(t *testing.T) {
	// star: 0 connected to 1, 2, 3
	g := buildGraph(t, 4, [][2]core.NodeID{{0, 3}, {0, 1}, {0, 2}})
	var backtracked []core.NodeID
	res, err := dfs.DFS(g, 0, dfs.WithOnBacktrack(func(id core.NodeID) {
		backtracked = append(backtracked, id)
	}))
	require.NoError(t, err)

	require.Len(t, res.Trace, 4)
	assert.Equal(t, []string{"N0"}, res.Trace[0].Path)
	assert.Equal(t, []string{"N0", "N1"}, res.Trace[1].Path)
	// N1 was popped before N2 was entered
	assert.Equal(t, []string{"N0", "N2"}, res.Trace[2].Path)
	assert.Equal(t, []string{"N0", "N3"}, res.Trace[3].Path)
	assert.Equal(t, []core.NodeID{1, 2, 3, 0}, backtracked)
	assert.Equal(t, backtracked, res.PostOrder)
}

func TestDFS_DepthAndParent(t *testing.T) {
	g := buildGraph(t, 4, [][2]core.NodeID{{0, 1}, {1, 2}, {0, 3}})
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, map[core.NodeID]int{0: 0, 1: 1, 2: 2, 3: 1}, res.Depth)
	assert.Equal(t, map[core.NodeID]core.NodeID{1: 0, 2: 1, 3: 0}, res.Parent)
}

func TestDFS_UnreachedMatchesBFS(t *testing.T) {
	g := buildGraph(t, 7, [][2]core.NodeID{{0, 1}, {1, 2}, {3, 4}, {5, 5}})
	for _, origin := range g.NodeIDs() {
		d, err := dfs.DFS(g, origin)
		require.NoError(t, err)
		b, err := bfs.BFS(g, origin)
		require.NoError(t, err)
		assert.Equal(t, b.Unreached, d.Unreached, "origin %d", origin)
	}
}

func TestDFS_SelfLoopAndParallelRoads(t *testing.T) {
	g := buildGraph(t, 2, [][2]core.NodeID{{0, 0}, {0, 1}, {0, 1}})
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1}, res.Order)
	assert.Empty(t, res.Unreached)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildGraph(t, 4, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}})
	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1}, res.Order)
	assert.Equal(t, []core.NodeID{2, 3}, res.Unreached)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildGraph(t, 3, [][2]core.NodeID{{0, 1}, {1, 2}})
	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(_ core.NodeID, v core.Via) bool {
		return v.To != 2
	}))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_OnVisitAborts(t *testing.T) {
	g := buildGraph(t, 3, [][2]core.NodeID{{0, 1}, {1, 2}})
	boom := errors.New("boom")
	res, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(s dfs.Step) error {
		if s.ID == 1 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []core.NodeID{0, 1}, res.Order)
}

func TestDFS_DeepChainDoesNotRecurse(t *testing.T) {
	const n = 50000
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.NodeID(i), ""))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1, core.Good))
	}
	res, err := dfs.DFS(g, 0, dfs.WithTrace(false))
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Nil(t, res.Trace[n-1].Path)
	assert.Equal(t, n-1, res.Depth[core.NodeID(n-1)])
}
