// SPDX-License-Identifier: MIT

package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
)

// newGraph builds a graph with nodes 0..n-1 and the given roads (all 1 km, Good).
func newGraph(t *testing.T, n int, roads [][2]core.NodeID) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.NodeID(i), ""))
	}
	for _, r := range roads {
		require.NoError(t, g.AddEdge(r[0], r[1], 1, core.Good))
	}

	return g
}

func TestBFS_NilGraph(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_OriginNotFound(t *testing.T) {
	g := newGraph(t, 2, nil)
	_, err := bfs.BFS(g, 7)
	assert.ErrorIs(t, err, bfs.ErrOriginNotFound)
}

func TestBFS_NegativeMaxDepth(t *testing.T) {
	g := newGraph(t, 1, nil)
	_, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleNode(t *testing.T) {
	g := newGraph(t, 1, nil)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, res.Order)
	assert.Equal(t, 0, res.Level[0])
	assert.Empty(t, res.Parent)
	assert.Empty(t, res.Unreached)
}

// Neighbors are taken in ascending id regardless of insertion order.
func TestBFS_OrderIsAscendingPerLevel(t *testing.T) {
	g := newGraph(t, 5, [][2]core.NodeID{{0, 4}, {0, 2}, {0, 1}, {2, 3}, {4, 3}})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2, 4, 3}, res.Order)
	assert.Equal(t, map[core.NodeID]int{0: 0, 1: 1, 2: 1, 4: 1, 3: 2}, res.Level)
	// 3 is first discovered from 2
	assert.Equal(t, core.NodeID(2), res.Parent[3])
}

func TestBFS_DisconnectedReportsUnreached(t *testing.T) {
	g := newGraph(t, 5, [][2]core.NodeID{{0, 1}, {3, 4}})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1}, res.Order)
	assert.Equal(t, []core.NodeID{2, 3, 4}, res.Unreached)
	assert.False(t, res.Reached(3))

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_ParallelRoadsAndSelfLoop(t *testing.T) {
	g := newGraph(t, 3, [][2]core.NodeID{{0, 1}, {0, 1}, {1, 1}, {1, 2}})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := newGraph(t, 4, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}})
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, res.Order)
	assert.Equal(t, []core.NodeID{3}, res.Unreached)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddNode(core.NodeID(i), ""))
	}
	require.NoError(t, g.AddEdge(0, 1, 10, core.Poor))
	require.NoError(t, g.AddEdge(0, 2, 10, core.Good))

	skipPoor := func(_ core.NodeID, v core.Via) bool { return v.Condition != core.Poor }
	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(skipPoor))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2}, res.Order)
	assert.Equal(t, []core.NodeID{1}, res.Unreached)
}

func TestBFS_Hooks(t *testing.T) {
	g := newGraph(t, 3, [][2]core.NodeID{{0, 1}, {1, 2}})
	var enq, deq, vis []core.NodeID
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(id core.NodeID, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id core.NodeID, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id core.NodeID, _ int) error { vis = append(vis, id); return nil }),
	)
	require.NoError(t, err)
	want := []core.NodeID{0, 1, 2}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	g := newGraph(t, 3, [][2]core.NodeID{{0, 1}, {1, 2}})
	stop := errors.New("stop")
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id core.NodeID, _ int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []core.NodeID{0, 1}, res.Order)
}

func TestResult_PathTo(t *testing.T) {
	g := newGraph(t, 5, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}, {0, 4}, {4, 3}})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 4, 3}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, path)
}
