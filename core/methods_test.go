// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/core"
)

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddNode(0, "Yopal"))
	assert.True(t, g.HasNode(0))
	assert.Equal(t, 1, g.NodeCount())

	// Re-adding overwrites the name and keeps the count.
	require.NoError(t, g.AddNode(0, "Yopal Centro"))
	assert.Equal(t, "Yopal Centro", g.Name(0))
	assert.Equal(t, 1, g.NodeCount())

	assert.ErrorIs(t, g.AddNode(-1, "bad"), core.ErrInvalidNodeID)
	assert.Equal(t, 1, g.NodeCount())
}

func TestGraph_AddNode_KeepsRoads(t *testing.T) {
	g := buildScenario(t)
	require.NoError(t, g.AddNode(NodeC, "C2"))
	assert.Equal(t, 3, g.Degree(NodeC))
	assert.Equal(t, "C2", g.Name(NodeC))
}

func TestGraph_Name_Unknown(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, core.UnknownName, g.Name(42))
	assert.Equal(t, "Unknown", g.Name(42))
}

func TestGraph_AddEdge_Symmetric(t *testing.T) {
	g := buildScenario(t)

	ab, err := g.Neighbors(NodeA)
	require.NoError(t, err)
	assert.Equal(t, []core.Via{
		{To: NodeB, Distance: 10, Condition: core.Good},
		{To: NodeC, Distance: 5, Condition: core.Good},
	}, ab)

	c, err := g.Neighbors(NodeC)
	require.NoError(t, err)
	// Insertion order: B–C, A–C, C–D.
	assert.Equal(t, []core.NodeID{NodeB, NodeA, NodeD}, destinations(c))
	assert.Equal(t, core.Poor, c[0].Condition)

	assert.Equal(t, 4, g.EdgeCount())
}

func TestGraph_AddEdge_UnknownEndpoint(t *testing.T) {
	logger, buf := capturingLogger()
	g := core.NewGraph(core.WithLogger(logger))
	require.NoError(t, g.AddNode(0, "A"))

	err := g.AddEdge(0, 7, 3, core.Good)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Contains(t, buf.String(), "road rejected")
	assert.Contains(t, buf.String(), "missing=7")

	err = g.AddEdge(9, 0, 3, core.Good)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	// No mutation on either endpoint.
	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Empty(t, nbs)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_AddEdge_BadDistance(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, "A"))
	require.NoError(t, g.AddNode(1, "B"))

	for _, d := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, g.AddEdge(0, 1, d, core.Good), core.ErrBadDistance)
	}
	assert.NoError(t, g.AddEdge(0, 1, 0, core.Good), "zero distance is allowed")
}

func TestGraph_AddEdge_AcceptsAnyTag(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, "A"))
	require.NoError(t, g.AddNode(1, "B"))
	require.NoError(t, g.AddEdge(0, 1, 10, core.Condition("Muddy")))

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, nbs[0].Penalized())
}

func TestGraph_Neighbors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, "lonely"))

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.NotNil(t, nbs)
	assert.Empty(t, nbs)

	_, err = g.Neighbors(5)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.SortedNeighbors(5)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_Neighbors_ReturnsCopy(t *testing.T) {
	g := buildScenario(t)
	nbs, err := g.Neighbors(NodeA)
	require.NoError(t, err)
	nbs[0].Distance = 999

	again, err := g.Neighbors(NodeA)
	require.NoError(t, err)
	assert.Equal(t, 10.0, again[0].Distance)
}

func TestGraph_SortedNeighbors(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddNode(core.NodeID(i), ""))
	}
	require.NoError(t, g.AddEdge(0, 3, 1, core.Good))
	require.NoError(t, g.AddEdge(0, 1, 7, core.Fair))
	require.NoError(t, g.AddEdge(0, 2, 2, core.Good))
	require.NoError(t, g.AddEdge(0, 1, 4, core.Poor))

	sorted, err := g.SortedNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 1, 2, 3}, destinations(sorted))
	// Stable: the parallel roads to 1 keep insertion order.
	assert.Equal(t, 7.0, sorted[0].Distance)
	assert.Equal(t, 4.0, sorted[1].Distance)

	raw, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{3, 1, 2, 1}, destinations(raw))
}

func TestGraph_NodeIDs_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeID{4, 0, 2, 1, 3} {
		require.NoError(t, g.AddNode(id, ""))
	}
	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, g.NodeIDs())

	nodes := g.Nodes()
	require.Len(t, nodes, 5)
	assert.Equal(t, core.NodeID(0), nodes[0].ID)
	assert.Equal(t, core.NodeID(4), nodes[4].ID)
}

func TestGraph_Degree(t *testing.T) {
	g := buildScenario(t)
	assert.Equal(t, 2, g.Degree(NodeA))
	assert.Equal(t, 2, g.Degree(NodeB))
	assert.Equal(t, 3, g.Degree(NodeC))
	assert.Equal(t, 1, g.Degree(NodeD))
	assert.Equal(t, 0, g.Degree(99))
}

func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, "A"))
	require.NoError(t, g.AddEdge(0, 0, 3, core.Good))
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_ConcurrentReaders(t *testing.T) {
	g := buildScenario(t)

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = g.AdjacencyMatrix()
			_, _ = g.SortedNeighbors(NodeC)
			results[i] = g.IsConnected()
		}(i)
	}
	wg.Wait()

	for _, ok := range results {
		assert.True(t, ok)
	}
}

func destinations(vs []core.Via) []core.NodeID {
	out := make([]core.NodeID, len(vs))
	for i, v := range vs {
		out[i] = v.To
	}

	return out
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, "Yopal"))
	require.NoError(t, g.AddNode(1, "Aguazul"))
	require.NoError(t, g.AddEdge(0, 1, 28, core.Good))

	c := g.Clone()
	assert.Equal(t, g.NodeIDs(), c.NodeIDs())
	assert.Equal(t, g.AdjacencyMatrix(), c.AdjacencyMatrix())
	assert.Equal(t, 1, c.EdgeCount())

	// The copies evolve independently.
	require.NoError(t, c.AddNode(2, "Mani"))
	require.NoError(t, c.AddEdge(0, 2, 40, core.Fair))
	require.NoError(t, g.AddNode(0, "Yopal Centro"))
	assert.False(t, g.HasNode(2))
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 2, c.Degree(0))
	assert.Equal(t, "Yopal", c.Name(0))
}

func TestGraph_CloneDuringWrites(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, ""))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 300; i++ {
			_ = g.AddNode(core.NodeID(i), "")
			_ = g.AddEdge(core.NodeID(i-1), core.NodeID(i), 1, core.Good)
		}
	}()
	for i := 0; i < 100; i++ {
		c := g.Clone()
		degrees := 0
		for _, id := range c.NodeIDs() {
			vias, err := c.Neighbors(id)
			require.NoError(t, err)
			for _, v := range vias {
				require.True(t, c.HasNode(v.To), "road %d→%d leaves the copy", id, v.To)
			}
			degrees += len(vias)
		}
		require.Equal(t, 2*c.EdgeCount(), degrees)
	}
	wg.Wait()
}
