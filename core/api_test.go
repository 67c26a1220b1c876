// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/core"
)

func TestGraph_IsConnected(t *testing.T) {
	assert.True(t, core.NewGraph().IsConnected(), "empty graph is vacuously connected")

	g := buildScenario(t)
	assert.True(t, g.IsConnected())

	// An isolated fifth node breaks connectivity.
	require.NoError(t, g.AddNode(NodeE, "E"))
	assert.False(t, g.IsConnected())

	// One road to any existing node restores it.
	require.NoError(t, g.AddEdge(NodeE, NodeB, 2, core.Fair))
	assert.True(t, g.IsConnected())
}

func TestGraph_IsConnected_RootIsSmallestID(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(5, "x"))
	require.NoError(t, g.AddNode(3, "y"))
	require.NoError(t, g.AddEdge(5, 3, 1, core.Good))
	assert.True(t, g.IsConnected())

	require.NoError(t, g.AddNode(1, "z"))
	assert.False(t, g.IsConnected())
}

func TestGraph_AdjacencyMatrix(t *testing.T) {
	g := buildScenario(t)

	want := [][]float64{
		{0, 10, 5, 0},
		{10, 0, 10, 0},
		{5, 10, 0, 1},
		{0, 0, 1, 0},
	}
	m := g.AdjacencyMatrix()
	assert.Equal(t, want, m)

	// Idempotent without mutation.
	assert.Equal(t, m, g.AdjacencyMatrix())

	// Not cached: a new node shows up on the next build.
	require.NoError(t, g.AddNode(NodeE, "E"))
	m2 := g.AdjacencyMatrix()
	require.Len(t, m2, 5)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, m2[4])
	assert.Len(t, m, 4, "earlier snapshot is untouched")
}

func TestGraph_AdjacencyMatrix_Empty(t *testing.T) {
	assert.Empty(t, core.NewGraph().AdjacencyMatrix())
}

func TestGraph_Stats(t *testing.T) {
	g := buildScenario(t)
	require.NoError(t, g.AddNode(NodeE, "E"))

	s := g.Stats()
	assert.Equal(t, core.GraphStats{NodeCount: 5, EdgeCount: 4, IsolatedCount: 1}, s)
}
