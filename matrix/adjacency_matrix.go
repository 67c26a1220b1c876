// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Snapshot view of a road network as an n×n kilometre table with O(1)
//     connection and distance lookups by node id.
//
// Contract:
//   - Row/column i corresponds to IDs[i]; IDs is ascending.
//   - Data[i][j] is the raw distance of a road i→j, or 0 if none
//     (with parallel roads the last one added wins, as in core.AdjacencyMatrix).
//   - The snapshot is not kept in sync with the graph; call Refresh after edits.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// AdjacencyMatrix holds a fixed-size, 2D representation of a graph.
//
// Time complexity:
//   - HasConnection/Distance: O(1)
//   - Degree/Neighbors: O(V)
//   - Refresh: O(V² + E)
//
// Memory:
//   - O(V²).
type AdjacencyMatrix struct {
	// IDs lists node ids in row order.
	IDs []core.NodeID
	// Index maps node id → row/column index in Data.
	Index map[core.NodeID]int
	// Data[i][j] holds the kilometres of road i→j, or zero if none.
	Data [][]float64
}

// NewAdjacencyMatrix builds an AdjacencyMatrix from g.
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	m := &AdjacencyMatrix{}
	if err := m.Refresh(g); err != nil {
		return nil, err
	}

	return m, nil
}

// Refresh rebuilds the snapshot from the current state of g.
func (m *AdjacencyMatrix) Refresh(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	g = g.Clone()
	ids := g.NodeIDs()
	idx := make(map[core.NodeID]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	m.IDs, m.Index, m.Data = ids, idx, g.AdjacencyMatrix()

	return nil
}

// Size returns the number of rows (= nodes).
func (m *AdjacencyMatrix) Size() int { return len(m.IDs) }

// HasConnection reports whether a road a→b exists. Unknown ids yield false.
func (m *AdjacencyMatrix) HasConnection(a, b core.NodeID) bool {
	return m.Distance(a, b) > 0
}

// Distance returns the kilometres of road a→b, or 0 when there is none
// or either id is unknown.
func (m *AdjacencyMatrix) Distance(a, b core.NodeID) float64 {
	i, ok := m.Index[a]
	if !ok {
		return 0
	}
	j, ok := m.Index[b]
	if !ok {
		return 0
	}

	return m.Data[i][j]
}

// Degree counts the distinct nodes id has a road to (non-zero cells of its row).
// Parallel roads count once here, unlike core.Graph.Degree.
func (m *AdjacencyMatrix) Degree(id core.NodeID) int {
	i, ok := m.Index[id]
	if !ok {
		return 0
	}
	deg := 0
	for _, v := range m.Data[i] {
		if v != 0 {
			deg++
		}
	}

	return deg
}

// Neighbors returns, ascending, all node ids v for which Data[id][v] != 0.
// Returns ErrUnknownVertex if id is not in the snapshot.
func (m *AdjacencyMatrix) Neighbors(id core.NodeID) ([]core.NodeID, error) {
	i, ok := m.Index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	out := []core.NodeID{}
	for j, v := range m.Data[i] {
		if v != 0 {
			out = append(out, m.IDs[j])
		}
	}

	return out, nil
}
