// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - All-pairs shortest road costs (Floyd–Warshall) with deterministic loop order.
//   - Complements single-source Dijkstra for "distance from every municipality to
//     every other" tables.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal is 0.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/core"
)

// DistanceMatrix holds the cheapest cost between every ordered pair of nodes.
type DistanceMatrix struct {
	IDs   []core.NodeID
	Index map[core.NodeID]int
	// Data[i][j] is the cheapest cost IDs[i]→IDs[j], +Inf if unreachable.
	Data [][]float64
}

// AllPairs computes the cheapest cost between every pair of nodes in g under
// weight (core.RawWeight when nil). Parallel roads contribute their cheapest
// weight; a self-loop never lowers the zero diagonal.
//
// Complexity: Time O(V³), space O(V²).
func AllPairs(g *core.Graph, weight core.WeightFunc) (*DistanceMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g = g.Clone()
	if weight == nil {
		weight = core.RawWeight
	}
	ids := g.NodeIDs()
	n := len(ids)
	idx := make(map[core.NodeID]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
		for j := range data[i] {
			if i != j {
				data[i][j] = math.Inf(1)
			}
		}
	}
	for i, id := range ids {
		vias, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("AllPairs: neighbors of %d: %w", id, err)
		}
		for _, v := range vias {
			w := weight(v)
			if w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("AllPairs: road %d→%d weight=%v: %w", id, v.To, w, ErrInvalidWeight)
			}
			j := idx[v.To]
			if w < data[i][j] {
				data[i][j] = w
			}
		}
	}

	floydWarshallInPlace(data)

	return &DistanceMatrix{IDs: ids, Index: idx, Data: data}, nil
}

// floydWarshallInPlace runs the APSP closure on a square matrix in-place.
// Loop order is fixed (k → i → j) for deterministic accumulation.
func floydWarshallInPlace(d [][]float64) {
	n := len(d)
	var ik, kj, cand float64
	for k := 0; k < n; k++ {
		rowK := d[k]
		for i := 0; i < n; i++ {
			ik = d[i][k]
			if math.IsInf(ik, 1) {
				continue // no path via k can improve i→j
			}
			rowI := d[i]
			for j := 0; j < n; j++ {
				kj = rowK[j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < rowI[j] { // strict improvement only
					rowI[j] = cand
				}
			}
		}
	}
}

// Distance returns the cheapest cost a→b and whether b is reachable from a.
// Unknown ids are reported unreachable.
func (m *DistanceMatrix) Distance(a, b core.NodeID) (float64, bool) {
	i, ok := m.Index[a]
	if !ok {
		return math.Inf(1), false
	}
	j, ok := m.Index[b]
	if !ok {
		return math.Inf(1), false
	}
	d := m.Data[i][j]

	return d, !math.IsInf(d, 1)
}

// Eccentricity returns the largest finite cost from id to any reachable node.
func (m *DistanceMatrix) Eccentricity(id core.NodeID) (float64, error) {
	i, ok := m.Index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVertex, id)
	}
	var ecc float64
	for _, d := range m.Data[i] {
		if !math.IsInf(d, 1) && d > ecc {
			ecc = d
		}
	}

	return ecc, nil
}

// Center returns the node with the smallest eccentricity (ties → smaller id),
// i.e. the best-placed hub within its component. core.NoNode for an empty matrix.
func (m *DistanceMatrix) Center() core.NodeID {
	best, bestEcc := core.NoNode, math.Inf(1)
	for _, id := range m.IDs {
		ecc, _ := m.Eccentricity(id)
		if ecc < bestEcc {
			best, bestEcc = id, ecc
		}
	}

	return best
}
