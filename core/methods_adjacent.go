// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, SortedNeighbors).
// Determinism:
//   - Neighbors() keeps insertion order.
//   - SortedNeighbors() orders by destination id asc; ties keep insertion order.
// Concurrency:
//   - Both take the read lock and return independent copies.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the adjacency records of id in insertion order.
//
// Returns:
//   - []Via: a copy; empty (non-nil) when id has no roads.
//   - error: ErrNodeNotFound when id is absent.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph) Neighbors(id NodeID) ([]Via, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.neighborsLocked(id)
}

// SortedNeighbors returns the adjacency records of id ordered by destination id.
//
// Traversals use this to make their visit order independent of the order in
// which roads were added. The sort is stable, so parallel roads to the same
// destination keep their insertion order.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) SortedNeighbors(id NodeID) ([]Via, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, err := g.neighborsLocked(id)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// neighborsLocked copies id's records. Caller holds g.mu.
func (g *Graph) neighborsLocked(id NodeID) ([]Via, error) {
	if _, ok := g.names[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	src := g.adjacency[id]
	out := make([]Via, len(src))
	copy(out, src)

	return out, nil
}
