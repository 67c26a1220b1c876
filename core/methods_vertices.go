// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - NodeIDs() and Nodes() return ids sorted ascending.
//
// Concurrency:
//   - AddNode takes the write lock; every query takes the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node or overwrites its name.
//
// Implementation:
//   - Stage 1: Reject negative ids (ErrInvalidNodeID).
//   - Stage 2: Under the write lock, store the name (last write wins).
//   - Stage 3: Bootstrap an empty adjacency bucket on first insertion.
//
// Behavior highlights:
//   - Idempotent on id: re-adding an id never changes NodeCount and never
//     touches its adjacency records.
//
// Errors:
//   - ErrInvalidNodeID: if id < 0.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id NodeID, name string) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNodeID, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.names[id] = name
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}

	return nil
}

// HasNode reports whether id was ever added.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.names[id]

	return ok
}

// Name returns the display name of id, or UnknownName if id is absent.
// Complexity: O(1).
func (g *Graph) Name(id NodeID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if name, ok := g.names[id]; ok {
		return name
	}

	return UnknownName
}

// NodeCount returns the number of distinct ids ever added.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// NodeIDs returns every node id sorted ascending.
//
// Consumers that need a reproducible order (traversal tables, matrix rows,
// the connectivity root) rely on this ordering.
//
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedIDsLocked()
}

// Nodes returns every node with its name, sorted by id.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.sortedIDsLocked()
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = Node{ID: id, Name: g.names[id]}
	}

	return out
}

// Degree returns the number of adjacency records stored under id.
// A self-loop counts twice; unknown ids have degree 0.
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// sortedIDsLocked returns the sorted node ids. Caller holds g.mu.
func (g *Graph) sortedIDsLocked() []NodeID {
	ids := make([]NodeID, 0, len(g.names))
	for id := range g.names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
