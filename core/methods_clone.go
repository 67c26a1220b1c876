// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Point-in-time copies of a graph.
// Concurrency:
//   - Clone holds the read lock for the whole copy, so the result never mixes
//     state from before and after a concurrent AddNode/AddEdge.
//   - Algorithms run on a Clone; their node list and adjacency then agree.

package core

// Clone returns a deep copy of g: names, adjacency records and logger.
// Mutating the clone never affects g and vice versa.
//
// Complexity: O(V + E) time and memory.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		names:     make(map[NodeID]string, len(g.names)),
		adjacency: make(map[NodeID][]Via, len(g.adjacency)),
		records:   g.records,
		logger:    g.logger,
	}
	for id, name := range g.names {
		c.names[id] = name
	}
	for id, vias := range g.adjacency {
		if vias == nil {
			c.adjacency[id] = nil
			continue
		}
		c.adjacency[id] = append([]Via(nil), vias...)
	}

	return c
}
