// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Whole-graph queries (connectivity, adjacency matrix, stats).
// Policy:
//   - Every result is computed on demand under the read lock; nothing is
//     cached across mutations.

package core

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	IsolatedCount int // nodes without any adjacency record
}

// IsConnected reports whether a breadth-first sweep from the smallest id
// reaches every node. An empty graph is connected.
//
// Implementation:
//   - Stage 1: Under the read lock, pick the smallest id as root.
//   - Stage 2: Sweep the adjacency with a FIFO queue and a visited set.
//   - Stage 3: Compare the visited count with the node count.
//
// Complexity:
//   - Time O(V log V + E), Space O(V).
func (g *Graph) IsConnected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.names) == 0 {
		return true
	}
	root := g.sortedIDsLocked()[0]

	visited := make(map[NodeID]bool, len(g.names))
	visited[root] = true
	queue := []NodeID{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.adjacency[u] {
			if !visited[v.To] {
				visited[v.To] = true
				queue = append(queue, v.To)
			}
		}
	}

	return len(visited) == len(g.names)
}

// AdjacencyMatrix builds an n×n matrix where cell [i][j] holds the raw
// distance of the road i→j, or 0 when there is none.
//
// Rows and columns follow NodeIDs() order; for the usual dense ids 0..n-1
// the index equals the id. With parallel roads the last one added wins.
// The matrix is rebuilt on every call, so callers must call again after
// mutating the graph.
//
// Complexity:
//   - Time O(V² + E), Space O(V²).
func (g *Graph) AdjacencyMatrix() [][]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.sortedIDsLocked()
	index := make(map[NodeID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	n := len(ids)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for _, id := range ids {
		for _, v := range g.adjacency[id] {
			m[index[id]][index[v.To]] = v.Distance
		}
	}

	return m
}

// Stats returns node, road and isolated-node counts.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{NodeCount: len(g.names), EdgeCount: g.records / 2}
	for id := range g.names {
		if len(g.adjacency[id]) == 0 {
			s.IsolatedCount++
		}
	}

	return s
}
