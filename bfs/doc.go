// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning hop levels, BFS-tree parents, visit order and unreached nodes.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from an origin.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Level: node → hops from the origin (origin = 0)
//   - Parent: node → predecessor in the BFS tree
//   - Unreached: nodes of a disconnected graph the search never touched
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual roads; WithMaxDepth caps the level.
//
// Determinism
//
//	Neighbors of each dequeued node are taken from core.SortedNeighbors,
//	i.e. ascending destination id, so two graphs holding the same roads
//	added in different orders produce the same visit sequence.
//
// Complexity (V = nodes, E = roads)
//
//   - Time:   O(V + E log d)  (neighbor lists are sorted per dequeue)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil         nil graph
//   - ErrOriginNotFound   origin id not in the graph
//   - ErrOptionViolation  e.g. negative MaxDepth
//   - hook errors         wrapped from OnVisit
package bfs
