// SPDX-License-Identifier: MIT

// Package core provides the in-memory road network: nodes identified by
// dense integer ids, and undirected weighted roads stored once per direction.
//
// The Graph G = (V,E) is deliberately small in scope:
//
//   - Undirected only: AddEdge(a, b, …) stores a→b and b→a records.
//   - Weighted by a non-negative distance (km) plus a qualitative Condition
//     (Good, Fair, Poor) that drives the penalized weight.
//   - Append-only: nodes and roads are never removed, ids never renumbered.
//   - One sync.RWMutex: mutators serialize and each query sees one state.
//     The algorithm packages start from Clone, so a run never observes a
//     mutation that lands half-way through it.
//
// Weights:
//
//	– RawWeight(v)        v.Distance
//	– PenalizedWeight(v)  v.Distance × {Poor: 1.5, Fair: 1.2, else: 1.0}
//	– Penalties.Weight    same shape, multipliers supplied by the caller
//
// Core Methods:
//
//	// Construction
//	AddNode(id NodeID, name string) error                        // O(1), last name wins
//	AddEdge(a, b NodeID, km float64, c Condition) error          // O(1), unknown endpoint → ErrNodeNotFound
//
//	// Query
//	HasNode(id) bool, Name(id) string, NodeCount() int, EdgeCount() int
//	NodeIDs() []NodeID                   // sorted ascending
//	Neighbors(id) ([]Via, error)         // insertion order
//	SortedNeighbors(id) ([]Via, error)   // ascending destination id
//	Degree(id) int                       // adjacency records
//	IsConnected() bool                   // BFS from the smallest id
//	AdjacencyMatrix() [][]float64        // rebuilt per call
//	Clone() *Graph                       // deep copy under one read lock
//
// Errors:
//
//	ErrNodeNotFound      - an id was never added.
//	ErrInvalidNodeID     - negative id.
//	ErrBadDistance       - negative, NaN or infinite distance.
//	ErrUnknownCondition  - ParseCondition got a tag outside the closed set.
package core
