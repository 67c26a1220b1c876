// SPDX-License-Identifier: MIT

// Package flow measures how redundant the road network is between two
// municipalities using maximum flow.
//
// Every road is undirected: it becomes a pair of residual arcs that both
// start at the road's capacity, so flow may use it in either direction.
// With the default UnitCapacity the flow value is the number of routes that
// share no road (Menger's theorem), and Result.Cut lists the fewest roads
// whose closure isolates the destination. WithCapacity swaps in any other
// non-negative capacity, for example lanes or daily vehicle throughput.
//
// Algorithms:
//
//   - EdmondsKarp   : BFS shortest augmenting paths, O(V·E²).
//   - Dinic         : level graph plus blocking flow, O(E·√V) on unit capacities.
//   - FordFulkerson : DFS augmenting paths, O(E·F).
//
// All three return the same Value and Cut; the route decomposition depends
// on the augmenting order. Compute selects one by name (WithMethod).
//
// Self-loops are ignored. Parallel roads each contribute their own capacity.
// A cancelled context stops the run between augmentations.
package flow
