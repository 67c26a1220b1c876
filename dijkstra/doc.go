// SPDX-License-Identifier: MIT

// Package dijkstra provides single-source shortest paths over a core.Graph
// whose roads carry non-negative kilometres and a condition tag.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source to all
//     reachable municipalities in O((V + E) log V) time.
//   - The cost of a road is produced by a core.WeightFunc. Two interpretations ship:
//     raw kilometres (default) and penalized kilometres (WithPenalized), where
//     Poor roads weigh ×1.5, Fair ×1.2 and Good ×1.0. WithPenalties and
//     WithWeightFunc inject other multiplier tables or cost models.
//   - A raw run and a penalized run are fully independent invocations that
//     share only the graph; Compare runs both and reports each route.
//
// Key features:
//
//   - Lazy decrease-key: duplicates are pushed and stale entries discarded on pop.
//   - Deterministic tie-breaking: the heap orders (distance, node id).
//   - Unreachable nodes keep Dist = +Inf and Prev = core.NoNode; this is a
//     normal outcome, reported as ErrNoPath only by PathTo.
//   - Route helpers: ReconstructPath, PathCost, RouteBetween, Compare, Table.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrVertexNotFound: invalid input.
//   - ErrNegativeWeight: detected by an O(E) pre-scan of the chosen weight.
//   - ErrBadMaxDistance: WithMaxDistance received a negative or NaN value.
//   - ErrNoPath, ErrNoRoad: path queries that cannot be answered.
//
// API reference:
//
//	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithPenalized())
//	path, err := res.PathTo(6)
//
//	dist, prev, err := dijkstra.ShortestPaths(g, 0, false)
//	path := dijkstra.ReconstructPath(prev, 6)
package dijkstra
