// SPDX-License-Identifier: MIT

// Package prim_kruskal computes the maintenance backbone of a road network:
// its minimum spanning tree, the cheapest set of roads that still connects
// every municipality.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...): sort every road by weight, then merge components
//     with a disjoint-set, skipping roads whose endpoints are already joined.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g, opts...): grow one tree from a root (WithRoot, default the
//     smallest id) with a min-heap of roads leaving the tree.
//     Time O(E log E), space O(V + E).
//
// Both return the same total cost on any connected network; the chosen roads
// may differ only when several roads share a weight.
//
// Weights
//
//	Roads are priced by core.RawWeight unless WithWeightFunc says otherwise.
//	Pricing with core.PenalizedWeight (or a core.Penalties table) keeps Poor
//	roads out of the backbone whenever a comparable alternative exists.
//
// Errors
//
//   - ErrGraphNil       nil graph
//   - ErrRootNotFound   Prim root not in the graph
//   - ErrDisconnected   empty graph or more than one component
//   - ErrInvalidWeight  weight function returned a negative or NaN cost
//   - ErrUnknownMethod  Compute with an unrecognized method
package prim_kruskal
