// SPDX-License-Identifier: MIT

// Package matrix offers dense views of a road network.
//
//   - AdjacencyMatrix: an n×n kilometre snapshot indexed by ascending node id,
//     with constant-time HasConnection/Distance and row-scan Degree/Neighbors.
//     It mirrors core.Graph.AdjacencyMatrix and must be refreshed after edits.
//   - DistanceMatrix: all-pairs cheapest costs (Floyd–Warshall, fixed k→i→j
//     order) under any core.WeightFunc, with Eccentricity and Center queries.
//
// Unknown ids never panic: lookups return zero/false, and only Neighbors and
// Eccentricity report ErrUnknownVertex.
package matrix
