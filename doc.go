// SPDX-License-Identifier: MIT

// Package roadnet models a regional road network as an undirected weighted
// graph of municipalities and answers the questions a planner asks of it:
// which places connect, how to get from one to another, which road closures
// would split the region and how much redundancy a link has.
//
// Roads carry a length in kilometers and a condition (Good, Fair, Poor).
// Routing works on raw kilometers or on condition-penalized kilometers,
// where the condition multiplies the length (1.0, 1.2 and 1.5 by default).
//
// Packages:
//
//	core/         - Graph, Node, Via, Condition and weight functions
//	dataset/      - the Casanare sample network and the YAML dataset format
//	builder/      - synthetic networks (path, cycle, star, grid, random)
//	bfs/          - breadth-first traversal with depth and parent tracking
//	dfs/          - depth-first traversal with an optional path trace
//	dijkstra/     - shortest routes, route tables and raw/penalized comparison
//	matrix/       - adjacency matrix and all-pairs distances (hub, center)
//	articulation/ - articulation points, bridges and component count
//	prim_kruskal/ - minimum spanning tree (maintenance backbone)
//	flow/         - max-flow redundancy and minimum cut between two nodes
//
// The roadnet command (cmd/roadnet) exposes every report on the console, as
// JSON, or over an HTTP API (roadnet serve).
package roadnet
