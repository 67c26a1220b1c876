// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search over a core.Graph using an
// explicit stack of (node, sorted neighbors, next index) frames.
//
// What:
//
//   - DFS explores as far as possible along each road before backtracking.
//   - Neighbors are tried in ascending destination id; the discovery Order is
//     identical to a recursive DFS over sorted adjacency lists.
//   - The chain of municipality names from the origin to the active node is
//     maintained as an explicit push (enter) / pop (backtrack) and recorded in
//     Result.Trace, one Step per discovered node.
//   - Unreached nodes are reported as a sorted set, exactly as bfs does; for
//     any origin both packages report the same set.
//
// Options:
//
//   - WithOnVisit(fn)         pre-order hook receiving the Step; error aborts.
//   - WithOnBacktrack(fn)     post-order hook.
//   - WithMaxDepth(limit)     stop descending beyond limit (-1 = none).
//   - WithFilterNeighbor(fn)  skip individual roads.
//   - WithTrace(on)           record name-path snapshots (default on).
//
// Complexity:
//
//   - Time:   O(V + E log d), the per-node neighbor sort dominates.
//   - Memory: O(V) for the stack, plus O(V·depth) for Trace paths.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrOriginNotFound    origin id not in graph
//   - ErrOptionViolation   MaxDepth below -1
//   - hook errors          propagated from OnVisit
package dfs
