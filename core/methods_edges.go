// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Road insertion.
//
// Policy:
//   - Unknown endpoints are rejected as a no-op, logged at Warn and reported
//     to the caller as ErrNodeNotFound.
//   - Condition tags are accepted as given; legality is the caller's concern
//     (see ParseCondition). Unrecognized tags weigh ×1.0.

package core

import (
	"fmt"
	"log/slog"
)

// AddEdge connects a and b with an undirected road.
//
// Implementation:
//   - Stage 1: Validate the distance (ErrBadDistance).
//   - Stage 2: Under the write lock, verify both endpoints exist.
//   - Stage 3: Append Via{To: b} to a and Via{To: a} to b.
//
// Behavior highlights:
//   - Parallel roads are kept; each is a separate pair of records.
//   - A self-loop (a == b) appends two records under a.
//
// Errors:
//   - ErrBadDistance: distance is negative, NaN or +Inf.
//   - ErrNodeNotFound: a or b was never added. The graph is unchanged.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(a, b NodeID, distance float64, condition Condition) error {
	if !validDistance(distance) {
		return fmt.Errorf("%w: %v", ErrBadDistance, distance)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range [2]NodeID{a, b} {
		if _, ok := g.names[id]; !ok {
			g.logger.Warn("core: road rejected, endpoint does not exist",
				slog.Int("from", int(a)),
				slog.Int("to", int(b)),
				slog.Int("missing", int(id)),
			)

			return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		}
	}

	g.adjacency[a] = append(g.adjacency[a], Via{To: b, Distance: distance, Condition: condition})
	g.adjacency[b] = append(g.adjacency[b], Via{To: a, Distance: distance, Condition: condition})
	g.records += 2

	return nil
}

// EdgeCount returns the number of roads added (each road is two records).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.records / 2
}
