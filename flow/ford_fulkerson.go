// SPDX-License-Identifier: MIT

package flow

import (
	"context"

	"github.com/katalvlaran/roadnet/core"
)

// FordFulkerson computes the maximum flow between source and sink,
// augmenting along any residual path found by an iterative DFS.
// Errors are those of EdmondsKarp.
//
// Complexity: O(E · F) time where F is the flow value, O(V + E) memory.
// Prefer EdmondsKarp or Dinic when capacities are large.
func FordFulkerson(ctx context.Context, g *core.Graph, source, sink core.NodeID, opts ...Option) (*Result, error) {
	o := resolve(opts)
	n, err := newNetwork(g, source, sink, o)
	if err != nil {
		return nil, err
	}

	return n.run(ctx, o, MethodFordFulkerson, func() ([]int, error) {
		return n.dfsPath(), nil
	})
}

// dfsPath returns the arcs of some residual s→t path, or nil.
// Arcs are tried in adjacency order.
func (n *network) dfsPath() []int {
	visited := make([]bool, len(n.ids))
	visited[n.s] = true
	next := make([]int, len(n.ids)) // next adjacency slot to try per position
	var path []int
	u := n.s
	for u != n.t {
		advanced := false
		for next[u] < len(n.adj[u]) {
			a := n.adj[u][next[u]]
			next[u]++
			v := n.arcs[a].to
			if visited[v] || n.arcs[a].cap <= n.eps {
				continue
			}
			visited[v] = true
			path = append(path, a)
			u = v
			advanced = true
			break
		}
		if advanced {
			continue
		}
		if len(path) == 0 {
			return nil
		}
		// backtrack
		u = n.tail(path[len(path)-1])
		path = path[:len(path)-1]
	}

	return path
}
