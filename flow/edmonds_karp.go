// SPDX-License-Identifier: MIT

package flow

import (
	"context"

	"github.com/katalvlaran/roadnet/core"
)

// EdmondsKarp computes the maximum flow between source and sink, augmenting
// along shortest (fewest-road) residual paths found by BFS.
//
// Error Conditions:
//   - ErrGraphNil         : g is nil.
//   - ErrSourceNotFound   : source is not a node of g.
//   - ErrSinkNotFound     : sink is not a node of g.
//   - ErrSameEndpoints    : source == sink.
//   - ErrNegativeCapacity : the capacity function priced a road below zero (as EdgeError).
//   - ctx.Err()           : the context was cancelled between augmentations.
//
// Complexity: O(V · E²) time, O(V + E) memory.
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink core.NodeID, opts ...Option) (*Result, error) {
	o := resolve(opts)
	n, err := newNetwork(g, source, sink, o)
	if err != nil {
		return nil, err
	}

	return n.run(ctx, o, MethodEdmondsKarp, func() ([]int, error) {
		return n.bfsPath(), nil
	})
}

// bfsPath returns the arcs of a shortest residual s→t path, or nil.
func (n *network) bfsPath() []int {
	parent := make([]int, len(n.ids))
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, len(n.ids))
	visited[n.s] = true
	queue := []int{n.s}
	for len(queue) > 0 && !visited[n.t] {
		u := queue[0]
		queue = queue[1:]
		for _, a := range n.adj[u] {
			v := n.arcs[a].to
			if visited[v] || n.arcs[a].cap <= n.eps {
				continue
			}
			visited[v] = true
			parent[v] = a
			queue = append(queue, v)
		}
	}
	if !visited[n.t] {
		return nil
	}

	var path []int
	for v := n.t; v != n.s; v = n.tail(parent[v]) {
		path = append(path, parent[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
