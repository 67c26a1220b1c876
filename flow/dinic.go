// SPDX-License-Identifier: MIT

package flow

import (
	"context"

	"github.com/katalvlaran/roadnet/core"
)

// Dinic computes the maximum flow between source and sink with Dinic's
// algorithm: BFS builds a level graph, then DFS pushes a blocking flow
// through it one path at a time. Errors are those of EdmondsKarp.
//
// Complexity: O(V² · E) in general, O(E · √V) when every road has unit capacity.
// Memory: O(V + E).
func Dinic(ctx context.Context, g *core.Graph, source, sink core.NodeID, opts ...Option) (*Result, error) {
	o := resolve(opts)
	n, err := newNetwork(g, source, sink, o)
	if err != nil {
		return nil, err
	}

	var (
		level []int
		iter  []int
	)
	find := func() ([]int, error) {
		for {
			if level == nil {
				level = n.levels()
				if level[n.t] < 0 {
					return nil, nil
				}
				iter = make([]int, len(n.ids))
			}
			if path := n.levelPath(level, iter); path != nil {
				return path, nil
			}
			// blocking flow reached; rebuild the level graph
			level = nil
		}
	}

	return n.run(ctx, o, MethodDinic, find)
}

// levels returns the BFS distance of every position from the source over
// residual arcs, -1 when unreachable.
func (n *network) levels() []int {
	level := make([]int, len(n.ids))
	for i := range level {
		level[i] = -1
	}
	level[n.s] = 0
	queue := []int{n.s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range n.adj[u] {
			v := n.arcs[a].to
			if level[v] < 0 && n.arcs[a].cap > n.eps {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level
}

// levelPath finds one s→t path that climbs the level graph, advancing iter
// past arcs that are saturated or lead to dead ends.
func (n *network) levelPath(level, iter []int) []int {
	var path []int
	u := n.s
	for u != n.t {
		advanced := false
		for iter[u] < len(n.adj[u]) {
			a := n.adj[u][iter[u]]
			v := n.arcs[a].to
			if n.arcs[a].cap > n.eps && level[v] == level[u]+1 {
				path = append(path, a)
				u = v
				advanced = true
				break
			}
			iter[u]++
		}
		if advanced {
			continue
		}
		if len(path) == 0 {
			return nil
		}
		// u is a dead end: retreat and skip the arc that led here
		last := path[len(path)-1]
		path = path[:len(path)-1]
		u = n.tail(last)
		iter[u]++
	}

	return path
}
