// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// arc is one direction of a road in the residual network. Arcs come in
// pairs: arcs[2k] runs from the smaller endpoint, arcs[2k^1] is its twin.
// Both start at the road's capacity, so flow may cross a road either way.
type arc struct {
	to   int
	cap  float64
	orig float64
}

// network is the residual network over node positions in sorted id order.
type network struct {
	ids   []core.NodeID
	index map[core.NodeID]int
	arcs  []arc
	adj   [][]int // arc indices leaving each position
	roads []Road  // roads[k] is the road behind arcs[2k]
	s, t  int
	eps   float64
}

// newNetwork validates the endpoints and builds the residual network.
// Self-loops never carry flow and are skipped; parallel roads stay separate.
//
// Complexity: O(V log V + E).
func newNetwork(g *core.Graph, source, sink core.NodeID, o Options) (*network, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g = g.Clone()
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !g.HasNode(sink) {
		return nil, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return nil, fmt.Errorf("%w: %d", ErrSameEndpoints, source)
	}

	ids := g.NodeIDs()
	n := &network{
		ids:   ids,
		index: make(map[core.NodeID]int, len(ids)),
		adj:   make([][]int, len(ids)),
		eps:   o.Epsilon,
	}
	for i, id := range ids {
		n.index[id] = i
	}
	for i, u := range ids {
		vias, err := g.SortedNeighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range vias {
			// each road is stored under both endpoints; take it from the smaller
			if v.To <= u {
				continue
			}
			c := o.Capacity(v)
			if err := checkCapacity(c, u, v.To); err != nil {
				return nil, err
			}
			j := n.index[v.To]
			n.adj[i] = append(n.adj[i], len(n.arcs))
			n.arcs = append(n.arcs, arc{to: j, cap: c, orig: c})
			n.adj[j] = append(n.adj[j], len(n.arcs))
			n.arcs = append(n.arcs, arc{to: i, cap: c, orig: c})
			n.roads = append(n.roads, Road{From: u, Via: v, Capacity: c})
		}
	}
	n.s, n.t = n.index[source], n.index[sink]

	return n, nil
}

// push moves b units along arc a.
func (n *network) push(a int, b float64) {
	n.arcs[a].cap -= b
	n.arcs[a^1].cap += b
}

// tail returns the position arc a leaves from.
func (n *network) tail(a int) int { return n.arcs[a^1].to }

// augment pushes the bottleneck of path (a list of arc indices) and returns it.
func (n *network) augment(path []int) float64 {
	b := n.arcs[path[0]].cap
	for _, a := range path[1:] {
		if c := n.arcs[a].cap; c < b {
			b = c
		}
	}
	for _, a := range path {
		n.push(a, b)
	}

	return b
}

// nodesOf maps an arc path to the node ids it visits.
func (n *network) nodesOf(path []int) []core.NodeID {
	nodes := make([]core.NodeID, 0, len(path)+1)
	nodes = append(nodes, n.ids[n.tail(path[0])])
	for _, a := range path {
		nodes = append(nodes, n.ids[n.arcs[a].to])
	}

	return nodes
}

// run drives find until it reports no augmenting path, then assembles the Result.
// find returns the arc path of one augmentation or nil when the flow is maximal.
func (n *network) run(ctx context.Context, o Options, method string, find func() ([]int, error)) (*Result, error) {
	res := &Result{Method: method, Source: n.ids[n.s], Sink: n.ids[n.t]}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, err := find()
		if err != nil {
			return nil, err
		}
		if path == nil {
			break
		}
		b := n.augment(path)
		res.Value += b
		o.Logger.Debug("augmenting path",
			"method", method, "path", n.nodesOf(path), "flow", b, "total", res.Value)
	}
	res.Routes = n.decompose()
	res.Cut = n.cut()

	return res, nil
}

// decompose splits the net flow into source→sink routes. A cycle met while
// walking is cancelled before continuing, so every route is a simple path.
//
// Complexity: O(E · (V + E)) worst case.
func (n *network) decompose() []Route {
	rem := make([]float64, len(n.arcs))
	for a, e := range n.arcs {
		if f := e.orig - e.cap; f > n.eps {
			rem[a] = f
		}
	}
	next := func(u int) int {
		for _, a := range n.adj[u] {
			if rem[a] > n.eps {
				return a
			}
		}

		return -1
	}

	var routes []Route
	for next(n.s) >= 0 {
		path := []int{}
		at := map[int]int{n.s: 0} // position -> index into path where it was entered
		u := n.s
		for u != n.t {
			a := next(u)
			if a < 0 {
				// conservation makes this unreachable for a valid flow
				return routes
			}
			v := n.arcs[a].to
			if k, seen := at[v]; seen {
				cycle := append(append([]int(nil), path[k:]...), a)
				m := minOf(rem, cycle)
				for _, c := range cycle {
					rem[c] -= m
				}
				for _, c := range path[k:] {
					delete(at, n.arcs[c].to)
				}
				path = path[:k]
				u = v
				continue
			}
			path = append(path, a)
			at[v] = len(path)
			u = v
		}
		m := minOf(rem, path)
		for _, a := range path {
			rem[a] -= m
		}
		routes = append(routes, Route{Nodes: n.nodesOf(path), Flow: m})
	}

	return routes
}

func minOf(rem []float64, path []int) float64 {
	m := rem[path[0]]
	for _, a := range path[1:] {
		if rem[a] < m {
			m = rem[a]
		}
	}

	return m
}

// reach marks the positions reachable from the source through arcs with
// residual capacity.
func (n *network) reach() []bool {
	seen := make([]bool, len(n.ids))
	seen[n.s] = true
	queue := []int{n.s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range n.adj[u] {
			v := n.arcs[a].to
			if !seen[v] && n.arcs[a].cap > n.eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// cut returns the roads crossing from the source side to the rest.
func (n *network) cut() []Road {
	seen := n.reach()
	var out []Road
	for k, r := range n.roads {
		from, to := n.tail(2*k), n.arcs[2*k].to
		switch {
		case seen[from] && !seen[to]:
			out = append(out, r)
		case seen[to] && !seen[from]:
			out = append(out, Road{
				From:     r.Via.To,
				Via:      core.Via{To: r.From, Distance: r.Via.Distance, Condition: r.Via.Condition},
				Capacity: r.Capacity,
			})
		}
	}

	return out
}
