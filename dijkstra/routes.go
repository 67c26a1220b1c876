// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/core"
)

// ShortestPaths runs Dijkstra from origin with either raw or penalized
// weights and returns the bare distance and predecessor tables.
func ShortestPaths(g *core.Graph, origin core.NodeID, penalized bool) (map[core.NodeID]float64, map[core.NodeID]core.NodeID, error) {
	var opts []Option
	if penalized {
		opts = append(opts, WithPenalized())
	}
	res, err := Dijkstra(g, origin, opts...)
	if err != nil {
		return nil, nil, err
	}

	return res.Dist, res.Prev, nil
}

// ReconstructPath walks prev from dest back to the node that has no
// predecessor and returns the sequence in forward order.
// For dest == origin the result is the single-element path.
// Callers check reachability (dist == +Inf) first; for an unreachable dest
// the result is just [dest].
func ReconstructPath(prev map[core.NodeID]core.NodeID, dest core.NodeID) []core.NodeID {
	path := []core.NodeID{dest}
	// bounded by len(prev) so a malformed table cannot loop forever
	for steps, cur := 0, dest; steps <= len(prev); steps++ {
		p, ok := prev[cur]
		if !ok || p == core.NoNode {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums the cost of path under weight, taking the cheapest parallel
// road for each hop. Returns ErrNoRoad if two consecutive nodes are not adjacent.
func PathCost(g *core.Graph, path []core.NodeID, weight core.WeightFunc) (float64, error) {
	legs, err := pathLegs(g, path, weight)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, l := range legs {
		total += l.Cost
	}

	return total, nil
}

// pathLegs resolves each hop of path to its cheapest road under weight.
func pathLegs(g *core.Graph, path []core.NodeID, weight core.WeightFunc) ([]Leg, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if weight == nil {
		weight = core.RawWeight
	}
	legs := make([]Leg, 0, len(path))
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		vias, err := g.Neighbors(from)
		if err != nil {
			return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, from)
		}
		best := Leg{From: from, Cost: math.Inf(1)}
		for _, v := range vias {
			if v.To != to {
				continue
			}
			if c := weight(v); c < best.Cost {
				best.Via, best.Cost = v, c
			}
		}
		if math.IsInf(best.Cost, 1) {
			return nil, fmt.Errorf("%w: %d-%d", ErrNoRoad, from, to)
		}
		legs = append(legs, best)
	}

	return legs, nil
}

// routeTo builds the Route to dest from a finished run.
func routeTo(g *core.Graph, res *Result, weight core.WeightFunc, dest core.NodeID) (Route, error) {
	if !res.Reachable(dest) {
		return Route{}, nil
	}
	path := ReconstructPath(res.Prev, dest)
	legs, err := pathLegs(g, path, weight)
	if err != nil {
		return Route{}, err
	}
	rt := Route{Path: path, Legs: legs, Cost: res.Dist[dest], Found: true}
	for _, l := range legs {
		rt.RawKM += l.Via.Distance
	}

	return rt, nil
}

// RouteBetween runs Dijkstra from "from" and returns the route to "to".
// An unreachable destination yields Route{Found: false} and no error.
func RouteBetween(g *core.Graph, from, to core.NodeID, opts ...Option) (Route, error) {
	if g == nil {
		return Route{}, ErrNilGraph
	}
	g = g.Clone()
	if !g.HasNode(to) {
		return Route{}, fmt.Errorf("%w: destination %d", ErrVertexNotFound, to)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	res, err := Dijkstra(g, from, opts...)
	if err != nil {
		return Route{}, err
	}

	return routeTo(g, res, cfg.Weight, to)
}

// Compare runs two independent searches from "from" to "to": one on raw
// kilometres and one with condition penalties. penalizedOpts customise the
// second run (e.g. WithPenalties); WithPenalized is always applied first.
func Compare(g *core.Graph, from, to core.NodeID, penalizedOpts ...Option) (*Comparison, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	g = g.Clone()
	raw, err := RouteBetween(g, from, to)
	if err != nil {
		return nil, err
	}
	pen, err := RouteBetween(g, from, to, append([]Option{WithPenalized()}, penalizedOpts...)...)
	if err != nil {
		return nil, err
	}

	return &Comparison{From: from, To: to, Raw: raw, Penalized: pen}, nil
}

// Table returns the route from source to every other node in ascending id.
// Unreachable destinations are present with Found == false.
func Table(g *core.Graph, source core.NodeID, opts ...Option) ([]Entry, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	g = g.Clone()
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	res, err := Dijkstra(g, source, opts...)
	if err != nil {
		return nil, err
	}

	ids := g.NodeIDs()
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		if id == source {
			continue
		}
		rt, err := routeTo(g, res, cfg.Weight, id)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Dest: id, Route: rt})
	}

	return out, nil
}
