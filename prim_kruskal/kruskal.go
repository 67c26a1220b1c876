// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/roadnet/core"
)

type weightedRoad struct {
	from core.NodeID
	via  core.Via
	cost float64
}

// Kruskal computes the minimum spanning tree of g with a disjoint-set
// (union-find) using path compression and union by rank.
//
// Error Conditions:
//   - ErrGraphNil      : g is nil.
//   - ErrInvalidWeight : the weight function priced a road below zero or NaN.
//   - ErrDisconnected  : g is empty, or has more than one component.
//
// Steps:
//  1. Collect each road once (listed under its smaller endpoint, ids ascending,
//     insertion order within a node); skip self-loops.
//  2. Stable-sort by weight so ties keep that collection order.
//  3. Accept a road whenever its endpoints are in different sets; stop at |V|-1.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g = g.Clone()
	o := resolve(opts)

	ids := g.NodeIDs()
	if len(ids) == 0 {
		return nil, ErrDisconnected
	}
	res := &Result{Roads: make([]Road, 0, len(ids)-1)}
	if len(ids) == 1 {
		return res, nil
	}

	var roads []weightedRoad
	for _, u := range ids {
		vias, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range vias {
			if v.To <= u {
				continue
			}
			w, err := weigh(o, u, v)
			if err != nil {
				return nil, err
			}
			roads = append(roads, weightedRoad{from: u, via: v, cost: w})
		}
	}
	sort.SliceStable(roads, func(i, j int) bool { return roads[i].cost < roads[j].cost })

	parent := make(map[core.NodeID]core.NodeID, len(ids))
	rank := make(map[core.NodeID]int, len(ids))
	for _, id := range ids {
		parent[id] = id
	}
	find := func(u core.NodeID) core.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(a, b core.NodeID) {
		if rank[a] < rank[b] {
			a, b = b, a
		}
		parent[b] = a
		if rank[a] == rank[b] {
			rank[a]++
		}
	}

	for _, r := range roads {
		ru, rv := find(r.from), find(r.via.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		res.add(r.from, r.via, r.cost)
		if len(res.Roads) == len(ids)-1 {
			break
		}
	}
	if len(res.Roads) < len(ids)-1 {
		return nil, ErrDisconnected
	}

	return res, nil
}
