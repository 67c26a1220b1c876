// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on a road network.
//
// Dijkstra computes the minimum-cost path from a single source to every
// reachable municipality. Costs come from a core.WeightFunc, so the same run
// answers either "fewest kilometres" or "fewest condition-penalized kilometres".
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all roads (O(E)) to detect negative weights and fail fast.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     discarding an entry whose recorded distance exceeds the node's current best.
//   - Heap ties are broken by node id, so equal-cost alternatives resolve the same way every run.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/core"
)

// Dijkstra computes shortest distances from source to all other nodes of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance).
//  3. g must contain source (ErrVertexNotFound).
//  4. No road may weigh less than zero under the chosen weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, source core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	g = g.Clone()
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	ids := g.NodeIDs()
	adj := make(map[core.NodeID][]core.Via, len(ids))
	for _, id := range ids {
		vias, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", id, err)
		}
		for _, v := range vias {
			if w := cfg.Weight(v); w < 0 || math.IsNaN(w) {
				return nil, fmt.Errorf("%w: road %d→%d weight=%v", ErrNegativeWeight, id, v.To, w)
			}
		}
		adj[id] = vias
	}

	r := &runner{
		adj:     adj,
		options: cfg,
		res: &Result{
			Source:    source,
			Penalized: cfg.Penalized,
			Dist:      make(map[core.NodeID]float64, len(ids)),
			Prev:      make(map[core.NodeID]core.NodeID, len(ids)),
		},
		pq: make(nodePQ, 0, len(ids)),
	}
	r.init(ids)
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     map[core.NodeID][]core.Via // adjacency snapshot taken after the weight scan
	options Options
	res     *Result
	pq      nodePQ
}

// init sets dist = +Inf and prev = NoNode everywhere, then seeds the heap with source = 0.
func (r *runner) init(ids []core.NodeID) {
	for _, v := range ids {
		r.res.Dist[v] = math.Inf(1)
		r.res.Prev[v] = core.NoNode
	}
	r.res.Dist[r.res.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.res.Source, dist: 0})
}

// process is the core loop: pop the cheapest entry, drop it if stale, relax its roads.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// stale entry: a cheaper one for u was already processed
		if d > r.res.Dist[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.relax(u)
	}
}

// relax tries to improve every neighbor of u through u.
// Only a strictly smaller candidate replaces dist[v], so the first
// predecessor found at a given cost is kept.
func (r *runner) relax(u core.NodeID) {
	du := r.res.Dist[u]
	for _, e := range r.adj[u] {
		nd := du + r.options.Weight(e)
		if nd > r.options.MaxDistance {
			continue
		}
		if nd >= r.res.Dist[e.To] {
			continue
		}
		r.res.Dist[e.To] = nd
		r.res.Prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}
}

// nodeItem is a (node, distance-at-insertion) heap entry.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
