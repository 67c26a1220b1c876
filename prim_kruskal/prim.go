// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// Prim computes the minimum spanning tree of g by growing a single tree from
// a root node (WithRoot; default the smallest id) using a min-heap of
// candidate roads.
//
// Error Conditions:
//   - ErrGraphNil      : g is nil.
//   - ErrRootNotFound  : the root is not a node of g.
//   - ErrInvalidWeight : the weight function priced a road below zero or NaN.
//   - ErrDisconnected  : g is empty, or the tree cannot reach every node.
//
// Ties on weight are broken by insertion sequence, so results are reproducible.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g = g.Clone()
	o := resolve(opts)

	ids := g.NodeIDs()
	if len(ids) == 0 {
		return nil, ErrDisconnected
	}
	root := o.Root
	if root == core.NoNode {
		root = ids[0]
	}
	if !g.HasNode(root) {
		return nil, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}

	n := len(ids)
	res := &Result{Roads: make([]Road, 0, n-1)}
	visited := make(map[core.NodeID]bool, n)
	pq := &roadPQ{}
	var seq int

	push := func(u core.NodeID) error {
		visited[u] = true
		vias, err := g.SortedNeighbors(u)
		if err != nil {
			return err
		}
		for _, v := range vias {
			if visited[v.To] {
				continue
			}
			w, err := weigh(o, u, v)
			if err != nil {
				return err
			}
			heap.Push(pq, &candidate{from: u, via: v, cost: w, seq: seq})
			seq++
		}

		return nil
	}

	if err := push(root); err != nil {
		return nil, err
	}
	for pq.Len() > 0 && len(res.Roads) < n-1 {
		c := heap.Pop(pq).(*candidate)
		if visited[c.via.To] {
			continue
		}
		res.add(c.from, c.via, c.cost)
		if err := push(c.via.To); err != nil {
			return nil, err
		}
	}
	if len(res.Roads) < n-1 {
		return nil, ErrDisconnected
	}

	return res, nil
}

// candidate is a road leaving the tree, waiting in the heap.
type candidate struct {
	from core.NodeID
	via  core.Via
	cost float64
	seq  int
}

// roadPQ implements heap.Interface, ordered by (cost, seq).
type roadPQ []*candidate

func (pq roadPQ) Len() int { return len(pq) }

func (pq roadPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq roadPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *roadPQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

func (pq *roadPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
