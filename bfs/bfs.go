// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// queueItem pairs a node with its BFS level.
type queueItem struct {
	id    core.NodeID
	level int
}

// walker encapsulates mutable BFS state for a single run.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from origin,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrOriginNotFound for invalid input,
// ErrOptionViolation for bad options, or any hook error.
func BFS(g *core.Graph, origin core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g = g.Clone()
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasNode(origin) {
		return nil, fmt.Errorf("%w: %d", ErrOriginNotFound, origin)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
		res: &Result{
			Origin: origin,
			Order:  make([]core.NodeID, 0, n),
			Level:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	// Seed queue with the origin (no parent)
	w.enqueue(origin, 0, core.NoNode)
	if err := w.loop(); err != nil {
		return w.res, err
	}
	w.res.Unreached = unreached(g.NodeIDs(), w.visited)

	return w.res, nil
}

// enqueue marks id visited at level d, records its parent, calls OnEnqueue
// and appends it to the queue.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.visited[id] = true
	w.res.Level[id] = d
	if parent != core.NoNode {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, level: d})
}

// loop processes the queue until empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.level)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.level); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors offers the sorted neighbors of item, honoring the filter
// and MaxDepth, and enqueues each one seen for the first time.
func (w *walker) enqueueNeighbors(item queueItem) error {
	vias, err := w.graph.SortedNeighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	next := item.level + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, v := range vias {
		if !w.opts.FilterNeighbor(item.id, v) {
			continue
		}
		if !w.visited[v.To] {
			w.enqueue(v.To, next, item.id)
		}
	}

	return nil
}

// unreached returns the ids in all (already sorted) that were not visited.
func unreached(all []core.NodeID, visited map[core.NodeID]bool) []core.NodeID {
	out := make([]core.NodeID, 0, len(all)-len(visited))
	for _, id := range all {
		if !visited[id] {
			out = append(out, id)
		}
	}

	return out
}
