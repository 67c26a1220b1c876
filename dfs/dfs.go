// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// frame is one level of the explicit DFS stack: the node being expanded,
// its neighbors in ascending destination id, and the next index to try.
type frame struct {
	id    core.NodeID
	depth int
	nbs   []core.Via
	next  int
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	state map[core.NodeID]int
	stack []frame
	path  []string
	res   *Result
}

// DFS performs depth-first search on g from origin.
// Neighbors are tried in ascending destination id, so Order matches what a
// recursive DFS with sorted adjacency would produce. The traversal keeps an
// explicit stack instead of recursing, and the name path in each Step is
// pushed on enter and popped on backtrack.
// Returns ErrGraphNil, ErrOriginNotFound, ErrOptionViolation, or a wrapped hook error.
func DFS(g *core.Graph, origin core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g = g.Clone()
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(origin) {
		return nil, fmt.Errorf("%w: %d", ErrOriginNotFound, origin)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		state: make(map[core.NodeID]int, n),
		res: &Result{
			Origin:    origin,
			Order:     make([]core.NodeID, 0, n),
			PostOrder: make([]core.NodeID, 0, n),
			Depth:     make(map[core.NodeID]int, n),
			Parent:    make(map[core.NodeID]core.NodeID, n),
			Trace:     make([]Step, 0, n),
		},
	}

	if err := w.enter(origin, 0, core.NoNode); err != nil {
		return w.res, err
	}
	if err := w.run(); err != nil {
		return w.res, err
	}

	for _, id := range g.NodeIDs() {
		if w.state[id] == White {
			w.res.Unreached = append(w.res.Unreached, id)
		}
	}
	if w.res.Unreached == nil {
		w.res.Unreached = []core.NodeID{}
	}

	return w.res, nil
}

// enter marks id Gray, records it, pushes its name onto the path and its
// frame onto the stack, then fires OnVisit.
func (w *walker) enter(id core.NodeID, depth int, parent core.NodeID) error {
	nbs, err := w.graph.SortedNeighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", id, err)
	}

	w.state[id] = Gray
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = depth
	if parent != core.NoNode {
		w.res.Parent[id] = parent
	}
	w.path = append(w.path, w.graph.Name(id))
	step := Step{ID: id, Depth: depth}
	if w.opts.Trace {
		step.Path = append([]string(nil), w.path...)
	}
	w.res.Trace = append(w.res.Trace, step)
	w.stack = append(w.stack, frame{id: id, depth: depth, nbs: nbs})

	if w.opts.OnVisit != nil {
		if err = w.opts.OnVisit(step); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	return nil
}

// backtrack pops the top frame and its name, marks the node Black and fires OnBacktrack.
func (w *walker) backtrack() {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.path = w.path[:len(w.path)-1]
	w.state[top.id] = Black
	w.res.PostOrder = append(w.res.PostOrder, top.id)
	if w.opts.OnBacktrack != nil {
		w.opts.OnBacktrack(top.id)
	}
}

// run advances the top frame one neighbor at a time until the stack drains.
func (w *walker) run() error {
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbs) {
			w.backtrack()
			continue
		}
		v := top.nbs[top.next]
		top.next++

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.id, v) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.state[v.To] != White {
			continue
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		// enter may grow the stack, so top must not be used afterwards
		if err := w.enter(v.To, top.depth+1, top.id); err != nil {
			return err
		}
	}

	return nil
}
