// SPDX-License-Identifier: MIT

// Package articulation finds cut vertices (articulation points) and bridges of
// a road network using Tarjan's low-link depth-first search.
//
// File: articulation.go
// Role: iterative Tarjan over core.Graph, one DFS tree per connected component.
// Determinism: roots are taken in ascending id and neighbors in ascending
// destination id, so discovery times are reproducible.
// Concurrency: read-only on the graph; safe to run alongside other readers.
package articulation

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/katalvlaran/roadnet/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("articulation: graph is nil")

// Bridge is a critical road, normalized so that From < To.
type Bridge struct {
	From core.NodeID
	To   core.NodeID
}

// Result contains the articulation analysis of one graph.
type Result struct {
	// Points lists, ascending, every node whose removal increases the number
	// of connected components.
	Points []core.NodeID

	// Bridges lists, ascending by (From, To), every road whose removal
	// disconnects its endpoints. Parallel roads are never bridges.
	Bridges []Bridge

	// Components is the number of connected components (0 for an empty graph).
	Components int
}

// IsPoint reports whether id is an articulation point.
func (r *Result) IsPoint(id core.NodeID) bool {
	i := sort.Search(len(r.Points), func(i int) bool { return r.Points[i] >= id })

	return i < len(r.Points) && r.Points[i] == id
}

// Option configures Find.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes the summary debug line to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Phase constants for the iterative DFS.
const (
	phaseInit         = iota // assign discovery/low-link, mark visited
	phaseProcessEdges        // scan neighbors, descend into the first unvisited one
	phasePostChild           // returned from child: fold low-link, test conditions
	phaseFinalize            // root rule, pop
)

// frame is one simulated recursive call.
type frame struct {
	id         core.NodeID
	parent     core.NodeID
	nbs        []core.Via
	edgeIndex  int
	phase      int
	child      core.NodeID
	childCount int
	parentUsed bool // the tree road back to parent has been skipped once
}

// tarjan holds the traversal state for one Find call.
type tarjan struct {
	g       *core.Graph
	disc    map[core.NodeID]int
	low     map[core.NodeID]int
	timer   int
	isPoint map[core.NodeID]bool
	bridges []Bridge
	stack   []frame
}

// Find runs Tarjan's algorithm from every unvisited node in ascending id.
//
// For a DFS child w of u: low[u] = min(low[u], low[w]); u is an articulation
// point if it is a root with more than one DFS child, or a non-root with
// low[w] >= disc[u]; the road u–w is a bridge if low[w] > disc[u].
// For an already-visited neighbor w other than the tree road to u's parent,
// low[u] = min(low[u], disc[w]). Only one record to the parent is treated as
// the tree road, so a parallel road to the parent acts as a back edge.
// Self-loops are ignored.
//
// Complexity: O(V + E log d) time, O(V) space.
func Find(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g = g.Clone()
	o := options{logger: slog.Default()}
	for _, fn := range opts {
		fn(&o)
	}

	ids := g.NodeIDs()
	t := &tarjan{
		g:       g,
		disc:    make(map[core.NodeID]int, len(ids)),
		low:     make(map[core.NodeID]int, len(ids)),
		isPoint: make(map[core.NodeID]bool),
		stack:   make([]frame, 0, len(ids)),
	}

	res := &Result{Points: []core.NodeID{}, Bridges: []Bridge{}}
	for _, root := range ids {
		if _, seen := t.disc[root]; seen {
			continue
		}
		res.Components++
		if err := t.run(root); err != nil {
			return nil, err
		}
	}

	for _, id := range ids {
		if t.isPoint[id] {
			res.Points = append(res.Points, id)
		}
	}
	sort.Slice(t.bridges, func(i, j int) bool {
		if t.bridges[i].From != t.bridges[j].From {
			return t.bridges[i].From < t.bridges[j].From
		}
		return t.bridges[i].To < t.bridges[j].To
	})
	res.Bridges = append(res.Bridges, t.bridges...)

	o.logger.Debug("articulation analysis complete",
		slog.Int("nodes", len(ids)),
		slog.Int("points", len(res.Points)),
		slog.Int("bridges", len(res.Bridges)),
		slog.Int("components", res.Components),
	)

	return res, nil
}

// ArticulationPoints returns only the sorted cut vertices of g.
func ArticulationPoints(g *core.Graph) ([]core.NodeID, error) {
	res, err := Find(g)
	if err != nil {
		return nil, err
	}

	return res.Points, nil
}

// run processes the component containing root with an explicit stack.
func (t *tarjan) run(root core.NodeID) error {
	t.stack = append(t.stack[:0], frame{id: root, parent: core.NoNode, phase: phaseInit})

	for len(t.stack) > 0 {
		f := &t.stack[len(t.stack)-1]

		switch f.phase {
		case phaseInit:
			nbs, err := t.g.SortedNeighbors(f.id)
			if err != nil {
				return err
			}
			f.nbs = nbs
			t.disc[f.id] = t.timer
			t.low[f.id] = t.timer
			t.timer++
			f.phase = phaseProcessEdges

		case phaseProcessEdges:
			descended := false
			for f.edgeIndex < len(f.nbs) {
				w := f.nbs[f.edgeIndex].To
				f.edgeIndex++

				if w == f.id {
					continue
				}
				if w == f.parent && !f.parentUsed {
					f.parentUsed = true
					continue
				}
				if _, seen := t.disc[w]; !seen {
					f.phase = phasePostChild
					f.child = w
					f.childCount++
					t.stack = append(t.stack, frame{id: w, parent: f.id, phase: phaseInit})
					descended = true
					break
				}
				if t.disc[w] < t.low[f.id] {
					t.low[f.id] = t.disc[w]
				}
			}
			if !descended {
				f.phase = phaseFinalize
			}

		case phasePostChild:
			if t.low[f.child] < t.low[f.id] {
				t.low[f.id] = t.low[f.child]
			}
			if f.parent != core.NoNode && t.low[f.child] >= t.disc[f.id] {
				t.isPoint[f.id] = true
			}
			if t.low[f.child] > t.disc[f.id] {
				t.bridges = append(t.bridges, newBridge(f.id, f.child))
			}
			f.phase = phaseProcessEdges

		case phaseFinalize:
			if f.parent == core.NoNode && f.childCount > 1 {
				t.isPoint[f.id] = true
			}
			t.stack = t.stack[:len(t.stack)-1]
		}
	}

	return nil
}

func newBridge(a, b core.NodeID) Bridge {
	if a > b {
		a, b = b, a
	}

	return Bridge{From: a, To: b}
}
