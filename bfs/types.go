// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrOriginNotFound is returned when the origin id is absent.
	ErrOriginNotFound = errors.New("bfs: origin node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for nodes the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a node is enqueued, with its level.
	OnEnqueue func(id core.NodeID, level int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id core.NodeID, level int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.NodeID, level int) error

	// MaxDepth, if > 0, stops exploring beyond this level.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip roads by returning false.
	// Called for each record curr→neighbor.
	FilterNeighbor func(curr core.NodeID, via core.Via) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue:      func(core.NodeID, int) {},
		OnDequeue:      func(core.NodeID, int) {},
		OnVisit:        func(core.NodeID, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(core.NodeID, core.Via) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.NodeID, level int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id core.NodeID, level int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.NodeID, level int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given level.
//
//	d > 0: limit to level d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips roads when fn returns false.
func WithFilterNeighbor(fn func(curr core.NodeID, via core.Via) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Origin is the node the search started from.
	Origin core.NodeID

	// Order lists visited nodes in visit sequence.
	Order []core.NodeID

	// Level maps each visited node to its hop distance from Origin (Origin = 0).
	Level map[core.NodeID]int

	// Parent maps each visited node except Origin to its BFS-tree predecessor.
	Parent map[core.NodeID]core.NodeID

	// Unreached lists, ascending, every node of the graph that was not visited.
	Unreached []core.NodeID
}

// Reached reports whether id was visited.
func (r *Result) Reached(id core.NodeID) bool {
	_, ok := r.Level[id]

	return ok
}

// PathTo reconstructs the fewest-hop path from Origin to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	// build reversed path
	path := []core.NodeID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get origin → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
