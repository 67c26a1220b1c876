// SPDX-License-Identifier: MIT

// Package dfs defines types and options for depth-first search traversal,
// including pre-order and backtrack hooks, depth limiting and neighbor filtering.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// Visitation state of a node during DFS.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the explicit stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOriginNotFound indicates that the origin id does not exist in the graph.
	ErrOriginNotFound = errors.New("dfs: origin node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, origin, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E log d) when filters and hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(step Step) error

	// OnBacktrack, if non-nil, is invoked after all descendants of a node
	// have been explored, right after its name is popped from the path.
	OnBacktrack func(id core.NodeID)

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the origin. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each road before descending.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr core.NodeID, via core.Via) bool

	// Trace controls whether each Step carries a snapshot of the name path.
	// Snapshots cost O(depth) per node; disable for very deep networks.
	Trace bool

	err error
}

// DefaultOptions returns Options with no hooks, no depth limit and no filter.
func DefaultOptions() Options {
	return Options{MaxDepth: -1, Trace: true}
}

// WithTrace enables or disables name-path snapshots in Step.Path.
func WithTrace(on bool) Option {
	return func(o *Options) {
		o.Trace = on
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(step Step) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack installs fn as a post-order hook.
func WithOnBacktrack(fn func(id core.NodeID)) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// WithMaxDepth limits traversal depth. Values below -1 are rejected.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= -1 (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips roads for which fn returns false.
func WithFilterNeighbor(fn func(curr core.NodeID, via core.Via) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// Step is one entry of the traversal trace: the node entered, its depth and
// the chain of names from the origin down to it.
type Step struct {
	ID    core.NodeID
	Depth int
	Path  []string
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Origin is the node the search started from.
	Origin core.NodeID

	// Order records nodes in discovery sequence (pre-order).
	Order []core.NodeID

	// PostOrder records nodes in the sequence they finished.
	PostOrder []core.NodeID

	// Depth maps each visited node to its depth in the DFS tree.
	Depth map[core.NodeID]int

	// Parent maps each visited node except Origin to its DFS-tree predecessor.
	Parent map[core.NodeID]core.NodeID

	// Trace holds one Step per discovered node, in discovery order.
	Trace []Step

	// Unreached lists, ascending, every node of the graph that was not visited.
	Unreached []core.NodeID

	// SkippedNeighbors counts roads rejected by FilterNeighbor.
	SkippedNeighbors int
}
