// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a road network.
//
// Options:
//
//	– WithPenalized():     weigh roads by core.PenalizedWeight instead of km.
//	– WithPenalties(p):    weigh roads by a custom condition → multiplier table.
//	– WithWeightFunc(fn):  weigh roads by any non-negative function.
//	– WithMaxDistance(x):  nodes whose tentative cost would exceed x are not explored.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or destination does not exist in the graph.
//	– ErrNegativeWeight  if the weight function yields a negative or NaN cost.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrNoPath          if a destination is unreachable.
//	– ErrNoRoad          if two consecutive path nodes share no road.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/roadnet/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a node id does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative or NaN road cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the destination is not reachable from the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrNoRoad indicates two consecutive nodes of a path are not adjacent.
	ErrNoRoad = errors.New("dijkstra: no road between consecutive path nodes")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// Weight maps a road to its cost. Default core.RawWeight.
	Weight core.WeightFunc

	// Penalized is true when Weight applies condition multipliers.
	// It is reported back in Result for display.
	Penalized bool

	// MaxDistance caps exploration. Default +Inf (no cap).
	MaxDistance float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options that weigh roads by raw kilometres with no cap.
func DefaultOptions() Options {
	return Options{
		Weight:      core.RawWeight,
		MaxDistance: math.Inf(1),
	}
}

// WithPenalized weighs each road by its distance scaled by the condition multiplier.
func WithPenalized() Option {
	return func(o *Options) {
		o.Weight = core.PenalizedWeight
		o.Penalized = true
	}
}

// WithPenalties weighs roads with a caller-supplied multiplier table.
// Conditions absent from p weigh ×1.0.
func WithPenalties(p core.Penalties) Option {
	return func(o *Options) {
		if p == nil {
			p = core.DefaultPenalties()
		}
		o.Weight = p.Weight
		o.Penalized = true
	}
}

// WithWeightFunc installs an arbitrary cost function. A nil fn is ignored.
// The run is no longer reported as penalized, even after WithPenalized.
func WithWeightFunc(fn core.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
			o.Penalized = false
		}
	}
}

// WithMaxDistance sets a maximum cost threshold.
// Negative values surface ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// Result holds the distance and predecessor tables of one run.
//
// Dist[v] is +Inf for unreachable v; Prev[v] is core.NoNode for the source
// and for unreachable nodes.
type Result struct {
	Source    core.NodeID
	Penalized bool
	Dist      map[core.NodeID]float64
	Prev      map[core.NodeID]core.NodeID
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v core.NodeID) bool {
	d, ok := r.Dist[v]

	return ok && !math.IsInf(d, 1)
}

// PathTo returns the optimal path from Source to dest.
// Returns ErrVertexNotFound for ids outside the graph and ErrNoPath when
// dest is unreachable.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, dest)
	}
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w from %d to %d", ErrNoPath, r.Source, dest)
	}

	return ReconstructPath(r.Prev, dest), nil
}

// Leg is one hop of a route: the road chosen between two consecutive nodes
// and its cost under the run's weight function.
type Leg struct {
	From core.NodeID
	Via  core.Via
	Cost float64
}

// Route is the optimal route to one destination.
// When Found is false every other field is zero.
type Route struct {
	Path  []core.NodeID
	Legs  []Leg
	Cost  float64
	RawKM float64
	Found bool
}

// Comparison holds the raw and penalized routes between the same pair.
type Comparison struct {
	From      core.NodeID
	To        core.NodeID
	Raw       Route
	Penalized Route
}

// SamePath reports whether both runs chose the same node sequence.
func (c *Comparison) SamePath() bool {
	if c.Raw.Found != c.Penalized.Found || len(c.Raw.Path) != len(c.Penalized.Path) {
		return false
	}
	for i := range c.Raw.Path {
		if c.Raw.Path[i] != c.Penalized.Path[i] {
			return false
		}
	}

	return true
}

// Detour is the extra kilometres driven by the penalized route compared with
// the raw optimum. It is 0 when either route is missing.
func (c *Comparison) Detour() float64 {
	if !c.Raw.Found || !c.Penalized.Found {
		return 0
	}

	return c.Penalized.RawKM - c.Raw.RawKM
}

// Entry is one row of a Table: a destination and its route.
type Entry struct {
	Dest  core.NodeID
	Route Route
}
