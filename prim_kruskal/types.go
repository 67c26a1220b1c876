// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("prim_kruskal: graph is nil")

// ErrRootNotFound indicates that Prim's root is not a node of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root node not found")

// ErrDisconnected indicates that no spanning tree covers every node.
// It applies to an empty graph and to any graph with more than one component.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute for a method other than Prim or Kruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrInvalidWeight is returned when the weight function yields a negative or NaN cost.
var ErrInvalidWeight = errors.New("prim_kruskal: invalid road weight")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all roads and union-find).
const MethodKruskal = "kruskal"

// Options configures which algorithm runs and how roads are weighed.
type Options struct {
	// Method is MethodPrim or MethodKruskal.
	Method string

	// Root is Prim's starting node; core.NoNode picks the smallest id.
	Root core.NodeID

	// Weight prices each road. Default core.RawWeight.
	Weight core.WeightFunc
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Kruskal over raw kilometres.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Root: core.NoNode, Weight: core.RawWeight}
}

// WithMethod selects MethodPrim or MethodKruskal.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets Prim's starting node; Kruskal ignores it.
func WithRoot(root core.NodeID) Option {
	return func(o *Options) { o.Root = root }
}

// WithWeightFunc prices roads with fn, e.g. core.PenalizedWeight or a
// core.Penalties table. A nil fn is ignored.
func WithWeightFunc(fn core.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// Road is one road of the spanning tree.
type Road struct {
	From core.NodeID
	Via  core.Via
	Cost float64
}

// Result is a minimum spanning tree: the cheapest set of roads that keeps
// every municipality connected.
type Result struct {
	// Roads in the order the algorithm accepted them.
	Roads []Road

	// Cost is the total weight under the run's weight function.
	Cost float64

	// RawKM is the total length of the chosen roads.
	RawKM float64
}

func (r *Result) add(from core.NodeID, v core.Via, cost float64) {
	r.Roads = append(r.Roads, Road{From: from, Via: v, Cost: cost})
	r.Cost += cost
	r.RawKM += v.Distance
}

// Compute runs the algorithm selected by opts.
//
//	MethodKruskal → Kruskal(g, opts...)
//	MethodPrim    → Prim(g, opts...)
//	otherwise     → ErrUnknownMethod
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	o := resolve(opts)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g, opts...)
	case MethodPrim:
		return Prim(g, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func weigh(o Options, from core.NodeID, v core.Via) (float64, error) {
	w := o.Weight(v)
	if w < 0 || w != w {
		return 0, fmt.Errorf("%w: %d-%d weight=%v", ErrInvalidWeight, from, v.To, w)
	}

	return w, nil
}
