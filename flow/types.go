// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/roadnet/core"
)

// Sentinel errors.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound indicates the source node is not in the graph.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound indicates the sink node is not in the graph.
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrSameEndpoints indicates source and sink are the same node.
	ErrSameEndpoints = errors.New("flow: source and sink are the same node")

	// ErrNegativeCapacity indicates the capacity function priced a road below zero or NaN.
	ErrNegativeCapacity = errors.New("flow: negative road capacity")

	// ErrUnknownMethod indicates an unsupported algorithm name.
	ErrUnknownMethod = errors.New("flow: unknown method")
)

// Algorithm names accepted by WithMethod and Compute.
const (
	MethodEdmondsKarp   = "edmonds-karp"
	MethodDinic         = "dinic"
	MethodFordFulkerson = "ford-fulkerson"
)

// DefaultEpsilon is the residual capacity treated as zero.
const DefaultEpsilon = 1e-9

// EdgeError reports the road whose capacity was rejected.
type EdgeError struct {
	From, To core.NodeID
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("%v on road %d–%d: %g", ErrNegativeCapacity, e.From, e.To, e.Cap)
}

// Unwrap lets errors.Is match ErrNegativeCapacity.
func (e EdgeError) Unwrap() error { return ErrNegativeCapacity }

// UnitCapacity gives every road capacity 1, so the flow value counts
// road-disjoint routes.
func UnitCapacity(core.Via) float64 { return 1 }

// Options configures a max-flow run.
type Options struct {
	// Method selects the algorithm for Compute. Default MethodEdmondsKarp.
	Method string

	// Capacity maps a road to its capacity. Default UnitCapacity.
	Capacity core.WeightFunc

	// Epsilon is the residual capacity treated as zero. Default DefaultEpsilon.
	Epsilon float64

	// Logger receives one Debug record per augmentation. Default slog.Default().
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the algorithm used by Compute.
func WithMethod(name string) Option {
	return func(o *Options) { o.Method = name }
}

// WithCapacity sets the road capacity function. nil keeps the default.
func WithCapacity(fn core.WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Capacity = fn
		}
	}
}

// WithEpsilon sets the zero threshold. Non-positive values keep the default.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps > 0 {
			o.Epsilon = eps
		}
	}
}

// WithLogger traces augmentations at Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) Options {
	o := Options{
		Method:   MethodEdmondsKarp,
		Capacity: UnitCapacity,
		Epsilon:  DefaultEpsilon,
		Logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Road is one road carried by a Result, seen from its From side.
type Road struct {
	From     core.NodeID
	Via      core.Via
	Capacity float64
}

// Route is one path of the flow decomposition and the flow it carries.
type Route struct {
	Nodes []core.NodeID
	Flow  float64
}

// Result is the outcome of a max-flow run between two nodes.
type Result struct {
	Method string
	Source core.NodeID
	Sink   core.NodeID

	// Value is the maximum flow. Under UnitCapacity it is the number of
	// routes that share no road.
	Value float64

	// Routes decomposes the flow into source→sink paths.
	Routes []Route

	// Cut lists the roads of the minimum cut nearest the source. Closing
	// them separates Sink from Source; their capacities sum to Value.
	Cut []Road
}

func checkCapacity(c float64, from core.NodeID, to core.NodeID) error {
	if c < 0 || math.IsNaN(c) {
		return EdgeError{From: from, To: to, Cap: c}
	}

	return nil
}
