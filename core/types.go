// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Via, Condition, weight functions, sentinel errors and the Graph type.
// Concurrency:
//   - Graph is guarded by a single sync.RWMutex (mu). Mutators take the write
//     lock, queries the read lock.
// Determinism:
//   - Adjacency records keep insertion order; every enumeration of node ids is
//     sorted ascending.

package core

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node id that was never added.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrInvalidNodeID indicates a negative node id.
	ErrInvalidNodeID = errors.New("core: node id must be non-negative")

	// ErrBadDistance indicates a negative, NaN or infinite edge distance.
	ErrBadDistance = errors.New("core: distance must be a finite non-negative number")

	// ErrUnknownCondition indicates a condition tag outside {Good, Fair, Poor}.
	ErrUnknownCondition = errors.New("core: unknown road condition")
)

// NodeID identifies a node. Ids are dense and assigned by the caller, starting at 0.
type NodeID int

// NoNode is the "none" marker used for absent predecessors and parents.
const NoNode NodeID = -1

// UnknownName is returned by Graph.Name for ids that are not in the graph.
const UnknownName = "Unknown"

// Condition is the qualitative state of a road.
type Condition string

// The closed set of road conditions. Matching is case-sensitive.
const (
	Good Condition = "Good"
	Fair Condition = "Fair"
	Poor Condition = "Poor"
)

// ParseCondition maps a tag onto a Condition, rejecting anything outside the closed set.
func ParseCondition(tag string) (Condition, error) {
	switch c := Condition(tag); c {
	case Good, Fair, Poor:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCondition, tag)
	}
}

// Valid reports whether c is one of Good, Fair or Poor.
func (c Condition) Valid() bool {
	return c == Good || c == Fair || c == Poor
}

// Multiplier returns the penalty factor for c: Poor 1.5, Fair 1.2, anything else 1.0.
func (c Condition) Multiplier() float64 {
	switch c {
	case Poor:
		return 1.5
	case Fair:
		return 1.2
	default:
		return 1.0
	}
}

// Node is a location in the network.
type Node struct {
	ID   NodeID
	Name string
}

// Via is one directed adjacency record of an undirected road.
// Adding a road a–b stores a Via{To: b} under a and a Via{To: a} under b,
// each carrying the same Distance and Condition.
type Via struct {
	// To is the destination node id.
	To NodeID

	// Distance is the raw length in kilometers.
	Distance float64

	// Condition is the road state; it only affects penalized weights.
	Condition Condition
}

// Penalized returns Distance scaled by the condition multiplier.
func (v Via) Penalized() float64 {
	return v.Distance * v.Condition.Multiplier()
}

// WeightFunc maps an adjacency record to a traversal cost.
type WeightFunc func(v Via) float64

// RawWeight weighs a road by its distance.
func RawWeight(v Via) float64 { return v.Distance }

// PenalizedWeight weighs a road by its condition-penalized distance.
func PenalizedWeight(v Via) float64 { return v.Penalized() }

// Penalties is a configurable condition→multiplier table.
// Conditions missing from the table weigh ×1.0.
type Penalties map[Condition]float64

// DefaultPenalties returns the standard multipliers used by PenalizedWeight.
func DefaultPenalties() Penalties {
	return Penalties{Good: 1.0, Fair: 1.2, Poor: 1.5}
}

// Weight is a WeightFunc backed by the table.
func (p Penalties) Weight(v Via) float64 {
	if m, ok := p[v.Condition]; ok {
		return v.Distance * m
	}

	return v.Distance
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLogger routes the graph's diagnostics (rejected edges) to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// Graph is an undirected weighted road network.
//
// names holds every node ever added; adjacency holds, per node, its outgoing
// records in insertion order. Every Via.To references a key of names.
type Graph struct {
	mu sync.RWMutex

	names     map[NodeID]string
	adjacency map[NodeID][]Via
	records   int // total adjacency records (2 per road)

	logger *slog.Logger
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		names:     make(map[NodeID]string),
		adjacency: make(map[NodeID][]Via),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// validDistance reports whether d is a finite, non-negative number.
func validDistance(d float64) bool {
	return d >= 0 && !math.IsInf(d, 1) && !math.IsNaN(d)
}
