// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are declared in impl_*.go and add nodes 0..n-1 named by cfg.nameFn.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they must preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts nodes 0..n-1 using cfg.nameFn.
func addNodes(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddNode(core.NodeID(i), cfg.nameFn(i)); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, i, err)
		}
	}

	return nil
}

// addRoad draws kilometres and condition from cfg and adds the road u–v.
func addRoad(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	km := cfg.kmFn(cfg.rng)
	cond := cfg.conditionFn(cfg.rng)
	if err := g.AddEdge(core.NodeID(u), core.NodeID(v), km, cond); err != nil {
		return fmt.Errorf("%s: AddEdge(%d–%d, %gkm, %s): %w", method, u, v, km, cond, err)
	}

	return nil
}
