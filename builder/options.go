// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs (nil funcs).
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the node display-name generator: index -> name.
func WithNameScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithKMFn sets the road length generator.
func WithKMFn(fn KMFn) BuilderOption {
	if fn == nil {
		panic("builder: WithKMFn(nil)")
	}
	return func(c *builderConfig) {
		c.kmFn = fn
	}
}

// WithConditionFn sets the road condition generator.
func WithConditionFn(fn ConditionFn) BuilderOption {
	if fn == nil {
		panic("builder: WithConditionFn(nil)")
	}
	return func(c *builderConfig) {
		c.conditionFn = fn
	}
}
