// SPDX-License-Identifier: MIT

// Package builder generates synthetic road networks for benchmarks, fixtures
// and the CLI "generate" command.
//
// Topologies: Path, Cycle, Star, Grid and RandomSparse (G(n, p)). Road
// lengths come from a KMFn (ConstantKM, UniformKM) and conditions from a
// ConditionFn (ConstantCondition, MixedConditions); both may draw from the
// RNG set by WithSeed/WithRand, so equal seeds give identical networks.
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithKMFn(builder.UniformKM(10, 90))},
//	    builder.Grid(4, 5),
//	)
package builder
