// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// weight_fn.go - road length and condition generators.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/roadnet/core"
)

// DefaultKM is the length given to every road when no KMFn is configured.
const DefaultKM float64 = 1

// KMFn produces a road length given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type KMFn func(rng *rand.Rand) float64

// DefaultKMFn always returns DefaultKM.
func DefaultKMFn(_ *rand.Rand) float64 {
	return DefaultKM
}

// ConstantKM returns a KMFn that always yields value. Panics if value < 0.
func ConstantKM(value float64) KMFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantKM: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformKM returns a KMFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. With a nil rng it yields min.
func UniformKM(min, max float64) KMFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformKM: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// ConditionFn produces a road condition given an optional *rand.Rand source.
type ConditionFn func(rng *rand.Rand) core.Condition

// ConstantCondition returns a ConditionFn that always yields c.
func ConstantCondition(c core.Condition) ConditionFn {
	return func(_ *rand.Rand) core.Condition {
		return c
	}
}

// MixedConditions draws Good with probability pGood, Fair with pFair and Poor
// otherwise. Panics unless 0 ≤ pGood, pFair and pGood+pFair ≤ 1.
// With a nil rng it yields Good.
func MixedConditions(pGood, pFair float64) ConditionFn {
	if pGood < 0 || pFair < 0 || pGood+pFair > 1 {
		panic(fmt.Sprintf("MixedConditions: invalid split good=%g fair=%g", pGood, pFair))
	}

	return func(rng *rand.Rand) core.Condition {
		if rng == nil {
			return core.Good
		}
		x := rng.Float64()
		switch {
		case x < pGood:
			return core.Good
		case x < pGood+pFair:
			return core.Fair
		default:
			return core.Poor
		}
	}
}
