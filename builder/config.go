// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// config.go - immutable configuration resolved from BuilderOption values.

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/roadnet/core"
)

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	nameFn      func(int) string
	rng         *rand.Rand
	kmFn        KMFn
	conditionFn ConditionFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:      decimalName,
		rng:         nil,
		kmFn:        DefaultKMFn,
		conditionFn: ConstantCondition(core.Good),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalName yields "N0", "N1", ...
func decimalName(i int) string {
	return "N" + strconv.Itoa(i)
}
