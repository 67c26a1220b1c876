// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n, p) road network.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - For 0 < p < 1 an RNG is required (ErrNeedRandSource).
//   - Pairs (i, j) with i < j are tried in ascending order; no self-loops.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that adds each of the n(n-1)/2 possible
// roads independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addNodes(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1 || (p > 0 && cfg.rng.Float64() < p)
				if !keep {
					continue
				}
				if err := addRoad(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
