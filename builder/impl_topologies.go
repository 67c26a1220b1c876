// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_topologies.go - deterministic Path, Cycle, Star and Grid constructors.
//
// Contract:
//   - Nodes are added in ascending index order (0..n-1).
//   - Roads are emitted in stable increasing order; length and condition come
//     from cfg.kmFn / cfg.conditionFn.
//
// Complexity: O(V + E) time, O(1) extra space.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roadnet/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"
	methodGrid  = "Grid"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minGridSide   = 1
)

// Path returns a Constructor that builds a simple path 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addRoad(methodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a ring 0–1–…–(n-1)–0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addRoad(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub 0 joined to spokes 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodStar, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addRoad(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols lattice; node r*cols+c sits at
// row r, column c and joins its right and lower neighbors.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: %dx%d below %dx%d: %w", methodGrid, rows, cols, minGridSide, minGridSide, ErrTooFewVertices)
		}
		if err := addNodes(methodGrid, g, cfg, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addRoad(methodGrid, g, cfg, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addRoad(methodGrid, g, cfg, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Shape resolves a shape name used by the CLI to its Constructor.
// n is the node count (rows for "grid"), cols is used by "grid" only and
// p by "random" only.
func Shape(name string, n, cols int, p float64) (Constructor, error) {
	switch strings.ToLower(name) {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "grid":
		return Grid(n, cols), nil
	case "random":
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}
