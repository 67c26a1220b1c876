// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (optionally wrapped with
// fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates that a referenced node id is not present
	// in the current index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrInvalidWeight indicates a weight function produced a negative or NaN cost.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")
)
