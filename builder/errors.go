// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownShape is returned by Shape for an unrecognized name.
var ErrUnknownShape = errors.New("builder: unknown shape")
