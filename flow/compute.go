// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/roadnet/core"
)

// Compute dispatches to the algorithm named by WithMethod
// (default MethodEdmondsKarp). Names are case-insensitive.
func Compute(ctx context.Context, g *core.Graph, source, sink core.NodeID, opts ...Option) (*Result, error) {
	switch m := strings.ToLower(resolve(opts).Method); m {
	case MethodEdmondsKarp:
		return EdmondsKarp(ctx, g, source, sink, opts...)
	case MethodDinic:
		return Dinic(ctx, g, source, sink, opts...)
	case MethodFordFulkerson:
		return FordFulkerson(ctx, g, source, sink, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
	}
}
