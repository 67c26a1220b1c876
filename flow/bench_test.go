// SPDX-License-Identifier: MIT

package flow_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/flow"
)

// benchmarkGrid runs method corner to corner on a 60×60 grid.
func benchmarkGrid(b *testing.B, method string) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(60, 60))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = flow.Compute(context.Background(), g, 0, 60*60-1, flow.WithMethod(method))
	}
}

func BenchmarkEdmondsKarp(b *testing.B)   { benchmarkGrid(b, flow.MethodEdmondsKarp) }
func BenchmarkDinic(b *testing.B)         { benchmarkGrid(b, flow.MethodDinic) }
func BenchmarkFordFulkerson(b *testing.B) { benchmarkGrid(b, flow.MethodFordFulkerson) }
