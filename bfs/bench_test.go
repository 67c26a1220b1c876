// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/builder"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of 10,001 municipalities.
func BenchmarkBFS_Chain(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(10001))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on a 100×100 lattice from a corner.
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
