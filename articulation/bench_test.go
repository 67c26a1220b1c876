// SPDX-License-Identifier: MIT

package articulation_test

import (
	"testing"

	"github.com/katalvlaran/roadnet/articulation"
	"github.com/katalvlaran/roadnet/builder"
)

// BenchmarkFind_Grid runs the cut-vertex search on a 100×100 lattice.
func BenchmarkFind_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = articulation.Find(g)
	}
}
