package topology_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hopsim/topology"
)

// BenchmarkBuild measures table construction per kind at a few sizes.
func BenchmarkBuild(b *testing.B) {
	for _, kind := range topology.Kinds() {
		for _, n := range []int{16, 256, 2048} {
			b.Run(fmt.Sprintf("%s/n=%d", kind, n), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(n * (n - 1) * 8))
				for i := 0; i < b.N; i++ {
					_, _ = topology.Build(kind, n)
				}
			})
		}
	}
}
