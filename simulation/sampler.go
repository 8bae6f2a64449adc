// SPDX-License-Identifier: MIT

package simulation

import "github.com/katalvlaran/hopsim/topology"

// Source is the randomness SampleStep needs: a uniform int in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// SampleStep runs one trial: for every row of t it draws one column
// uniformly from [0, n-1), reads that distance, and returns the mean of
// the n draws. The table is only read; t must be a table produced by
// topology.Build (or validated), no checks are repeated here.
func SampleStep(t *topology.DistanceTable, src Source) float64 {
	n := t.N()
	rowLen := t.RowLen()

	sum := 0
	for row := 0; row < n; row++ {
		sum += t.At(row, src.IntN(rowLen))
	}
	return float64(sum) / float64(n)
}
