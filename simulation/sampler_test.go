package simulation_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopsim/simulation"
	"github.com/katalvlaran/hopsim/topology"
)

// fixedSource always returns the same column (clamped into range).
type fixedSource int

func (f fixedSource) IntN(n int) int {
	return min(int(f), n-1)
}

// TestSampleStep_Bounds checks that a trial mean always lies within the
// table's min and max entries.
func TestSampleStep_Bounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	for _, kind := range topology.Kinds() {
		for _, n := range []int{2, 3, 7, 32} {
			tbl, err := topology.Build(kind, n)
			require.NoError(t, err)
			for i := 0; i < 500; i++ {
				x := simulation.SampleStep(tbl, rng)
				require.GreaterOrEqual(t, x, float64(tbl.Min()), "%s n=%d", kind, n)
				require.LessOrEqual(t, x, float64(tbl.Max()), "%s n=%d", kind, n)
			}
		}
	}
}

func TestSampleStep_FixedColumn(t *testing.T) {
	// Line n=4 column 0 holds 1, 1, 2, 3.
	tbl, err := topology.Build(topology.Line, 4)
	require.NoError(t, err)
	require.InDelta(t, 7.0/4.0, simulation.SampleStep(tbl, fixedSource(0)), 1e-12)

	// Column 2 holds 3, 2, 1, 1.
	require.InDelta(t, 7.0/4.0, simulation.SampleStep(tbl, fixedSource(2)), 1e-12)

	// Star hub column 0 is 1; leaves rotate [1 2 2 2], so column 0 is 1, 2, 2, 2.
	star, err := topology.Build(topology.Star, 5)
	require.NoError(t, err)
	require.InDelta(t, 8.0/5.0, simulation.SampleStep(star, fixedSource(0)), 1e-12)
}

func TestSampleStep_Degenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, kind := range topology.Kinds() {
		// Two nodes: every distance is exactly one hop.
		tbl, err := topology.Build(kind, 2)
		require.NoError(t, err)
		require.Equal(t, 1.0, simulation.SampleStep(tbl, rng), "%s", kind)
	}
}

// countingSource records the bound passed to IntN.
type countingSource struct {
	calls int
	bound int
}

func (c *countingSource) IntN(n int) int {
	c.calls++
	c.bound = n
	return 0
}

func TestSampleStep_DrawsOncePerRow(t *testing.T) {
	tbl, err := topology.Build(topology.Ring, 9)
	require.NoError(t, err)

	src := &countingSource{}
	simulation.SampleStep(tbl, src)
	require.Equal(t, 9, src.calls)
	require.Equal(t, 8, src.bound)
}
