package topology_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopsim/topology"
)

// sortedRow returns row i of t in ascending order.
func sortedRow(t *topology.DistanceTable, i int) []int {
	row := t.Row(i)
	sort.Ints(row)
	return row
}

// isRotation reports whether row is a cyclic rotation of profile.
func isRotation(row, profile []int) bool {
	if len(row) != len(profile) {
		return false
	}
	m := len(profile)
	for s := 0; s < m; s++ {
		match := true
		for j := 0; j < m; j++ {
			if row[j] != profile[(j+s)%m] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// TestBuild_Shape checks rows, row length and positivity for every kind
// across a range of sizes.
func TestBuild_Shape(t *testing.T) {
	t.Parallel()

	for _, kind := range topology.Kinds() {
		for n := topology.MinNodes; n <= 17; n++ {
			tbl, err := topology.Build(kind, n)
			require.NoError(t, err, "%s n=%d", kind, n)
			require.Equal(t, kind, tbl.Kind())
			require.Equal(t, n, tbl.N())
			require.Equal(t, n-1, tbl.RowLen())
			require.NoError(t, tbl.Validate(), "%s n=%d", kind, n)
			for i := 0; i < n; i++ {
				row := tbl.Row(i)
				require.Len(t, row, n-1)
				for _, d := range row {
					require.Positive(t, d)
					require.GreaterOrEqual(t, d, tbl.Min())
					require.LessOrEqual(t, d, tbl.Max())
				}
			}
		}
	}
}

// TestBuild_TrueDistances compares every row, as a multiset, against the
// closed-form distance of the topology.
func TestBuild_TrueDistances(t *testing.T) {
	t.Parallel()

	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	truth := map[topology.Kind]func(n, i, j int) int{
		topology.Ring: func(n, i, j int) int {
			d := abs(i - j)
			return min(d, n-d)
		},
		topology.DirectedRing: func(n, i, j int) int {
			return ((j-i)%n + n) % n
		},
		topology.Star: func(n, i, j int) int {
			if i == 0 || j == 0 {
				return 1
			}
			return 2
		},
		topology.Line: func(n, i, j int) int {
			return abs(i - j)
		},
	}

	for kind, dist := range truth {
		t.Run(kind.String(), func(t *testing.T) {
			for n := topology.MinNodes; n <= 12; n++ {
				tbl, err := topology.Build(kind, n)
				require.NoError(t, err)
				for i := 0; i < n; i++ {
					want := make([]int, 0, n-1)
					for j := 0; j < n; j++ {
						if j != i {
							want = append(want, dist(n, i, j))
						}
					}
					sort.Ints(want)
					require.Equal(t, want, sortedRow(tbl, i), "n=%d row=%d", n, i)
				}
			}
		})
	}
}

func TestBuild_Ring4(t *testing.T) {
	tbl, err := topology.Build(topology.Ring, 4)
	require.NoError(t, err)

	profile := []int{1, 2, 1}
	require.Equal(t, profile, tbl.Row(0))
	for i := 0; i < tbl.N(); i++ {
		assert.True(t, isRotation(tbl.Row(i), profile), "row %d = %v", i, tbl.Row(i))
	}
}

func TestBuild_Ring5Profile(t *testing.T) {
	tbl, err := topology.Build(topology.Ring, 5)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 2, 1}, tbl.Row(0))
	require.Equal(t, []int{2, 2, 1, 1}, tbl.Row(1))
}

func TestBuild_DirectedRing4(t *testing.T) {
	tbl, err := topology.Build(topology.DirectedRing, 4)
	require.NoError(t, err)

	profile := []int{1, 2, 3}
	for i := 0; i < tbl.N(); i++ {
		row := tbl.Row(i)
		assert.True(t, isRotation(row, profile), "row %d = %v", i, row)
		sum := 0
		for _, d := range row {
			sum += d
		}
		assert.Equal(t, 4*3/2, sum, "row %d sum", i)
	}
}

func TestBuild_Star5(t *testing.T) {
	tbl, err := topology.Build(topology.Star, 5)
	require.NoError(t, err)

	require.Equal(t, []int{1, 1, 1, 1}, tbl.Row(0))
	ones := make(map[int]bool)
	for i := 1; i < tbl.N(); i++ {
		require.Equal(t, []int{1, 2, 2, 2}, sortedRow(tbl, i), "leaf row %d", i)
		for j, d := range tbl.Row(i) {
			if d == 1 {
				ones[j] = true
			}
		}
	}
	// The hub's column moves from leaf to leaf.
	assert.Len(t, ones, 4)
}

func TestBuild_Star2(t *testing.T) {
	tbl, err := topology.Build(topology.Star, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1}, tbl.Row(0))
	require.Equal(t, []int{1}, tbl.Row(1))
}

func TestBuild_Line4(t *testing.T) {
	tbl, err := topology.Build(topology.Line, 4)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3}, tbl.Row(0))
	require.Equal(t, []int{2, 1, 1}, tbl.Row(2))
	require.Equal(t, []int{1, 1, 2}, sortedRow(tbl, 2))
	require.Equal(t, []int{3, 2, 1}, tbl.Row(3))
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	for _, kind := range topology.Kinds() {
		a, err := topology.Build(kind, 9)
		require.NoError(t, err)
		b, err := topology.Build(kind, 9)
		require.NoError(t, err)
		for i := 0; i < a.N(); i++ {
			require.Equal(t, a.Row(i), b.Row(i))
		}
	}
}

func TestBuild_Bounds(t *testing.T) {
	cases := []struct {
		kind     topology.Kind
		n        int
		min, max int
	}{
		{topology.Ring, 6, 1, 3},
		{topology.Ring, 7, 1, 3},
		{topology.DirectedRing, 6, 1, 5},
		{topology.Star, 6, 1, 2},
		{topology.Star, 2, 1, 1},
		{topology.Line, 6, 1, 5},
	}
	for _, tc := range cases {
		tbl, err := topology.Build(tc.kind, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.min, tbl.Min(), "%s n=%d", tc.kind, tc.n)
		assert.Equal(t, tc.max, tbl.Max(), "%s n=%d", tc.kind, tc.n)
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	for _, kind := range topology.Kinds() {
		for _, n := range []int{1, 0, -3} {
			tbl, err := topology.Build(kind, n)
			require.ErrorIs(t, err, topology.ErrInvalidNodeCount, "%s n=%d", kind, n)
			require.Nil(t, tbl)
		}
	}

	tbl, err := topology.Build(topology.Kind(0), 5)
	require.ErrorIs(t, err, topology.ErrUnknownTopology)
	require.Nil(t, tbl)

	tbl, err = topology.Build(topology.Kind(99), 1)
	require.ErrorIs(t, err, topology.ErrUnknownTopology)
	require.Nil(t, tbl)
}

// TestBuild_TooManyNodes checks that counts whose table cannot be allocated
// come back as an error instead of a makeslice panic.
func TestBuild_TooManyNodes(t *testing.T) {
	t.Parallel()

	for _, kind := range topology.Kinds() {
		for _, n := range []int{topology.MaxNodes + 1, math.MaxInt32, math.MaxInt} {
			var (
				tbl *topology.DistanceTable
				err error
			)
			require.NotPanics(t, func() { tbl, err = topology.Build(kind, n) }, "%s n=%d", kind, n)
			require.ErrorIs(t, err, topology.ErrTooManyNodes, "%s n=%d", kind, n)
			require.Nil(t, tbl)
		}
	}

	_, err := topology.FromRows(topology.Line, make([][]int, topology.MaxNodes+1))
	require.ErrorIs(t, err, topology.ErrTooManyNodes)
}

func TestBuildNamed(t *testing.T) {
	tbl, err := topology.BuildNamed("STAR", 5)
	require.NoError(t, err)
	require.Equal(t, topology.Star, tbl.Kind())

	tbl, err = topology.BuildNamed("mesh", 5)
	require.ErrorIs(t, err, topology.ErrUnknownTopology)
	require.Nil(t, tbl)

	tbl, err = topology.BuildNamed("line", 1)
	require.ErrorIs(t, err, topology.ErrInvalidNodeCount)
	require.Nil(t, tbl)
}

func TestRow_OutOfRangePanics(t *testing.T) {
	tbl, err := topology.Build(topology.Line, 3)
	require.NoError(t, err)
	require.Panics(t, func() { tbl.Row(3) })
	require.Panics(t, func() { tbl.Row(-1) })
}

func TestRow_ReturnsCopy(t *testing.T) {
	tbl, err := topology.Build(topology.Line, 3)
	require.NoError(t, err)
	row := tbl.Row(0)
	row[0] = 42
	require.Equal(t, 1, tbl.At(0, 0))
}

func TestValidate_Nil(t *testing.T) {
	var tbl *topology.DistanceTable
	require.ErrorIs(t, tbl.Validate(), topology.ErrMalformedTable)
}

func TestFromRows(t *testing.T) {
	tbl, err := topology.FromRows(topology.Line, [][]int{{1, 2}, {1, 1}, {2, 1}})
	require.NoError(t, err)
	require.Equal(t, 3, tbl.N())
	require.Equal(t, []int{1, 1}, tbl.Row(1))
	require.Equal(t, 1, tbl.Min())
	require.Equal(t, 2, tbl.Max())

	_, err = topology.FromRows(topology.Line, [][]int{{1}})
	require.ErrorIs(t, err, topology.ErrInvalidNodeCount)

	_, err = topology.FromRows(topology.Line, [][]int{{1, 2}, {1}, {2, 1}})
	require.ErrorIs(t, err, topology.ErrMalformedTable)

	_, err = topology.FromRows(topology.Line, [][]int{{1, 2}, {0, 1}, {2, 1}})
	require.ErrorIs(t, err, topology.ErrMalformedTable)

	_, err = topology.FromRows(topology.Kind(0), [][]int{{1}, {1}})
	require.ErrorIs(t, err, topology.ErrUnknownTopology)
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]int{{1}, {1}}
	tbl, err := topology.FromRows(topology.Ring, rows)
	require.NoError(t, err)
	rows[0][0] = 7
	require.Equal(t, 1, tbl.At(0, 0))
}
