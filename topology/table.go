// SPDX-License-Identifier: MIT
// Package: hopsim/topology
//
// table.go - the immutable distance table produced by Build.
//
// Layout:
//   - n rows, each of rowLen = n-1 entries, stored row-major in one slice.
//   - Entry (i, j) lives at distances[i*rowLen + j].
//   - Column j of row i is "some other node"; which one is not tracked.
//
// Concurrency:
//   - No method mutates the table after Build returns, so concurrent reads
//     need no synchronization.

package topology

import "fmt"

// DistanceTable stores, for every node, its hop distances to all other nodes.
type DistanceTable struct {
	kind      Kind
	n         int
	rowLen    int
	distances []int
	min, max  int
}

// Kind returns the topology the table was built for.
func (t *DistanceTable) Kind() Kind { return t.kind }

// N returns the number of nodes (and rows).
func (t *DistanceTable) N() int { return t.n }

// RowLen returns the number of entries per row, always N()-1.
func (t *DistanceTable) RowLen() int { return t.rowLen }

// At returns the distance stored at (row, col). At is unchecked beyond slice
// bounds; row must be in [0, N()) and col in [0, RowLen()).
func (t *DistanceTable) At(row, col int) int {
	return t.distances[row*t.rowLen+col]
}

// Row returns a copy of row i. Panics if i is out of range.
func (t *DistanceTable) Row(i int) []int {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("topology: row %d out of range [0,%d)", i, t.n))
	}
	out := make([]int, t.rowLen)
	copy(out, t.distances[i*t.rowLen:(i+1)*t.rowLen])
	return out
}

// Min returns the smallest entry in the table.
func (t *DistanceTable) Min() int { return t.min }

// Max returns the largest entry in the table.
func (t *DistanceTable) Max() int { return t.max }

// Validate re-checks the shape invariants: n > 1, exactly n rows of n-1
// entries, and every entry positive. Build always yields a valid table; this
// is for callers that want to assert it (tests, the verify command).
func (t *DistanceTable) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrMalformedTable)
	}
	if t.n < MinNodes {
		return fmt.Errorf("%w: n=%d", ErrMalformedTable, t.n)
	}
	if t.rowLen != t.n-1 {
		return fmt.Errorf("%w: row length %d, want %d", ErrMalformedTable, t.rowLen, t.n-1)
	}
	if len(t.distances) != t.n*t.rowLen {
		return fmt.Errorf("%w: %d entries, want %d", ErrMalformedTable, len(t.distances), t.n*t.rowLen)
	}
	for idx, d := range t.distances {
		if d <= 0 {
			return fmt.Errorf("%w: row %d col %d holds %d", ErrMalformedTable, idx/t.rowLen, idx%t.rowLen, d)
		}
	}
	return nil
}

// scanBounds caches min and max once the constructor has filled the table.
func (t *DistanceTable) scanBounds() {
	t.min, t.max = t.distances[0], t.distances[0]
	for _, d := range t.distances[1:] {
		if d < t.min {
			t.min = d
		}
		if d > t.max {
			t.max = d
		}
	}
}

// FromRows assembles a table from explicit rows, copying them. It is meant
// for distances computed elsewhere (fixtures, external tools); the result is
// shape-checked with Validate but its values are trusted, so pair it with
// netgraph.CheckTable when they need proving.
func FromRows(kind Kind, rows [][]int) (*DistanceTable, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("FromRows: %w: %s", ErrUnknownTopology, kind)
	}
	n := len(rows)
	if n < MinNodes {
		return nil, fmt.Errorf("FromRows: n=%d < min=%d: %w", n, MinNodes, ErrInvalidNodeCount)
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("FromRows: n=%d > max=%d: %w", n, MaxNodes, ErrTooManyNodes)
	}

	rowLen := n - 1
	t := &DistanceTable{
		kind:      kind,
		n:         n,
		rowLen:    rowLen,
		distances: make([]int, 0, n*rowLen),
	}
	for i, row := range rows {
		if len(row) != rowLen {
			return nil, fmt.Errorf("FromRows: %w: row %d has %d entries, want %d", ErrMalformedTable, i, len(row), rowLen)
		}
		t.distances = append(t.distances, row...)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	t.scanBounds()

	return t, nil
}
