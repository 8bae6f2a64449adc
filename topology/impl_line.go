// SPDX-License-Identifier: MIT
// Package: hopsim/topology
//
// impl_line.go - distance rows for a line (path) 0 - 1 - ... - n-1.
//
// Contract:
//   - n ≥ MinNodes (else ErrInvalidNodeCount).
//   - Row i lists the left-hand distances i, i-1, ..., 1 followed by the
//     right-hand distances 1, 2, ..., n-1-i.
//   - No rotation: each row has its own multiset.

package topology

const methodLine = "Line"

func buildLine(n int, dst []int) error {
	if err := checkNodes(methodLine, n); err != nil {
		return err
	}

	rowLen := n - 1
	for i := 0; i < n; i++ {
		row := rowOf(dst, i, rowLen)
		col := 0
		for d := i; d >= 1; d-- {
			row[col] = d
			col++
		}
		for d := 1; d <= n-1-i; d++ {
			row[col] = d
			col++
		}
	}
	return nil
}
