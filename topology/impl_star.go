// SPDX-License-Identifier: MIT
// Package: hopsim/topology
//
// impl_star.go - distance rows for a star: hub node 0 plus n-1 leaves.
//
// Contract:
//   - n ≥ MinNodes (else ErrInvalidNodeCount).
//   - Hub row: n-1 ones (every leaf is adjacent).
//   - Leaf row i (1 ≤ i < n): one 1 (the hub) and n-2 twos (other leaves via
//     the hub), laid out as [1 2 ... 2] rotated by i-1. The position of the 1
//     is arbitrary but fixed per row.

package topology

const (
	methodStar = "Star"
	hubNode    = 0
	hubHops    = 1
	leafHops   = 2
)

func buildStar(n int, dst []int) error {
	if err := checkNodes(methodStar, n); err != nil {
		return err
	}

	rowLen := n - 1
	hub := rowOf(dst, hubNode, rowLen)
	for j := range hub {
		hub[j] = hubHops
	}

	pattern := make([]int, rowLen)
	pattern[0] = hubHops
	for j := 1; j < rowLen; j++ {
		pattern[j] = leafHops
	}
	for i := 1; i < n; i++ {
		rotate(rowOf(dst, i, rowLen), pattern, i-1)
	}
	return nil
}
