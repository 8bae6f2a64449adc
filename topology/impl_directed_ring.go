// SPDX-License-Identifier: MIT
// Package: hopsim/topology
//
// impl_directed_ring.go - distance rows for a one-way ring of n nodes.
//
// Contract:
//   - n ≥ MinNodes (else ErrInvalidNodeCount).
//   - Messages travel forward only, so the node d steps ahead is d hops away.
//   - Canonical profile 1..n-1; row i is the profile rotated by i.
//   - Every row sums to n(n-1)/2.

package topology

const methodDirectedRing = "DirectedRing"

func buildDirectedRing(n int, dst []int) error {
	if err := checkNodes(methodDirectedRing, n); err != nil {
		return err
	}

	rowLen := n - 1
	profile := make([]int, rowLen)
	for d := 1; d <= rowLen; d++ {
		profile[d-1] = d
	}
	for i := 0; i < n; i++ {
		rotate(rowOf(dst, i, rowLen), profile, i)
	}
	return nil
}
