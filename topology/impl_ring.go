// SPDX-License-Identifier: MIT
// Package: hopsim/topology
//
// impl_ring.go - distance rows for a bidirectional ring of n nodes.
//
// Contract:
//   - n ≥ MinNodes (else ErrInvalidNodeCount).
//   - Distance at circular offset d (1 ≤ d ≤ n-1) is min(d, n-d).
//   - Canonical profile: 1, 2, ..., ⌊(n-1)/2⌋, then n/2 if n is even, then
//     the ascending part mirrored back down to 1.
//   - Row i is the profile rotated by i.
//
// Complexity:
//   - Time: O(n) for the profile + O(n²) to fill rows.
//   - Space: O(n) extra for the profile.

package topology

const methodRing = "Ring"

func buildRing(n int, dst []int) error {
	if err := checkNodes(methodRing, n); err != nil {
		return err
	}

	profile := ringProfile(n)
	rowLen := n - 1
	for i := 0; i < n; i++ {
		rotate(rowOf(dst, i, rowLen), profile, i)
	}
	return nil
}

// ringProfile returns the n-1 ring distances for offsets 1..n-1.
// n=4 → [1 2 1]; n=5 → [1 2 2 1]; n=2 → [1].
func ringProfile(n int) []int {
	rowLen := n - 1
	profile := make([]int, rowLen)

	half := rowLen / 2
	for d := 1; d <= half; d++ {
		profile[d-1] = d      // ascending side
		profile[rowLen-d] = d // mirrored descending side
	}
	// Even n has a single antipodal node at exactly n/2 hops.
	if n%2 == 0 {
		profile[half] = n / 2
	}
	return profile
}
