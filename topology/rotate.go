// SPDX-License-Identifier: MIT
// Package: hopsim/topology
//
// rotate.go - cyclic rotation of a canonical distance profile into a row.
//
// Contract:
//   - rotate writes len(profile) entries into dst; dst must be that long.
//   - dst[j] = profile[(j+shift) mod len(profile)], with shift reduced into
//     [0, len) first so negative and oversized shifts are well defined.
//   - Explicit index arithmetic, no intermediate slices.

package topology

// rotate fills dst with profile cyclically shifted left by shift positions.
// Panics if len(dst) != len(profile); constructors always size dst exactly.
func rotate(dst, profile []int, shift int) {
	m := len(profile)
	if len(dst) != m {
		panic("topology: rotate: destination length mismatch")
	}
	if m == 0 {
		return
	}

	s := shift % m
	if s < 0 {
		s += m
	}
	// Two straight copies instead of a modulo per element.
	n := copy(dst, profile[s:])
	copy(dst[n:], profile[:s])
}

// rowOf returns the sub-slice of the flat table holding row i.
func rowOf(dst []int, i, rowLen int) []int {
	return dst[i*rowLen : (i+1)*rowLen]
}
