// SPDX-License-Identifier: MIT
// Package: hopsim/topology
//
// api.go - the Build orchestrator and the per-kind constructor registry.
//
// Design contract:
//   - One orchestrator: Build(kind, n). Validates n against
//     [MinNodes, MaxNodes] before allocating, allocates the flat
//     table once, runs the constructor registered for kind.
//   - Constructors live in impl_*.go, one per kind, and only fill dst.
//   - Never panic on caller input; return sentinel errors wrapped with %w.
//   - Determinism: the same (kind, n) always yields an identical table.

package topology

import "fmt"

// MinNodes is the smallest node count any topology accepts. With one node
// there is no "other node" to send to, so every row would be empty.
const MinNodes = 2

// MaxNodes is the largest node count Build accepts. The table holds
// n*(n-1) ints, about 8 GiB at this size on 64-bit platforms.
const MaxNodes = 1 << 15

const methodBuild = "Build"

// Constructor fills dst, a zeroed row-major slice of n*(n-1) entries, with
// the distance rows for an n-node topology. Constructors MUST:
//   - Re-check n with checkNodes (ErrInvalidNodeCount, ErrTooManyNodes).
//   - Write every entry of dst exactly once with a positive distance.
//   - Be pure: no shared state, no randomness.
type Constructor func(n int, dst []int) error

// constructors is the closed registry consulted by Build.
var constructors = map[Kind]Constructor{
	Ring:         buildRing,
	DirectedRing: buildDirectedRing,
	Star:         buildStar,
	Line:         buildLine,
}

// Build constructs the distance table of the given kind with n nodes.
//
// Errors:
//   - ErrInvalidNodeCount if n < MinNodes.
//   - ErrTooManyNodes if n > MaxNodes.
//   - ErrUnknownTopology if kind is not one of Ring, DirectedRing, Star, Line.
//
// On error no table is returned.
//
// Complexity: O(n²) time and space; the table itself is the dominant cost.
func Build(kind Kind, n int) (*DistanceTable, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", methodBuild, ErrUnknownTopology, kind)
	}
	if err := checkNodes(methodBuild+"("+kind.String()+")", n); err != nil {
		return nil, err
	}

	rowLen := n - 1
	t := &DistanceTable{
		kind:      kind,
		n:         n,
		rowLen:    rowLen,
		distances: make([]int, n*rowLen),
	}
	if err := ctor(n, t.distances); err != nil {
		return nil, fmt.Errorf("%s(%s): %w", methodBuild, kind, err)
	}
	t.scanBounds()

	return t, nil
}

// BuildNamed is Build with the kind resolved by ParseKind.
func BuildNamed(name string, n int) (*DistanceTable, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	return Build(kind, n)
}

// checkNodes is the shared precondition of every constructor.
func checkNodes(method string, n int) error {
	if n < MinNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinNodes, ErrInvalidNodeCount)
	}
	if n > MaxNodes {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, n, MaxNodes, ErrTooManyNodes)
	}
	return nil
}
