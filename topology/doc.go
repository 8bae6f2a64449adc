// SPDX-License-Identifier: MIT

// Package topology builds per-node hop-distance tables for a small, closed
// set of network shapes: bidirectional ring, one-way ring, star and line.
//
// A DistanceTable holds, for each of the n nodes, one row of n-1 positive
// distances: the hop count from that node to every other node, in an
// unspecified column order. Only the multiset of a row matters to consumers,
// so rows are produced by rotating one canonical profile per topology
// rather than by running a shortest-path search per node.
//
//	ring, n=5          oneway_ring, n=4     star, n=4 (hub 0)    line, n=4
//	row 0: 1 2 2 1     row 0: 1 2 3         row 0: 1 1 1        row 0: 1 2 3
//	row 1: 2 2 1 1     row 1: 2 3 1         row 1: 1 2 2        row 1: 1 1 2
//	...                ...                  row 2: 2 1 2        row 2: 2 1 1
//	                                        row 3: 2 2 1        row 3: 3 2 1
//
// Build is the single entry point. It validates the node count, allocates the
// flat row-major table once and runs the constructor registered for the kind.
// The returned table is immutable and may be shared by any number of
// goroutines without locking.
//
// Errors are package-level sentinels; branch on them with errors.Is:
//
//	tbl, err := topology.Build(topology.Star, 5)
//	if errors.Is(err, topology.ErrInvalidNodeCount) { ... }
package topology
