// SPDX-License-Identifier: MIT

package netgraph

import "errors"

// Sentinel errors for graph construction, traversal and table checks.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("netgraph: graph is nil")

	// ErrSourceOutOfRange is returned when a BFS source is not in [0, n).
	ErrSourceOutOfRange = errors.New("netgraph: source vertex out of range")

	// ErrTableMismatch is returned by CheckTable when a table row differs
	// from the BFS distances of the corresponding vertex.
	ErrTableMismatch = errors.New("netgraph: distance table does not match graph")
)
