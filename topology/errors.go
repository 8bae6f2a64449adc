// SPDX-License-Identifier: MIT
// Package: hopsim/topology
//
// errors.go - sentinel errors for the topology package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Context (kind, n, row) is attached with %w at the failure site.
//   - Builders never panic on bad input; they return one of these.

package topology

import "errors"

// ErrInvalidNodeCount indicates a node count below MinNodes. No table is
// produced; callers are expected to filter this before calling Build.
var ErrInvalidNodeCount = errors.New("topology: node count must be at least 2")

// ErrTooManyNodes indicates a node count above MaxNodes, whose table would
// not fit in memory.
var ErrTooManyNodes = errors.New("topology: node count exceeds maximum")

// ErrUnknownTopology indicates a kind or name outside the supported set
// (ring, oneway_ring, star, line).
var ErrUnknownTopology = errors.New("topology: unknown topology")

// ErrMalformedTable is returned by DistanceTable.Validate when the shape or
// content invariants do not hold (wrong row count or length, non-positive
// entries).
var ErrMalformedTable = errors.New("topology: malformed distance table")
