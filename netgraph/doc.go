// SPDX-License-Identifier: MIT

// Package netgraph is an explicit adjacency model of the topologies in
// package topology, plus breadth-first search over it.
//
// It exists to answer one question independently of the rotation tricks in
// topology: is every row of a DistanceTable really the multiset of BFS hop
// counts from that node? CheckTable performs that comparison; the hopsim CLI
// exposes it as `hopsim verify` and the --verify flag.
//
// Vertices are plain ints 0..n-1 so callers can index slices directly.
// Graphs are built once and never mutated, so concurrent BFS calls are safe.
package netgraph
