// SPDX-License-Identifier: MIT

// Package simulation estimates the mean hop count of a topology by Monte
// Carlo sampling of a topology.DistanceTable.
//
// One trial (SampleStep) lets every node pick one uniformly random other
// node and averages the n resulting distances. The Estimator repeats that
// a fixed number of times in parallel and averages the trials; by the law of
// large numbers the result converges to the expected single-hop routing
// distance of the topology.
//
// Parallelism is a plain map-reduce. The trial range is cut into fixed-size
// chunks, chunks run on a bounded errgroup, each chunk owns its own PCG
// generator seeded from (seed, chunk index), and partial sums are reduced
// once, in chunk order, after all chunks finish. The shared table is only
// read. Because neither chunking nor seeding depends on the worker count,
// a fixed seed reproduces the same estimate on any number of workers.
package simulation
