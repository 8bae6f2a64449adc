// SPDX-License-Identifier: MIT
// Package: hopsim/simulation
//
// options.go - functional options for the Estimator.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless values
//     (non-positive counts, nil logger). Run itself never fails.
//   - Later options override earlier ones.
//   - Without WithSeed every Run draws a fresh seed and reports it in
//     Result.Seed, so any run can be replayed.

package simulation

import (
	"io"
	"log/slog"
	"runtime"
)

const (
	// DefaultTrials is the trial count used when WithTrials is not given.
	DefaultTrials = 1_000_000
	// DefaultChunkSize is the number of trials handed to a worker at once.
	DefaultChunkSize = 1 << 14
)

// Option customizes an Estimator.
type Option func(*Estimator)

// WithTrials sets the number of trials. Panics if trials <= 0.
func WithTrials(trials int) Option {
	if trials <= 0 {
		panic("simulation: WithTrials(trials<=0)")
	}
	return func(e *Estimator) {
		e.trials = trials
	}
}

// WithWorkers bounds the number of concurrently running chunks.
// Panics if workers <= 0.
func WithWorkers(workers int) Option {
	if workers <= 0 {
		panic("simulation: WithWorkers(workers<=0)")
	}
	return func(e *Estimator) {
		e.workers = workers
	}
}

// WithChunkSize sets how many trials one chunk runs. Chunk boundaries and
// per-chunk seeds derive from it, so changing it changes the draw sequence
// (not the expected value). Run raises it when trials would need more than
// MaxChunks chunks; Result.ChunkSize reports the size used.
// Panics if size <= 0.
func WithChunkSize(size int) Option {
	if size <= 0 {
		panic("simulation: WithChunkSize(size<=0)")
	}
	return func(e *Estimator) {
		e.chunkSize = size
	}
}

// WithSeed fixes the base seed, making Run reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Estimator) {
		e.seed = seed
		e.seeded = true
	}
}

// WithLogger attaches a logger for run-level debug output. Panics on nil.
func WithLogger(log *slog.Logger) Option {
	if log == nil {
		panic("simulation: WithLogger(nil)")
	}
	return func(e *Estimator) {
		e.log = log
	}
}

// newEstimator applies defaults, then opts in order.
func newEstimator(opts ...Option) *Estimator {
	e := &Estimator{
		trials:    DefaultTrials,
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
