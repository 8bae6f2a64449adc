// SPDX-License-Identifier: MIT
// Package: hopsim/simulation
//
// estimator.go - parallel Monte Carlo estimate over a shared distance table.
//
// Scheduling:
//   - trials are split into ⌈trials/size⌉ chunks of consecutive trials, where
//     size is the configured chunk size, raised if needed so that there are
//     at most MaxChunks chunks.
//   - chunks run on an errgroup limited to min(workers, chunks) goroutines.
//   - chunk c uses its own PCG(seed, c); no generator is ever shared.
//   - chunk c writes only sums[c] and sumSqs[c]; the reduction runs after Wait.
//
// Determinism:
//   - For a fixed (seed, trials, chunk size) the result is bit-identical for
//     any worker count: the reduction order is the chunk order.

package simulation

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hopsim/internal/logging"
	"github.com/katalvlaran/hopsim/topology"
)

// MaxChunks bounds the number of chunks in one Run, and with it the size of
// the per-chunk accumulators.
const MaxChunks = 1 << 20

// Estimator runs many independent trials against one table and averages them.
// An Estimator holds only configuration; Run may be called concurrently.
type Estimator struct {
	trials    int
	workers   int
	chunkSize int
	seed      uint64
	seeded    bool
	log       *slog.Logger
}

// Result is the outcome of one Run.
type Result struct {
	Trials    int           `json:"trials"`
	Workers   int           `json:"workers"`
	Chunks    int           `json:"chunks"`
	ChunkSize int           `json:"chunk_size"`
	Seed      uint64        `json:"seed"`
	Mean      float64       `json:"mean"`
	StdDev    float64       `json:"std_dev"`
	StdErr    float64       `json:"std_err"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// NewEstimator returns an Estimator with DefaultTrials, one worker per
// GOMAXPROCS, DefaultChunkSize and a random seed per Run, then applies opts.
func NewEstimator(opts ...Option) *Estimator {
	return newEstimator(opts...)
}

// Trials returns the configured trial count.
func (e *Estimator) Trials() int { return e.trials }

// Run executes the configured number of trials against t and returns the
// mean hop count together with its spread. It always runs to completion.
func (e *Estimator) Run(t *topology.DistanceTable) Result {
	start := time.Now()

	seed := e.seed
	if !e.seeded {
		seed = rand.Uint64()
	}
	chunks, size := chunkLayout(e.trials, e.chunkSize)
	workers := min(e.workers, chunks)

	e.log.Debug("estimate start",
		slog.String("topology", t.Kind().String()),
		slog.Int("nodes", t.N()),
		slog.Int("trials", e.trials),
		slog.Int("workers", workers),
		slog.Int("chunks", chunks),
		slog.Int("chunk_size", size),
		slog.Uint64("seed", seed),
	)

	sums := make([]float64, chunks)
	sumSqs := make([]float64, chunks)
	var g errgroup.Group
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		lo := c * size
		count := min(size, e.trials-lo)
		g.Go(func() error {
			sums[c], sumSqs[c] = runChunk(t, seed, uint64(c), count)
			e.log.LogAttrs(context.Background(), logging.LevelTrace, "chunk done",
				slog.Int("chunk", c),
				slog.Int("trials", count),
				slog.Float64("mean", sums[c]/float64(count)),
			)
			return nil
		})
	}
	// Chunks cannot fail; Wait is only the join point.
	_ = g.Wait()

	res := reduce(sums, sumSqs, e.trials)
	res.Workers = workers
	res.Chunks = chunks
	res.ChunkSize = size
	res.Seed = seed
	res.Elapsed = time.Since(start)

	e.log.Debug("estimate done",
		slog.Float64("mean", res.Mean),
		slog.Float64("std_err", res.StdErr),
		slog.Duration("elapsed", res.Elapsed),
	)
	return res
}

// chunkLayout splits trials into chunks of size trials each (the last one
// possibly shorter). size starts at chunkSize and grows only when more than
// MaxChunks chunks would be needed. Neither step can overflow.
func chunkLayout(trials, chunkSize int) (chunks, size int) {
	size = max(chunkSize, ceilDiv(trials, MaxChunks))
	return ceilDiv(trials, size), size
}

// ceilDiv returns ⌈a/b⌉ for a >= 0, b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// runChunk performs count trials with a generator private to chunk and
// returns the sum and sum of squares of the trial means.
func runChunk(t *topology.DistanceTable, seed, chunk uint64, count int) (sum, sumSq float64) {
	rng := rand.New(rand.NewPCG(seed, chunk))

	for i := 0; i < count; i++ {
		x := SampleStep(t, rng)
		sum += x
		sumSq += x * x
	}
	return sum, sumSq
}

// reduce combines the per-chunk sums in chunk order.
func reduce(sums, sumSqs []float64, trials int) Result {
	n := float64(trials)
	sum := floats.Sum(sums)
	mean := sum / n

	var variance float64
	if trials > 1 {
		variance = (floats.Sum(sumSqs) - sum*mean) / (n - 1)
		// Rounding can push a zero variance slightly negative.
		variance = math.Max(variance, 0)
	}
	stdDev := math.Sqrt(variance)

	return Result{
		Trials: trials,
		Mean:   mean,
		StdDev: stdDev,
		StdErr: stdDev / math.Sqrt(n),
	}
}

// Estimate runs trials independent trials against t with default settings
// and returns the mean hop count. Panics if trials <= 0.
func Estimate(t *topology.DistanceTable, trials int) float64 {
	return NewEstimator(WithTrials(trials)).Run(t).Mean
}
