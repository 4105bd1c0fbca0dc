// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// benchmark.go - repeated independent runs on one instance.
//
// Each run gets a fresh population and its own random stream derived from the
// base stream, so a seeded benchmark is reproducible run by run. The
// generation log and chart collaborators are switched off for every run;
// observers and the logger still see each run.

package ga

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/cliquega/graph"
)

// DefaultRuns is the run count used by the CLI when none is given.
const DefaultRuns = 10

// RunRecord summarizes one benchmark run.
type RunRecord struct {
	Index        int // 0-based run index
	ID           uuid.UUID
	Elapsed      time.Duration
	BestFitness  int
	Generations  int
	EarlyStopped bool
	StopReason   string
}

// BenchmarkResult collects every run and identifies the best one.
type BenchmarkResult struct {
	Runs    []RunRecord
	BestRun RunRecord
	Best    *Result // full result of BestRun
}

// RunSeconds returns the elapsed wall-clock seconds of each run, by run index.
func (b *BenchmarkResult) RunSeconds() []float64 {
	out := make([]float64, len(b.Runs))
	for i, r := range b.Runs {
		out[i] = r.Elapsed.Seconds()
	}

	return out
}

// Benchmark executes runs independent searches with cfg and keeps the best:
// highest fitness first, then lowest elapsed time.
//
// Errors:
//   - ErrInvalidRunCount when runs < 1.
//   - ErrNilGraph or any Config.Validate sentinel.
func Benchmark(g *graph.Graph, cfg Config, runs int, opts ...Option) (*BenchmarkResult, error) {
	if runs < 1 {
		return nil, fmt.Errorf("Benchmark: runs=%d: %w", runs, ErrInvalidRunCount)
	}
	if g == nil {
		return nil, fmt.Errorf("Benchmark: %w", ErrNilGraph)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Benchmark: %w", err)
	}

	base := newEngineOptions(cfg.Seed, opts)
	runCfg := cfg
	runCfg.EnableLogging = false
	runCfg.DrawCharts = false

	out := &BenchmarkResult{Runs: make([]RunRecord, 0, runs)}
	for i := 0; i < runs; i++ {
		id := uuid.New()
		runOpts := []Option{
			WithRand(deriveRNG(base.rng, uint64(i))),
			WithLogger(base.logger.With().Int("run", i).Str("run_id", id.String()).Logger()),
		}
		for _, obs := range base.observers {
			runOpts = append(runOpts, WithObserver(obs))
		}

		eng, err := NewEngine(g, runCfg, runOpts...)
		if err != nil {
			return nil, fmt.Errorf("Benchmark: run %d: %w", i, err)
		}
		res, err := eng.Run()
		if err != nil {
			return nil, fmt.Errorf("Benchmark: run %d: %w", i, err)
		}

		rec := RunRecord{
			Index:        i,
			ID:           id,
			Elapsed:      res.Elapsed,
			BestFitness:  res.Best.Fitness(),
			Generations:  res.Generations,
			EarlyStopped: res.EarlyStopped,
			StopReason:   res.StopReason,
		}
		out.Runs = append(out.Runs, rec)

		if out.Best == nil || betterRun(rec, out.BestRun) {
			out.BestRun = rec
			out.Best = res
		}
	}

	return out, nil
}

// betterRun orders runs by fitness, then by shorter elapsed time.
func betterRun(a, b RunRecord) bool {
	if a.BestFitness != b.BestFitness {
		return a.BestFitness > b.BestFitness
	}

	return a.Elapsed < b.Elapsed
}
