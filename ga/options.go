// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// options.go - functional options for NewEngine and Benchmark.
//
// Option constructors panic on nil arguments (programmer error).
// The Engine itself never panics.

package ga

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// Option customizes an Engine before its first run.
type Option func(*engineOptions)

type engineOptions struct {
	rng       *rand.Rand
	logger    zerolog.Logger
	genLog    GenerationLog
	charts    ChartRenderer
	observers []Observer
}

func newEngineOptions(seed int64, opts []Option) engineOptions {
	o := engineOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rngFromSeed(seed)
	}

	return o
}

// WithRand supplies the random stream, overriding Config.Seed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("ga: WithRand(nil)")
	}
	return func(o *engineOptions) {
		o.rng = r
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = l
	}
}

// WithGenerationLog attaches the per-generation population log.
func WithGenerationLog(gl GenerationLog) Option {
	if gl == nil {
		panic("ga: WithGenerationLog(nil)")
	}
	return func(o *engineOptions) {
		o.genLog = gl
	}
}

// WithChartRenderer attaches the end-of-run chart renderer.
func WithChartRenderer(cr ChartRenderer) Option {
	if cr == nil {
		panic("ga: WithChartRenderer(nil)")
	}
	return func(o *engineOptions) {
		o.charts = cr
	}
}

// WithObserver adds an event observer. May be given more than once.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("ga: WithObserver(nil)")
	}
	return func(o *engineOptions) {
		o.observers = append(o.observers, obs)
	}
}
