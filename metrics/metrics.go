// SPDX-License-Identifier: MIT
// Package: cliquega/metrics
//
// Package metrics exposes search progress as Prometheus metrics.
//
// A Collector owns its own registry, so several collectors (one per test, or
// one per CLI invocation) never collide on the process-wide default registry.
// It implements ga.Observer; attach it with ga.WithObserver.
//
// The CLI has no long-lived server, so the registry is dumped in the text
// exposition format with WriteTextfile, ready for node_exporter's textfile
// collector.

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/cliquega/ga"
)

const namespace = "cliquega"

// Collector records generation and run events.
type Collector struct {
	reg *prometheus.Registry

	generations        prometheus.Counter
	bestFitness        prometheus.Gauge
	globalBest         prometheus.Gauge
	diversity          prometheus.Gauge
	noImprovement      prometheus.Gauge
	generationDuration prometheus.Histogram
	runs               *prometheus.CounterVec
	runDuration        prometheus.Histogram
	runFitness         prometheus.Gauge
}

var _ ga.Observer = (*Collector)(nil)

// NewCollector registers every metric on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		generations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generations executed across all runs",
		}),
		bestFitness: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_best_fitness",
			Help:      "Fitness of the best individual in the latest generation",
		}),
		globalBest: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_global_best_fitness",
			Help:      "Best fitness seen so far in the current run",
		}),
		diversity: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "population_diversity",
			Help:      "Distinct genotypes divided by population size",
		}),
		noImprovement: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generations_without_improvement",
			Help:      "Consecutive generations without a new global best",
		}),
		generationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time to produce one generation",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed runs by stop cause",
		}, []string{"stop"}),
		runDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock time of one run",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		runFitness: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_best_fitness",
			Help:      "Best fitness of the most recently completed run",
		}),
	}
}

// OnGeneration updates the per-generation series.
func (c *Collector) OnGeneration(stats ga.GenerationStats) {
	c.generations.Inc()
	c.bestFitness.Set(float64(stats.BestFitness))
	c.globalBest.Set(float64(stats.GlobalBest))
	c.diversity.Set(stats.Diversity)
	c.noImprovement.Set(float64(stats.NoImprovement))
	c.generationDuration.Observe(stats.Elapsed.Seconds())
}

// OnRunComplete counts the run under its stop cause.
func (c *Collector) OnRunComplete(res *ga.Result) {
	c.runs.WithLabelValues(res.Stop.String()).Inc()
	c.runDuration.Observe(res.Elapsed.Seconds())
	if res.Best != nil {
		c.runFitness.Set(float64(res.Best.Fitness()))
	}
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// WriteTextfile atomically writes every metric to path in text format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return fmt.Errorf("WriteTextfile(%s): %w", path, err)
	}

	return nil
}
