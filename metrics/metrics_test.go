package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquega/builder"
	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/metrics"
)

func TestCollector_OnGeneration(t *testing.T) {
	c := metrics.NewCollector()
	c.OnGeneration(ga.GenerationStats{Generation: 0, BestFitness: 3, GlobalBest: 3, Diversity: 1, Elapsed: time.Millisecond})
	c.OnGeneration(ga.GenerationStats{Generation: 1, BestFitness: 2, GlobalBest: 3, Diversity: 0.4, NoImprovement: 1, Elapsed: time.Millisecond})

	out, err := testutil.GatherAndCount(c.Registry(), "cliquega_generations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, out)

	lint, err := testutil.GatherAndLint(c.Registry())
	require.NoError(t, err)
	assert.Empty(t, lint)

	expected := `
# HELP cliquega_generations_total Generations executed across all runs
# TYPE cliquega_generations_total counter
cliquega_generations_total 2
# HELP cliquega_population_diversity Distinct genotypes divided by population size
# TYPE cliquega_population_diversity gauge
cliquega_population_diversity 0.4
# HELP cliquega_run_global_best_fitness Best fitness seen so far in the current run
# TYPE cliquega_run_global_best_fitness gauge
cliquega_run_global_best_fitness 3
# HELP cliquega_generation_best_fitness Fitness of the best individual in the latest generation
# TYPE cliquega_generation_best_fitness gauge
cliquega_generation_best_fitness 2
# HELP cliquega_generations_without_improvement Consecutive generations without a new global best
# TYPE cliquega_generations_without_improvement gauge
cliquega_generations_without_improvement 1
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"cliquega_generations_total",
		"cliquega_population_diversity",
		"cliquega_run_global_best_fitness",
		"cliquega_generation_best_fitness",
		"cliquega_generations_without_improvement",
	))
}

func TestCollector_WiredIntoBenchmark(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.Complete(5))
	require.NoError(t, err)

	cfg := ga.DefaultConfig()
	cfg.MaxGenerations = 4
	cfg.Seed = 11
	cfg.EnableLogging = false
	cfg.DrawCharts = false

	c := metrics.NewCollector()
	_, err = ga.Benchmark(g, cfg, 3, ga.WithObserver(c))
	require.NoError(t, err)

	expected := `
# HELP cliquega_generations_total Generations executed across all runs
# TYPE cliquega_generations_total counter
cliquega_generations_total 12
# HELP cliquega_runs_total Completed runs by stop cause
# TYPE cliquega_runs_total counter
cliquega_runs_total{stop="max-generations"} 3
# HELP cliquega_run_best_fitness Best fitness of the most recently completed run
# TYPE cliquega_run_best_fitness gauge
cliquega_run_best_fitness 5
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"cliquega_generations_total", "cliquega_runs_total", "cliquega_run_best_fitness"))

	n, err := testutil.GatherAndCount(c.Registry(), "cliquega_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := metrics.NewCollector()
	c.OnRunComplete(&ga.Result{Stop: ga.StopPatience, Elapsed: time.Second})

	path := filepath.Join(t.TempDir(), "cliquega.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `cliquega_runs_total{stop="patience"} 1`)
}
