package ga_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquega/ga"
)

func TestBenchmark_RunCount(t *testing.T) {
	g := completeGraph(t, 3)
	for _, runs := range []int{0, -1} {
		_, err := ga.Benchmark(g, ga.DefaultConfig(), runs)
		require.ErrorIs(t, err, ga.ErrInvalidRunCount)
	}

	_, err := ga.Benchmark(nil, ga.DefaultConfig(), 2)
	require.ErrorIs(t, err, ga.ErrNilGraph)

	bad := ga.DefaultConfig()
	bad.MaxGenerations = 0
	_, err = ga.Benchmark(g, bad, 2)
	require.ErrorIs(t, err, ga.ErrInvalidGenerations)
}

func TestBenchmark_PicksBestRun(t *testing.T) {
	g := randomGraph(t, 40, 0.5, seedDet)
	cfg := quietConfig()
	cfg.MaxGenerations = 5
	cfg.PopulationSize = 8

	obs := &countingObserver{}
	genLog := &recordingLog{}
	charts := &recordingCharts{}

	res, err := ga.Benchmark(g, cfg, 4,
		ga.WithObserver(obs), ga.WithGenerationLog(genLog), ga.WithChartRenderer(charts))
	require.NoError(t, err)
	require.Len(t, res.Runs, 4)

	ids := map[uuid.UUID]bool{}
	for i, r := range res.Runs {
		assert.Equal(t, i, r.Index)
		assert.False(t, ids[r.ID], "run ids are unique")
		ids[r.ID] = true

		assert.LessOrEqual(t, r.BestFitness, res.BestRun.BestFitness)
		if r.BestFitness == res.BestRun.BestFitness {
			assert.GreaterOrEqual(t, r.Elapsed, res.BestRun.Elapsed, "ties go to the faster run")
		}
	}

	require.NotNil(t, res.Best)
	assert.Equal(t, res.BestRun.BestFitness, res.Best.Best.Fitness())
	assert.Equal(t, res.BestRun.Generations, res.Best.Generations)
	assert.Len(t, res.RunSeconds(), 4)

	assert.Empty(t, genLog.calls, "generation log is off during benchmarks")
	assert.Empty(t, charts.histories, "charts are off during benchmarks")
	assert.Equal(t, 4, obs.runs)
	assert.Equal(t, 20, obs.generations)
}

func TestBenchmark_Reproducible(t *testing.T) {
	g := randomGraph(t, 30, 0.5, seedDet)
	cfg := quietConfig()
	cfg.MaxGenerations = 4

	a, err := ga.Benchmark(g, cfg, 3)
	require.NoError(t, err)
	b, err := ga.Benchmark(g, cfg, 3)
	require.NoError(t, err)

	for i := range a.Runs {
		assert.Equal(t, a.Runs[i].BestFitness, b.Runs[i].BestFitness, "run %d", i)
		assert.NotEqual(t, a.Runs[i].ID, b.Runs[i].ID)
	}
}
