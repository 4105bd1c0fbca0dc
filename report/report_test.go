package report_test

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/cliquega/builder"
	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/graph"
	"github.com/katalvlaran/cliquega/report"
)

func k4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(4, nil, builder.Complete(4))
	require.NoError(t, err)
	return g
}

func sampleResult(t *testing.T, g *graph.Graph) *ga.Result {
	t.Helper()
	best, err := ga.NewIndividual(g, 1, 2)
	require.NoError(t, err)
	best.Evaluate(rand.New(rand.NewSource(1)))

	return &ga.Result{
		Best:           best,
		Generations:    3,
		FinalDiversity: 0.25,
		EarlyStopped:   true,
		Stop:           ga.StopPatience,
		StopReason:     "no improvement in 2 consecutive generations",
		Elapsed:        1500 * time.Millisecond,
		History:        sampleHistory(),
	}
}

func sampleHistory() []ga.History {
	return []ga.History{
		{Generation: 0, BestFitness: 3, Diversity: 1, GenerationTime: 2 * time.Millisecond},
		{Generation: 1, BestFitness: 4, Diversity: 0.5, GenerationTime: 3 * time.Millisecond},
		{Generation: 2, BestFitness: 4, Diversity: 0.25, GenerationTime: time.Millisecond},
	}
}

func sampleSummary(t *testing.T) report.Summary {
	g := k4(t)
	cfg := ga.DefaultConfig()
	cfg.IndexRange = ga.NewIndexRange(0.1, 0.5)

	return report.Summary{
		Label:    "k4.txt",
		RunIndex: 2,
		RunCount: 5,
		Result:   sampleResult(t, g),
		Graph:    g,
		Config:   cfg,
	}
}

func TestSummary_Console(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleSummary(t).Console(&buf))
	out := buf.String()

	for _, want := range []string{
		"RESULT OF BEST RUN #2/5 [k4.txt]",
		"Best Fitness: 4\n",
		"Time (sec): 1.5000\n",
		"Actual Generations: 3/50\n",
		"Final Diversity: 0.2500\n",
		"Early Stopped: YES\n",
		"Stop Reason: no improvement in 2 consecutive generations\n",
		"Selected Vertices: 1 2 3 4\n",
		"Selected Count: 4/4\n",
		"Genes: 1 1 1 1\n",
		"Edges: 6\n",
		"Density: 1.0000\n",
		"Population Size: 20\n",
		"Index Range: [0.1, 0.5]\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSummary_AppendAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	s := sampleSummary(t)
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Append(path, stamp))
	require.NoError(t, s.Append(path, stamp.Add(time.Hour)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Equal(t, 2, strings.Count(out, "BEST RUN #2/5"))
	assert.Contains(t, out, "2026-03-01T12:00:00Z")
	assert.Contains(t, out, "2026-03-01T13:00:00Z")
	assert.NotContains(t, out, "RESULT OF")
}

func TestSummary_AppendBadPath(t *testing.T) {
	err := sampleSummary(t).Append(filepath.Join(t.TempDir(), "missing", "out.txt"), time.Now())
	require.Error(t, err)
}

func TestGenerationLog_Block(t *testing.T) {
	g := k4(t)
	pop, err := ga.NewPopulation(g, 2, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	var buf bytes.Buffer
	gl := report.NewGenerationLog(&buf)
	stats := ga.GenerationStats{Generation: 7, BestFitness: 4, GlobalBest: 4, Diversity: 0.5, NoImprovement: 2}
	require.NoError(t, gl.LogGeneration(stats, pop))
	require.NoError(t, gl.Close())

	want := "===== GENERATION 7 =====\n\n" +
		"Population Details:\n" +
		"[0] Genes: 1111, Fitness: 4\n" +
		"[1] Genes: 1111, Fitness: 4\n" +
		"Best Fitness: 4\n" +
		"Population Diversity: 0.5000\n" +
		"Generations Without Improvement: 2\n" +
		strings.Repeat("-", 40) + "\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerationLog_WriteError(t *testing.T) {
	g := k4(t)
	pop, err := ga.NewPopulation(g, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	gl := report.NewGenerationLog(failingWriter{})
	err = gl.LogGeneration(ga.GenerationStats{Generation: 1}, pop)
	require.ErrorContains(t, err, "disk full")
}

func TestCreateGenerationLog_TruncatesAndFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generations.log")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	gl, err := report.CreateGenerationLog(path)
	require.NoError(t, err)

	g := k4(t)
	pop, err := ga.NewPopulation(g, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, gl.LogGeneration(ga.GenerationStats{Generation: 0, BestFitness: 4}, pop))

	// Flushed per block, readable before Close.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "===== GENERATION 0 ====="))
	assert.NotContains(t, string(data), "stale")

	require.NoError(t, gl.Close())
	require.NoError(t, gl.Close(), "second Close is a no-op")
}

func TestCharts_WritePNG(t *testing.T) {
	dir := t.TempDir()
	charts := report.PNGCharts{Dir: dir, Prefix: "best_run_"}
	require.NoError(t, charts.RenderRun(sampleHistory()))

	for _, name := range []string{"best_run_" + report.FitnessChartFile, "best_run_" + report.GenTimeChartFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0))
	}

	rt := filepath.Join(dir, report.RuntimeChartFile)
	require.NoError(t, report.RuntimeChart([]float64{0.5, 0.25, 0.75}, rt))
	_, err := os.Stat(rt)
	require.NoError(t, err)
}

func TestCharts_NoData(t *testing.T) {
	dir := t.TempDir()
	require.ErrorIs(t, report.FitnessChart(nil, filepath.Join(dir, "a.png")), report.ErrNoData)
	require.ErrorIs(t, report.GenerationTimeChart(nil, filepath.Join(dir, "b.png")), report.ErrNoData)
	require.ErrorIs(t, report.RuntimeChart(nil, filepath.Join(dir, "c.png")), report.ErrNoData)
	require.ErrorIs(t, report.PNGCharts{Dir: dir}.RenderRun(nil), report.ErrNoData)
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xlsx")
	runs := []ga.RunRecord{
		{Index: 0, ID: uuid.New(), Elapsed: 500 * time.Millisecond, BestFitness: 3, Generations: 50, StopReason: "reached max generations (50)"},
		{Index: 1, ID: uuid.New(), Elapsed: 250 * time.Millisecond, BestFitness: 4, Generations: 12, EarlyStopped: true, StopReason: "no improvement in 5 consecutive generations"},
	}
	require.NoError(t, report.WriteWorkbook(path, sampleHistory(), runs))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.SheetGenerations, report.SheetRuns}, f.GetSheetList())

	gens, err := f.GetRows(report.SheetGenerations)
	require.NoError(t, err)
	require.Len(t, gens, 4)
	assert.Equal(t, []string{"Generation", "Best Fitness", "Diversity", "Time (ms)"}, gens[0])
	assert.Equal(t, "1", gens[2][0])
	assert.Equal(t, "4", gens[2][1])

	rows, err := f.GetRows(report.SheetRuns)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, runs[1].ID.String(), rows[2][1])
	assert.Equal(t, "no improvement in 5 consecutive generations", rows[2][6])
}

func TestWriteWorkbook_SingleRunHasNoRunsSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.xlsx")
	require.NoError(t, report.WriteWorkbook(path, sampleHistory(), nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{report.SheetGenerations}, f.GetSheetList())
}

func TestWriteWorkbook_NoData(t *testing.T) {
	err := report.WriteWorkbook(filepath.Join(t.TempDir(), "x.xlsx"), nil, nil)
	require.ErrorIs(t, err, report.ErrNoData)
}
