// SPDX-License-Identifier: MIT
// Package: cliquega/report
//
// chart.go - PNG line charts drawn with gonum/plot.
//
// Three series are charted:
//   • best fitness by generation
//   • generation time (ms) by generation
//   • wall-clock seconds by benchmark run (runs numbered from 1)

package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/cliquega/ga"
)

// Default chart file names.
const (
	FitnessChartFile   = "fitness_by_generation.png"
	GenTimeChartFile   = "generation_time.png"
	RuntimeChartFile   = "runtime_by_run.png"
	BestRunFitnessFile = "best_run_fitness_by_generation.png"
)

// Chart canvas size.
const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 5.5 * vg.Inch
)

// FitnessChart plots best fitness against generation index.
func FitnessChart(history []ga.History, path string) error {
	if len(history) == 0 {
		return fmt.Errorf("FitnessChart: %w", ErrNoData)
	}
	pts := make(plotter.XYs, len(history))
	for i, h := range history {
		pts[i].X = float64(h.Generation)
		pts[i].Y = float64(h.BestFitness)
	}

	return saveLine("Best Fitness by Generation", "Generation", "Best Fitness", "best fitness", pts, path)
}

// GenerationTimeChart plots per-generation time in milliseconds.
func GenerationTimeChart(history []ga.History, path string) error {
	if len(history) == 0 {
		return fmt.Errorf("GenerationTimeChart: %w", ErrNoData)
	}
	pts := make(plotter.XYs, len(history))
	for i, h := range history {
		pts[i].X = float64(h.Generation)
		pts[i].Y = h.GenerationTimeMillis()
	}

	return saveLine("Generation Time", "Generation", "Time (ms)", "time", pts, path)
}

// RuntimeChart plots run seconds against run number (1-based).
func RuntimeChart(seconds []float64, path string) error {
	if len(seconds) == 0 {
		return fmt.Errorf("RuntimeChart: %w", ErrNoData)
	}
	pts := make(plotter.XYs, len(seconds))
	for i, s := range seconds {
		pts[i].X = float64(i + 1)
		pts[i].Y = s
	}

	return saveLine("Runtime by Run", "Run", "Time (s)", "runtime", pts, path)
}

func saveLine(title, xLabel, yLabel, legend string, pts plotter.XYs, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("chart %q: %w", title, err)
	}
	p.Add(line, points)
	p.Legend.Add(legend, line, points)
	p.Legend.Top = true

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("chart %q: save %s: %w", title, path, err)
	}

	return nil
}

// PNGCharts renders a finished run's fitness and generation-time charts
// into Dir (implements ga.ChartRenderer).
type PNGCharts struct {
	Dir    string
	Prefix string
}

var _ ga.ChartRenderer = PNGCharts{}

// RenderRun writes <Dir>/<Prefix>fitness_by_generation.png and
// <Dir>/<Prefix>generation_time.png.
func (c PNGCharts) RenderRun(history []ga.History) error {
	if err := FitnessChart(history, filepath.Join(c.Dir, c.Prefix+FitnessChartFile)); err != nil {
		return err
	}

	return GenerationTimeChart(history, filepath.Join(c.Dir, c.Prefix+GenTimeChartFile))
}
