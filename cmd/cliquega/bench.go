// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquega/archive"
	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/graph"
	"github.com/katalvlaran/cliquega/metrics"
	"github.com/katalvlaran/cliquega/report"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		gf   gaFlags
		of   outputFlags
		runs int
	)

	cmd := &cobra.Command{
		Use:   "bench <graph-file>",
		Short: "Run independent searches and report the best run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.Bench.Runs
			if cmd.Flags().Changed("runs") {
				n = runs
			}
			return a.bench(cmd, args[0], n, &gf, &of)
		},
	}
	cmd.Flags().IntVar(&runs, "runs", ga.DefaultRuns, "number of independent runs")
	gf.register(cmd)
	of.register(cmd, true)

	return cmd
}

func (a *app) bench(cmd *cobra.Command, path string, runs int, gf *gaFlags, of *outputFlags) error {
	in, err := a.loadInstance(path)
	if err != nil {
		return err
	}
	cfg := a.resolveGA(cmd, in.Config, gf)
	out := a.resolveOutput(cmd, of)
	if err := ensureDir(out.Dir); err != nil {
		return err
	}

	opts := []ga.Option{ga.WithLogger(a.log.With().Int64("seed", cfg.Seed).Logger())}
	var coll *metrics.Collector
	if out.MetricsFile != "" {
		coll = metrics.NewCollector()
		opts = append(opts, ga.WithObserver(coll))
	}

	a.log.Info().Int("runs", runs).Int64("seed", cfg.Seed).Msg("benchmark started")
	res, err := ga.Benchmark(in.Graph, cfg, runs, opts...)
	if err != nil {
		return err
	}
	a.log.Info().
		Int("best_run", res.BestRun.Index+1).
		Str("best_run_id", res.BestRun.ID.String()).
		Int("best_fitness", res.BestRun.BestFitness).
		Msg("benchmark complete")

	if out.Charts {
		a.benchCharts(out.Dir, res)
	}

	sum := report.Summary{
		Label:    filepath.Base(path),
		RunIndex: res.BestRun.Index + 1,
		RunCount: runs,
		Result:   res.Best,
		Graph:    in.Graph,
		Config:   cfg,
	}
	if err := a.publish(cmd, sum, out, res.Runs, coll); err != nil {
		return err
	}

	if p := outPath(out, out.Archive); p != "" {
		if err := a.saveArchive(cmd, p, graphLabel(path, in.Graph), in.Graph, cfg, res); err != nil {
			return err
		}
	}

	return nil
}

// benchCharts draws the runtime and best-run charts; failures are logged only.
func (a *app) benchCharts(dir string, res *ga.BenchmarkResult) {
	rt := filepath.Join(dir, report.RuntimeChartFile)
	if err := report.RuntimeChart(res.RunSeconds(), rt); err != nil {
		a.log.Warn().Err(err).Msg("chart rendering failed")
	}
	best := filepath.Join(dir, report.BestRunFitnessFile)
	if err := report.FitnessChart(res.Best.History, best); err != nil {
		a.log.Warn().Err(err).Msg("chart rendering failed")
	}
}

func (a *app) saveArchive(cmd *cobra.Command, path, label string, g *graph.Graph, cfg ga.Config, res *ga.BenchmarkResult) error {
	st, err := archive.Open(cmd.Context(), path)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.SaveBenchmark(cmd.Context(), label, g, cfg, res, a.now())
	if err != nil {
		return err
	}
	a.log.Info().Str("path", path).Str("benchmark_id", id.String()).Msg("benchmark archived")

	return nil
}

// graphLabel names an instance in the archive.
func graphLabel(path string, g *graph.Graph) string {
	return fmt.Sprintf("%s (%dv/%de)", filepath.Base(path), g.Size(), g.EdgeCount())
}
