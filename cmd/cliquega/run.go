// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquega/config"
	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/metrics"
	"github.com/katalvlaran/cliquega/report"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		gf gaFlags
		of outputFlags
	)

	cmd := &cobra.Command{
		Use:   "run <graph-file>",
		Short: "Run one search and write the generation log and charts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOnce(cmd, args[0], &gf, &of)
		},
	}
	gf.register(cmd)
	of.register(cmd, false)

	return cmd
}

func (a *app) runOnce(cmd *cobra.Command, path string, gf *gaFlags, of *outputFlags) error {
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

	cfg.EnableLogging = out.GenerationLog != ""
	if cfg.EnableLogging {
		gl, err := report.CreateGenerationLog(outPath(out, out.GenerationLog))
		if err != nil {
			return err
		}
		defer func() {
			if err := gl.Close(); err != nil {
				a.log.Warn().Err(err).Msg("closing generation log")
			}
		}()
		opts = append(opts, ga.WithGenerationLog(gl))
	}

	cfg.DrawCharts = out.Charts
	if cfg.DrawCharts {
		opts = append(opts, ga.WithChartRenderer(report.PNGCharts{Dir: out.Dir}))
	}

	var coll *metrics.Collector
	if out.MetricsFile != "" {
		coll = metrics.NewCollector()
		opts = append(opts, ga.WithObserver(coll))
	}

	eng, err := ga.NewEngine(in.Graph, cfg, opts...)
	if err != nil {
		return err
	}
	res, err := eng.Run()
	if err != nil {
		return err
	}

	sum := report.Summary{
		Label:    filepath.Base(path),
		RunIndex: 1,
		RunCount: 1,
		Result:   res,
		Graph:    in.Graph,
		Config:   cfg,
	}

	return a.publish(cmd, sum, out, nil, coll)
}

// publish writes the artefacts shared by run and bench.
func (a *app) publish(cmd *cobra.Command, sum report.Summary, out config.Output, runs []ga.RunRecord, coll *metrics.Collector) error {
	if err := sum.Console(cmd.OutOrStdout()); err != nil {
		return err
	}

	if p := outPath(out, out.SummaryFile); p != "" {
		if err := sum.Append(p, a.now()); err != nil {
			return err
		}
		a.log.Info().Str("path", p).Msg("summary appended")
	}

	if p := outPath(out, out.Workbook); p != "" {
		if err := report.WriteWorkbook(p, sum.Result.History, runs); err != nil {
			return err
		}
		a.log.Info().Str("path", p).Msg("workbook written")
	}

	if p := outPath(out, out.MetricsFile); p != "" && coll != nil {
		if err := coll.WriteTextfile(p); err != nil {
			return err
		}
		a.log.Info().Str("path", p).Msg("metrics written")
	}

	return nil
}
