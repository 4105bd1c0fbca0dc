// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquega/config"
	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/graphio"
)

// gaFlags are the per-command GA overrides. A flag applies only when set.
type gaFlags struct {
	population  int
	generations int
	mutation    float64
	crossover   float64
	elite       int
	patience    int
	diversity   float64
	indexMin    float64
	indexMax    float64
}

func (f *gaFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.population, "population", ga.DefaultPopulationSize, "population size")
	fs.IntVar(&f.generations, "generations", ga.DefaultMaxGenerations, "maximum generations")
	fs.Float64Var(&f.mutation, "mutation", ga.DefaultMutationRate, "base mutation rate [0,1]")
	fs.Float64Var(&f.crossover, "crossover", ga.DefaultCrossoverRate, "crossover rate [0,1]")
	fs.IntVar(&f.elite, "elite", ga.DefaultEliteCount, "elite individuals copied each generation")
	fs.IntVar(&f.patience, "patience", ga.DefaultPatience, "stop after this many generations without improvement (0 disables)")
	fs.Float64Var(&f.diversity, "diversity", ga.DefaultDiversityThreshold, "stop when diversity drops below this (0 disables)")
	fs.Float64Var(&f.indexMin, "index-min", 0, "lower bound of the preferred index band")
	fs.Float64Var(&f.indexMax, "index-max", 0, "upper bound of the preferred index band")
}

// resolveGA layers config file values and flags over the instance config.
// A zero seed after all layers is replaced by the clock.
func (a *app) resolveGA(cmd *cobra.Command, inst ga.Config, f *gaFlags) ga.Config {
	cfg := a.cfg.GA.Overlay(inst, a.gaKeys)

	fs := cmd.Flags()
	if fs.Changed("population") {
		cfg.PopulationSize = f.population
	}
	if fs.Changed("generations") {
		cfg.MaxGenerations = f.generations
	}
	if fs.Changed("mutation") {
		cfg.MutationRate = f.mutation
	}
	if fs.Changed("crossover") {
		cfg.CrossoverRate = f.crossover
	}
	if fs.Changed("elite") {
		cfg.EliteCount = f.elite
	}
	if fs.Changed("patience") {
		cfg.Patience = f.patience
	}
	if fs.Changed("diversity") {
		cfg.DiversityThreshold = f.diversity
	}
	if fs.Changed("index-min") || fs.Changed("index-max") {
		lo, hi := f.indexMin, f.indexMax
		if cfg.IndexRange != nil {
			if !fs.Changed("index-min") {
				lo = cfg.IndexRange.Min
			}
			if !fs.Changed("index-max") {
				hi = cfg.IndexRange.Max
			}
		}
		cfg.IndexRange = ga.NewIndexRange(lo, hi)
	}
	if fs.Changed("seed") {
		cfg.Seed = a.seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = a.now().UnixNano()
	}

	return cfg
}

// outputFlags override the output section of the config.
type outputFlags struct {
	dir      string
	summary  string
	genLog   string
	noCharts bool
	workbook string
	metrics  string
	archive  string
}

func (f *outputFlags) register(cmd *cobra.Command, withArchive bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.dir, "out-dir", "", "directory for every output file")
	fs.StringVar(&f.summary, "summary", "", "summary file, appended to")
	fs.StringVar(&f.genLog, "generation-log", "", "per-generation population log (empty disables)")
	fs.BoolVar(&f.noCharts, "no-charts", false, "skip PNG charts")
	fs.StringVar(&f.workbook, "workbook", "", "XLSX workbook with history and charts")
	fs.StringVar(&f.metrics, "metrics-file", "", "Prometheus textfile")
	if withArchive {
		fs.StringVar(&f.archive, "archive", "", "SQLite archive of benchmark runs")
	}
}

func (a *app) resolveOutput(cmd *cobra.Command, f *outputFlags) config.Output {
	out := a.cfg.Output
	fs := cmd.Flags()
	if fs.Changed("out-dir") {
		out.Dir = f.dir
	}
	if fs.Changed("summary") {
		out.SummaryFile = f.summary
	}
	if fs.Changed("generation-log") {
		out.GenerationLog = f.genLog
	}
	if fs.Changed("no-charts") {
		out.Charts = !f.noCharts
	}
	if fs.Changed("workbook") {
		out.Workbook = f.workbook
	}
	if fs.Changed("metrics-file") {
		out.MetricsFile = f.metrics
	}
	if fs.Lookup("archive") != nil && fs.Changed("archive") {
		out.Archive = f.archive
	}
	if out.Dir == "" {
		out.Dir = "."
	}

	return out
}

// outPath places name under dir; an empty name stays empty (artefact disabled).
func outPath(out config.Output, name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(out.Dir, name)
}

// loadInstance reads the graph file and logs every skipped line.
func (a *app) loadInstance(path string) (*graphio.Instance, error) {
	in, err := graphio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	for _, w := range in.Warnings {
		a.log.Warn().Str("file", path).Int("line", w.Line).Msg(w.Msg)
	}
	a.log.Info().
		Str("file", path).
		Str("format", in.Format.String()).
		Int("vertices", in.Graph.Size()).
		Int("edges", in.Graph.EdgeCount()).
		Int("params", in.ParamsRead).
		Msg("instance loaded")

	return in, nil
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
