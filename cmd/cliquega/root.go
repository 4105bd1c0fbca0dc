// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquega/config"
)

// app is the state shared by every subcommand after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	seed       int64

	cfg    config.Config
	gaKeys map[string]bool // ga keys set explicitly in the config file
	log    zerolog.Logger
	now    func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now, log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "cliquega",
		Short:         "Genetic-algorithm maximum clique search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: auto, console, json")
	pf.Int64Var(&a.seed, "seed", 0, "random seed (0 draws one from the clock)")

	cmd.AddCommand(newRunCmd(a), newBenchCmd(a), newGenerateCmd(a), newHistoryCmd(a))

	return cmd
}

// setup loads the config file, applies the logging flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	a.gaKeys = map[string]bool{}

	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		keys, err := config.ExplicitGAKeys(a.configPath)
		if err != nil {
			return err
		}
		a.cfg, a.gaKeys = cfg, keys
	}

	if a.logLevel != "" {
		a.cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Logging.Format = a.logFormat
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.Logging)
	if err != nil {
		return err
	}
	a.log = logger
	if a.configPath != "" {
		a.log.Debug().Str("path", a.configPath).Msg("config loaded")
	}

	return nil
}

// newLogger builds a zerolog logger. Format "auto" picks the console writer
// when w is a terminal and JSON otherwise.
func newLogger(w io.Writer, lc config.Logging) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", lc.Level, err)
	}

	tty := isTerminal(w)
	format := lc.Format
	if format == "auto" {
		format = "json"
		if tty {
			format = "console"
		}
	}
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !tty}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
