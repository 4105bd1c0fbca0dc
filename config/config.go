// SPDX-License-Identifier: MIT
// Package: cliquega/config
//
// config.go - YAML run configuration for the cliquega command.
//
// Priority (highest first): command-line flags > config file > instance file
// parameter lines > built-in defaults. This package owns the file layer and
// the defaults; the command applies the other two.
//
// Example:
//
//	ga:
//	  population_size: 40
//	  max_generations: 200
//	  mutation_rate: 0.05
//	  crossover_rate: 0.7
//	  elite_count: 2
//	  patience: 25
//	  diversity_threshold: 0.1
//	  index_min: 0.02
//	  index_max: 0.2
//	  seed: 7
//	bench:
//	  runs: 10
//	output:
//	  dir: out
//	  summary_file: output.txt
//	  generation_log: generations.log
//	  charts: true
//	  workbook: results.xlsx
//	  metrics_file: cliquega.prom
//	  archive: runs.db
//	logging:
//	  level: info
//	  format: auto

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cliquega/ga"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the whole file.
type Config struct {
	GA      GA      `yaml:"ga"`
	Bench   Bench   `yaml:"bench"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// GA mirrors ga.Config. IndexMin/IndexMax are optional; the range is enabled
// only when both are present and IndexMax > IndexMin.
type GA struct {
	PopulationSize     int      `yaml:"population_size" validate:"gt=0"`
	MaxGenerations     int      `yaml:"max_generations" validate:"gt=0"`
	MutationRate       float64  `yaml:"mutation_rate" validate:"gte=0,lte=1"`
	CrossoverRate      float64  `yaml:"crossover_rate" validate:"gte=0,lte=1"`
	EliteCount         int      `yaml:"elite_count" validate:"gte=0"`
	Patience           int      `yaml:"patience" validate:"gte=0"`
	DiversityThreshold float64  `yaml:"diversity_threshold" validate:"gte=0"`
	IndexMin           *float64 `yaml:"index_min,omitempty"`
	IndexMax           *float64 `yaml:"index_max,omitempty"`
	Seed               int64    `yaml:"seed"`
}

// Bench configures the multi-run command.
type Bench struct {
	Runs int `yaml:"runs" validate:"gte=1"`
}

// Output names every artefact. Empty optional paths disable that artefact.
type Output struct {
	Dir           string `yaml:"dir"`
	SummaryFile   string `yaml:"summary_file" validate:"required"`
	GenerationLog string `yaml:"generation_log"`
	Charts        bool   `yaml:"charts"`
	Workbook      string `yaml:"workbook"`
	MetricsFile   string `yaml:"metrics_file"`
	Archive       string `yaml:"archive"`
}

// Logging selects the zerolog level and writer.
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto console json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GA:    FromGA(ga.DefaultConfig()),
		Bench: Bench{Runs: ga.DefaultRuns},
		Output: Output{
			Dir:           ".",
			SummaryFile:   "output.txt",
			GenerationLog: "generations.log",
			Charts:        true,
		},
		Logging: Logging{Level: "info", Format: "auto"},
	}
}

// FromGA converts a ga.Config into its file form.
func FromGA(c ga.Config) GA {
	out := GA{
		PopulationSize:     c.PopulationSize,
		MaxGenerations:     c.MaxGenerations,
		MutationRate:       c.MutationRate,
		CrossoverRate:      c.CrossoverRate,
		EliteCount:         c.EliteCount,
		Patience:           c.Patience,
		DiversityThreshold: c.DiversityThreshold,
		Seed:               c.Seed,
	}
	if c.IndexRange != nil {
		lo, hi := c.IndexRange.Min, c.IndexRange.Max
		out.IndexMin, out.IndexMax = &lo, &hi
	}

	return out
}

// ToGA converts the file form into a ga.Config. Logging and chart toggles
// are left on; the command decides which collaborators exist.
func (g GA) ToGA() ga.Config {
	cfg := ga.Config{
		PopulationSize:     g.PopulationSize,
		MaxGenerations:     g.MaxGenerations,
		MutationRate:       g.MutationRate,
		CrossoverRate:      g.CrossoverRate,
		EliteCount:         g.EliteCount,
		Patience:           g.Patience,
		DiversityThreshold: g.DiversityThreshold,
		Seed:               g.Seed,
		EnableLogging:      true,
		DrawCharts:         true,
	}
	if g.IndexMin != nil && g.IndexMax != nil {
		cfg.IndexRange = ga.NewIndexRange(*g.IndexMin, *g.IndexMax)
	}

	return cfg
}

var validate = validator.New()

// Validate checks every struct tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Decode reads YAML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("Decode: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("Decode: %w", err)
	}

	return cfg, nil
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("Load(%s): %w", path, err)
	}

	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return cfg, fmt.Errorf("Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}

	return buf.Bytes(), nil
}

// ExplicitGAKeys reports which keys of the "ga" section the file at path
// actually sets, so that defaults filled in by Decode are not mistaken for
// user choices.
func ExplicitGAKeys(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ExplicitGAKeys(%s): %w", path, err)
	}

	var doc struct {
		GA map[string]yaml.Node `yaml:"ga"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ExplicitGAKeys(%s): %w: %w", path, ErrInvalidConfig, err)
	}

	keys := make(map[string]bool, len(doc.GA))
	for k := range doc.GA {
		keys[k] = true
	}

	return keys, nil
}

// Overlay copies onto base only the fields named in keys. The index range is
// taken when either bound is named; both bounds must then be present.
func (g GA) Overlay(base ga.Config, keys map[string]bool) ga.Config {
	out := base
	if keys["population_size"] {
		out.PopulationSize = g.PopulationSize
	}
	if keys["max_generations"] {
		out.MaxGenerations = g.MaxGenerations
	}
	if keys["mutation_rate"] {
		out.MutationRate = g.MutationRate
	}
	if keys["crossover_rate"] {
		out.CrossoverRate = g.CrossoverRate
	}
	if keys["elite_count"] {
		out.EliteCount = g.EliteCount
	}
	if keys["patience"] {
		out.Patience = g.Patience
	}
	if keys["diversity_threshold"] {
		out.DiversityThreshold = g.DiversityThreshold
	}
	if keys["seed"] {
		out.Seed = g.Seed
	}
	if keys["index_min"] || keys["index_max"] {
		out.IndexRange = g.ToGA().IndexRange
	}

	return out
}
