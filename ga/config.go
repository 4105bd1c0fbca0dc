// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// config.go - run parameters, defaults and validation.

package ga

import (
	"fmt"
	"math"
)

// Defaults match the parameter values the text instance format falls back to.
const (
	DefaultPopulationSize     = 20
	DefaultMaxGenerations     = 50
	DefaultMutationRate       = 0.05
	DefaultCrossoverRate      = 0.7
	DefaultEliteCount         = 2
	DefaultPatience           = 0
	DefaultDiversityThreshold = 0.0
)

// IndexRange is an inclusive band [Min, Max] of acceptable index scores.
// A nil *IndexRange means filtering and adaptive mutation are disabled.
type IndexRange struct {
	Min float64
	Max float64
}

// NewIndexRange returns the range [min, max], or nil (disabled) when max ≤ min
// or either bound is not finite.
func NewIndexRange(min, max float64) *IndexRange {
	r := &IndexRange{Min: min, Max: max}
	if !r.valid() {
		return nil
	}

	return r
}

// valid reports finite bounds with Max > Min. A literal IndexRange that
// NewIndexRange would have refused is rejected by Config.Validate.
func (r *IndexRange) valid() bool {
	return !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) && r.Max > r.Min
}

// Contains reports whether score lies in [Min, Max].
func (r *IndexRange) Contains(score float64) bool {
	return score >= r.Min && score <= r.Max
}

// normalize maps score into [0,1] relative to the range, clamped.
func (r *IndexRange) normalize(score float64) float64 {
	t := (score - r.Min) / (r.Max - r.Min)
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// Config carries every knob of a single run.
//
// Zero-valued Patience and DiversityThreshold disable the corresponding
// early-stop condition. Seed 0 selects the package default seed; an explicit
// generator passed through WithRand takes precedence over Seed.
type Config struct {
	PopulationSize     int
	MaxGenerations     int
	MutationRate       float64
	CrossoverRate      float64
	EliteCount         int
	Patience           int
	DiversityThreshold float64
	IndexRange         *IndexRange
	Seed               int64

	// EnableLogging gates the per-generation log collaborator.
	EnableLogging bool
	// DrawCharts gates the chart collaborator at the end of a run.
	DrawCharts bool
}

// DefaultConfig returns the stock parameter set with logging and charts enabled.
func DefaultConfig() Config {
	return Config{
		PopulationSize:     DefaultPopulationSize,
		MaxGenerations:     DefaultMaxGenerations,
		MutationRate:       DefaultMutationRate,
		CrossoverRate:      DefaultCrossoverRate,
		EliteCount:         DefaultEliteCount,
		Patience:           DefaultPatience,
		DiversityThreshold: DefaultDiversityThreshold,
		EnableLogging:      true,
		DrawCharts:         true,
	}
}

// Validate checks every field and returns the first violation found.
func (c Config) Validate() error {
	switch {
	case c.PopulationSize <= 0:
		return fmt.Errorf("Validate: populationSize=%d: %w", c.PopulationSize, ErrInvalidPopulationSize)
	case c.MaxGenerations <= 0:
		return fmt.Errorf("Validate: maxGenerations=%d: %w", c.MaxGenerations, ErrInvalidGenerations)
	case !inUnit(c.MutationRate):
		return fmt.Errorf("Validate: mutationRate=%g: %w", c.MutationRate, ErrInvalidMutationRate)
	case !inUnit(c.CrossoverRate):
		return fmt.Errorf("Validate: crossoverRate=%g: %w", c.CrossoverRate, ErrInvalidCrossoverRate)
	case c.EliteCount < 0:
		return fmt.Errorf("Validate: eliteCount=%d: %w", c.EliteCount, ErrInvalidEliteCount)
	case c.Patience < 0:
		return fmt.Errorf("Validate: patience=%d: %w", c.Patience, ErrInvalidPatience)
	case math.IsNaN(c.DiversityThreshold) || c.DiversityThreshold < 0:
		return fmt.Errorf("Validate: diversityThreshold=%g: %w", c.DiversityThreshold, ErrInvalidDiversityThreshold)
	case c.IndexRange != nil && !c.IndexRange.valid():
		return fmt.Errorf("Validate: indexRange=[%g, %g]: %w", c.IndexRange.Min, c.IndexRange.Max, ErrInvalidIndexRange)
	}

	return nil
}

// inUnit reports x ∈ [0,1]; NaN is rejected.
func inUnit(x float64) bool {
	return x >= 0 && x <= 1
}
