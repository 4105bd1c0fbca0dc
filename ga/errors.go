// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// errors.go - sentinel errors for the ga package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors and Validate attach context with %w.
//   • The evolutionary loop itself never returns these: once an Engine exists,
//     a run always completes. Collaborator failures are logged, not returned.

package ga

import "errors"

var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to a constructor.
	ErrNilGraph = errors.New("ga: graph is nil")

	// ErrInvalidPopulationSize indicates PopulationSize ≤ 0.
	ErrInvalidPopulationSize = errors.New("ga: population size must be positive")

	// ErrInvalidGenerations indicates MaxGenerations ≤ 0.
	ErrInvalidGenerations = errors.New("ga: max generations must be positive")

	// ErrInvalidMutationRate indicates a mutation rate outside [0,1].
	ErrInvalidMutationRate = errors.New("ga: mutation rate out of [0,1]")

	// ErrInvalidCrossoverRate indicates a crossover rate outside [0,1].
	ErrInvalidCrossoverRate = errors.New("ga: crossover rate out of [0,1]")

	// ErrInvalidEliteCount indicates EliteCount < 0.
	ErrInvalidEliteCount = errors.New("ga: elite count must be non-negative")

	// ErrInvalidPatience indicates Patience < 0.
	ErrInvalidPatience = errors.New("ga: patience must be non-negative")

	// ErrInvalidDiversityThreshold indicates a threshold < 0 or NaN.
	ErrInvalidDiversityThreshold = errors.New("ga: diversity threshold must be non-negative")

	// ErrInvalidIndexRange indicates a non-nil IndexRange without finite bounds Max > Min.
	// Use NewIndexRange, which returns nil (disabled) for such bounds.
	ErrInvalidIndexRange = errors.New("ga: index range needs finite bounds with max > min")

	// ErrInvalidRunCount indicates Benchmark was asked for fewer than one run.
	ErrInvalidRunCount = errors.New("ga: run count must be positive")

	// ErrVertexOutOfRange indicates NewIndividual received a vertex id outside [1,n].
	ErrVertexOutOfRange = errors.New("ga: vertex id out of range")
)
