// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// observer.go - collaborator hooks invoked by the Engine.
//
// Hooks are side channels. An error returned by GenerationLog or ChartRenderer
// is logged at warn level and the run carries on without that side effect.

package ga

import "time"

// GenerationStats is the per-generation snapshot passed to collaborators.
type GenerationStats struct {
	Generation    int           // 0-based generation index
	BestFitness   int           // fitness of the population's best member
	GlobalBest    int           // best fitness seen so far in the run
	Diversity     float64       // distinct genotypes / population size
	NoImprovement int           // consecutive generations without a new global best
	Elapsed       time.Duration // time spent producing this generation
}

// GenerationLog receives the full population after every generation.
// Called only when Config.EnableLogging is set.
type GenerationLog interface {
	LogGeneration(stats GenerationStats, pop *Population) error
}

// ChartRenderer draws the run history once the run has finished.
// Called only when Config.DrawCharts is set.
type ChartRenderer interface {
	RenderRun(history []History) error
}

// Observer receives lightweight events regardless of the logging toggles.
type Observer interface {
	OnGeneration(stats GenerationStats)
	OnRunComplete(res *Result)
}
