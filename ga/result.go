// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// result.go - what a finished run reports.

package ga

import (
	"fmt"
	"time"
)

// StopCause classifies why a run ended.
type StopCause int

const (
	// StopMaxGenerations means the run used its full generation budget.
	StopMaxGenerations StopCause = iota
	// StopPatience means the no-improvement counter reached Config.Patience.
	StopPatience
	// StopDiversity means diversity fell below Config.DiversityThreshold.
	StopDiversity
)

// String returns a short stable name for the cause.
func (c StopCause) String() string {
	switch c {
	case StopPatience:
		return "patience"
	case StopDiversity:
		return "diversity"
	default:
		return "max-generations"
	}
}

// History is one row of the per-generation trace.
type History struct {
	Generation     int
	BestFitness    int
	Diversity      float64
	GenerationTime time.Duration
}

// GenerationTimeMillis returns GenerationTime in fractional milliseconds.
func (h History) GenerationTimeMillis() float64 {
	return float64(h.GenerationTime) / float64(time.Millisecond)
}

// Result is the outcome of a single run.
type Result struct {
	Best           *Individual // clone of the global best
	Generations    int         // generations actually executed
	FinalDiversity float64
	EarlyStopped   bool
	Stop           StopCause
	StopReason     string
	Elapsed        time.Duration
	History        []History
}

func patienceReason(patience int) string {
	return fmt.Sprintf("no improvement in %d consecutive generations", patience)
}

func diversityReason(diversity, threshold float64) string {
	return fmt.Sprintf("population diversity %.4f below threshold %.4f", diversity, threshold)
}

func maxGenerationsReason(max int) string {
	return fmt.Sprintf("reached max generations (%d)", max)
}
