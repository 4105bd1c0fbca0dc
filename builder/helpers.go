// SPDX-License-Identifier: MIT
// Package: cliquega/builder
//
// helpers.go - shared checks and the edge insertion wrapper.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquega/graph"
)

// probability bounds shared by the stochastic constructors.
const (
	probMin = 0.0
	probMax = 1.0
)

// checkMin validates got ≥ min for the named constructor.
func checkMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// checkFits validates that g hosts at least need vertices.
func checkFits(method string, g *graph.Graph, need int) error {
	if g.Size() < need {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w", method, need, g.Size(), ErrTooFewVertices)
	}

	return nil
}

// checkProbability validates p ∈ [0,1].
func checkProbability(method string, p float64) error {
	if !(p >= probMin && p <= probMax) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// addEdge inserts u–v and wraps graph errors with the constructor name.
func addEdge(method string, g *graph.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}
