// SPDX-License-Identifier: MIT
// Package: cliquega/builder
//
// api.go - BuildGraph orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g over 1..n,
//     resolves cfg, runs cons in order.
//   - Constructors only add edges. Each one works on a prefix 1..k of the
//     vertex range (or on vertices it draws from cfg.rng) and fails with
//     ErrTooFewVertices when the graph is smaller than it needs.
//   - Constructors compose by overlay: RandomSparse(n,p) followed by
//     Complete(k) hides K_k inside noise.
//   - Determinism: same n, options, seed and constructor order give the same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquega/graph"
)

// Constructor adds a topology to g using the resolved builderConfig.
// It validates its parameters first and returns sentinel errors; it never panics.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a graph over vertices 1..n and applies cons in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned.
//
// Errors:
//   - ErrTooFewVertices when n < 1 or a constructor needs more vertices.
//   - ErrConstructFailed for a nil constructor.
//   - any constructor sentinel (ErrInvalidProbability, ErrNeedRandSource, ...).
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w: %w", n, ErrTooFewVertices, err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
