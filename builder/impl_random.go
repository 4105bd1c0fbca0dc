// SPDX-License-Identifier: MIT
// Package: cliquega/builder
//
// impl_random.go - RandomSparse(n, p) and PlantedClique(n, k, p).
//
// RandomSparse is G(n,p): each unordered pair {i,j}, i<j, is included
// independently with probability p, trials in (i asc, j asc) order.
// PlantedClique first samples G(n,p), then picks k distinct vertices uniformly
// (one partial Fisher–Yates pass) and connects them all. It is the standard
// benchmark for clique heuristics: the planted set is a known lower bound.
//
// Contract:
//   • n ≥ 1, 0 ≤ p ≤ 1, and for PlantedClique 1 ≤ k ≤ n.
//   • cfg.rng is required unless p ∈ {0,1} (RandomSparse only).

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cliquega/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1

	methodPlantedClique = "PlantedClique"
	minPlantedSize      = 1
)

// RandomSparse returns a Constructor sampling G(n,p) over 1..n.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := checkMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := checkProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := checkFits(methodRandomSparse, g, n); err != nil {
			return err
		}

		return sample(methodRandomSparse, g, n, p, cfg)
	}
}

// PlantedClique returns a Constructor sampling G(n,p) with a hidden K_k.
func PlantedClique(n, k int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if err := checkMin(methodPlantedClique, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := checkMin(methodPlantedClique, "k", k, minPlantedSize); err != nil {
			return err
		}
		if k > n {
			return fmt.Errorf("%s: k=%d > n=%d: %w", methodPlantedClique, k, n, ErrTooFewVertices)
		}
		if err := checkProbability(methodPlantedClique, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodPlantedClique, ErrNeedRandSource)
		}
		if err := checkFits(methodPlantedClique, g, n); err != nil {
			return err
		}

		if err := sample(methodPlantedClique, g, n, p, cfg); err != nil {
			return err
		}

		return connectAll(methodPlantedClique, g, pickVertices(n, k, cfg))
	}
}

// PlantedVertices replays the vertex draw of PlantedClique(n, k, p) built with
// WithSeed(seed) as the first stochastic constructor, returning the planted
// clique in ascending order. It returns nil for parameters PlantedClique would reject.
func PlantedVertices(n, k int, p float64, seed int64) []int {
	if n < minRandomSparseVertices || k < minPlantedSize || k > n || !(p >= probMin && p <= probMax) {
		return nil
	}

	cfg := newBuilderConfig(WithSeed(seed))
	// Consume exactly the draws the edge sampling makes.
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			cfg.rng.Float64()
		}
	}

	return pickVertices(n, k, cfg)
}

// sample runs the G(n,p) trials. With p ∈ {0,1} and no RNG it is deterministic.
func sample(method string, g *graph.Graph, n int, p float64, cfg builderConfig) error {
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			var keep bool
			if cfg.rng == nil {
				keep = p == probMax
			} else {
				keep = cfg.rng.Float64() < p
			}
			if !keep {
				continue
			}
			if err := addEdge(method, g, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// pickVertices draws k distinct vertices of 1..n and returns them sorted.
func pickVertices(n, k int, cfg builderConfig) []int {
	pool := seq(1, n)
	for i := 0; i < k; i++ {
		j := i + cfg.rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	picked := pool[:k]
	sort.Ints(picked)

	return picked
}
