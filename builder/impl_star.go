// SPDX-License-Identifier: MIT
// Package: cliquega/builder
//
// impl_star.go - Star(n) and Wheel(n) with hub vertex 1.
//
// Contract:
//   • Star:  n ≥ 2; spokes 1–i for i=2..n.
//   • Wheel: n ≥ 4; spokes 1–i for i=2..n plus the rim cycle 2-3-...-n-2.
//   • g must hold at least n vertices.
//
// The largest clique of a star is an edge, of a wheel with n ≥ 5 a triangle,
// and W_4 is K_4.

package builder

import "github.com/katalvlaran/cliquega/graph"

const (
	methodStar   = "Star"
	minStarNodes = 2

	methodWheel   = "Wheel"
	minWheelNodes = 4

	hubVertex = 1
)

// Star returns a Constructor that connects hub 1 to every vertex 2..n.
func Star(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if err := checkMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		if err := checkFits(methodStar, g, n); err != nil {
			return err
		}

		return spokes(methodStar, g, n)
	}
}

// Wheel returns a Constructor that builds a star on 1..n plus a rim over 2..n.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if err := checkMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		if err := checkFits(methodWheel, g, n); err != nil {
			return err
		}
		if err := spokes(methodWheel, g, n); err != nil {
			return err
		}

		for i := 2; i < n; i++ {
			if err := addEdge(methodWheel, g, i, i+1); err != nil {
				return err
			}
		}

		return addEdge(methodWheel, g, n, 2)
	}
}

// spokes adds hub–i for i = 2..n.
func spokes(method string, g *graph.Graph, n int) error {
	for i := hubVertex + 1; i <= n; i++ {
		if err := addEdge(method, g, hubVertex, i); err != nil {
			return err
		}
	}

	return nil
}
