// SPDX-License-Identifier: MIT
// Package: cliquega/builder
//
// impl_cycle.go - Cycle(n) and Path(n) on vertices 1..n.
//
// Contract:
//   • Cycle: n ≥ 3; edges i–(i+1) for i=1..n-1, then n–1.
//   • Path:  n ≥ 2; edges i–(i+1) for i=1..n-1.
//   • g must hold at least n vertices.
//
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/cliquega/graph"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3

	methodPath   = "Path"
	minPathNodes = 2
)

// Cycle returns a Constructor that builds the ring 1-2-...-n-1.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if err := checkMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		if err := checkFits(methodCycle, g, n); err != nil {
			return err
		}
		if err := chain(methodCycle, g, n); err != nil {
			return err
		}

		// Close the ring.
		return addEdge(methodCycle, g, n, 1)
	}
}

// Path returns a Constructor that builds the path 1-2-...-n.
func Path(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if err := checkMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		if err := checkFits(methodPath, g, n); err != nil {
			return err
		}

		return chain(methodPath, g, n)
	}
}

// chain adds i–(i+1) for i = 1..n-1.
func chain(method string, g *graph.Graph, n int) error {
	for i := 1; i < n; i++ {
		if err := addEdge(method, g, i, i+1); err != nil {
			return err
		}
	}

	return nil
}
