// SPDX-License-Identifier: MIT
// Package: cliquega/builder
//
// impl_complete.go - Complete(k): K_k on vertices 1..k.
//
// Contract:
//   • k ≥ 1 (else ErrTooFewVertices); g must hold at least k vertices.
//   • Emits edges in (i asc, j asc, i<j) order.
//
// Complexity: O(k²) edges.

package builder

import "github.com/katalvlaran/cliquega/graph"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that connects every pair of vertices in 1..k.
func Complete(k int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if err := checkMin(methodComplete, "k", k, minCompleteNodes); err != nil {
			return err
		}
		if err := checkFits(methodComplete, g, k); err != nil {
			return err
		}

		return connectAll(methodComplete, g, seq(1, k))
	}
}

// connectAll adds every edge among vs.
func connectAll(method string, g *graph.Graph, vs []int) error {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if err := addEdge(method, g, vs[i], vs[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// seq returns lo, lo+1, ..., hi.
func seq(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}

	return out
}
