// SPDX-License-Identifier: MIT
// Package: cliquega/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2).
//
// Left side is 1..n1, right side is n1+1..n1+n2. Bipartite graphs are
// triangle-free, so every maximal clique is a single edge.

package builder

import "github.com/katalvlaran/cliquega/graph"

const (
	methodBipartite  = "CompleteBipartite"
	minPartitionSize = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if err := checkMin(methodBipartite, "n1", n1, minPartitionSize); err != nil {
			return err
		}
		if err := checkMin(methodBipartite, "n2", n2, minPartitionSize); err != nil {
			return err
		}
		if err := checkFits(methodBipartite, g, n1+n2); err != nil {
			return err
		}

		for u := 1; u <= n1; u++ {
			for v := n1 + 1; v <= n1+n2; v++ {
				if err := addEdge(methodBipartite, g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
