// SPDX-License-Identifier: MIT
// Package: cliquega/graph
//
// queries.go - read-only neighbourhood queries.
//
// Two groups:
//   - Validated queries (Degree, Neighbors) take external ids and return
//     ErrVertexOutOfRange for bad input.
//   - Set queries (NeighborsIn, AdjacentToAll) sit on the clique-repair hot path.
//     They take ids the caller produced itself from [1,n] and skip validation.

package graph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Degree returns the number of neighbours of v.
//
// Errors:
//   - ErrVertexOutOfRange if v lies outside [1,n].
//
// Complexity: O(n/64).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, fmt.Errorf("Degree(%d): %w", v, err)
	}

	return int(g.rows[v].Count()), nil
}

// Neighbors returns the neighbours of v in ascending order.
//
// Errors:
//   - ErrVertexOutOfRange if v lies outside [1,n].
//
// Complexity: O(n/64 + deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, err)
	}

	out := make([]int, 0, g.rows[v].Count())
	for u, ok := g.rows[v].NextSet(0); ok; u, ok = g.rows[v].NextSet(u + 1) {
		out = append(out, int(u))
	}

	return out, nil
}

// Edges returns every undirected edge once as a pair {u,v} with u < v,
// in lexicographic order.
//
// Complexity: O(n²/64 + m).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	for u := 1; u <= g.n; u++ {
		// Only scan the upper triangle: neighbours strictly greater than u.
		for v, ok := g.rows[u].NextSet(uint(u + 1)); ok; v, ok = g.rows[u].NextSet(v + 1) {
			out = append(out, [2]int{u, int(v)})
		}
	}

	return out
}

// NeighborsIn returns |N(v) ∩ set|, the number of vertices of set adjacent to v.
// v must lie in [1,n]; set is indexed by vertex id.
//
// Complexity: O(n/64).
func (g *Graph) NeighborsIn(v int, set *bitset.BitSet) int {
	return int(g.rows[v].IntersectionCardinality(set))
}

// AdjacentToAll reports whether v is adjacent to every vertex of set.
// An empty set yields true. v must lie in [1,n] and must not be a member of set
// (no self-loops exist, so v ∈ set always yields false).
//
// Complexity: O(n/64).
func (g *Graph) AdjacentToAll(v int, set *bitset.BitSet) bool {
	return g.rows[v].IsSuperSet(set)
}

// Density returns 2m / (n(n-1)), or 0 when n == 1.
//
// Complexity: O(1).
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0
	}

	return 2 * float64(g.edges) / (float64(g.n) * float64(g.n-1))
}
