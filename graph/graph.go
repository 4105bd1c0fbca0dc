// SPDX-License-Identifier: MIT
// Package: cliquega/graph
//
// graph.go - the Graph type and its constructor.
//
// Model:
//   - Vertices are the integers 1..n (n ≥ 1). Index 0 is never a vertex.
//   - Edges are undirected and simple: AddEdge stores u–v and v–u, never u–u.
//   - Adjacency is a dense bit matrix, one bitset row per vertex, so IsEdge is O(1)
//     and set queries (NeighborsIn, AdjacentToAll) run word-at-a-time.
//
// Lifecycle:
//   - A Graph is populated once (New + AddEdge) by an input collaborator and is
//     treated as read-only afterwards. Every Individual of a run shares it.
//   - There is no RemoveEdge: the search never mutates the instance.
//
// Concurrency:
//   - AddEdge is not synchronized. Once loading is finished, all read methods
//     are safe to call from any number of goroutines.

package graph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// minVertices is the smallest admissible vertex count.
const minVertices = 1

// Graph is an undirected simple graph over the vertex ids 1..n.
type Graph struct {
	n     int              // vertex count
	rows  []*bitset.BitSet // rows[v] has bit u set iff u–v is an edge; rows[0] unused
	edges int              // number of distinct undirected edges
}

// New returns an edgeless Graph over vertices 1..n.
//
// Errors:
//   - ErrInvalidVertexCount if n < 1.
//
// Complexity: O(n²/64) words of storage, O(n) allocations.
func New(n int) (*Graph, error) {
	if n < minVertices {
		return nil, fmt.Errorf("New: n=%d < min=%d: %w", n, minVertices, ErrInvalidVertexCount)
	}

	g := &Graph{
		n:    n,
		rows: make([]*bitset.BitSet, n+1),
	}
	for v := 1; v <= n; v++ {
		// Row length n+1 keeps vertex ids as direct bit indices.
		g.rows[v] = bitset.New(uint(n + 1))
	}

	return g, nil
}

// Size returns the vertex count n.
// Complexity: O(1).
func (g *Graph) Size() int {
	return g.n
}

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// AddEdge inserts the undirected edge u–v. Re-adding an existing edge is a no-op.
//
// Errors:
//   - ErrVertexOutOfRange if u or v lies outside [1,n].
//   - ErrSelfLoop if u == v.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkPair(u, v); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, err)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if g.rows[u].Test(uint(v)) {
		return nil
	}

	g.rows[u].Set(uint(v))
	g.rows[v].Set(uint(u))
	g.edges++

	return nil
}

// IsEdge reports whether u and v are adjacent.
//
// Errors:
//   - ErrVertexOutOfRange if u or v lies outside [1,n].
//
// Complexity: O(1).
func (g *Graph) IsEdge(u, v int) (bool, error) {
	if err := g.checkPair(u, v); err != nil {
		return false, fmt.Errorf("IsEdge(%d,%d): %w", u, v, err)
	}

	return g.rows[u].Test(uint(v)), nil
}

// checkPair validates both endpoints against [1,n].
func (g *Graph) checkPair(u, v int) error {
	if u < minVertices || u > g.n || v < minVertices || v > g.n {
		return fmt.Errorf("vertex ids (%d,%d) outside [1,%d]: %w", u, v, g.n, ErrVertexOutOfRange)
	}

	return nil
}

// checkVertex validates a single vertex id against [1,n].
func (g *Graph) checkVertex(v int) error {
	if v < minVertices || v > g.n {
		return fmt.Errorf("vertex id %d outside [1,%d]: %w", v, g.n, ErrVertexOutOfRange)
	}

	return nil
}
