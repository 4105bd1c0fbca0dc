// Package graph provides the undirected simple graph searched by cliquega.
//
// Vertices are 1..n. Adjacency is stored as one bitset per vertex, which
// makes the two queries the search leans on word-parallel:
//
//	NeighborsIn(v, set)   : |N(v) ∩ set|, used when repairing a selection
//	AdjacentToAll(v, set) : set ⊆ N(v), used when growing a clique
//
// A Graph is built once and read concurrently afterwards.
package graph
