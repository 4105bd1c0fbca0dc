// SPDX-License-Identifier: MIT
// Package: cliquega/graph
//
// errors.go - sentinel errors for the graph package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Methods attach call context with %w ("AddEdge(3,9): ...: graph: vertex id out of range").

package graph

import "errors"

var (
	// ErrInvalidVertexCount indicates New was called with n < 1.
	ErrInvalidVertexCount = errors.New("graph: vertex count must be at least 1")

	// ErrVertexOutOfRange indicates a vertex id outside [1,n].
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")
)
