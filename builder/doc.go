// SPDX-License-Identifier: MIT

// Package builder generates graph.Graph instances for tests, examples and the
// generate command.
//
// Deterministic constructors:
//   - Complete(k)            K_k on 1..k
//   - Cycle(n), Path(n)      C_n and P_n on 1..n
//   - Star(n), Wheel(n)      hub vertex 1, leaves/rim 2..n
//   - CompleteBipartite(a,b) left 1..a, right a+1..a+b
//
// Stochastic constructors (need WithSeed or WithRand):
//   - RandomSparse(n, p)     G(n,p)
//   - PlantedClique(n, k, p) G(n,p) with a hidden K_k
//
// Constructors overlay edges on one vertex range, so they compose:
//
//	g, err := builder.BuildGraph(50, []builder.BuilderOption{builder.WithSeed(1)},
//		builder.RandomSparse(50, 0.1),
//		builder.Complete(8), // K_8 on 1..8 inside the noise
//	)
//
// Option constructors panic on nil input; constructors return sentinel errors
// (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed) wrapped with the constructor name.
package builder
