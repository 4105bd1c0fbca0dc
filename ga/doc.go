// SPDX-License-Identifier: MIT

// Package ga searches for large cliques with a genetic algorithm.
//
// An Individual is a vertex subset of a shared graph.Graph, stored as a bitset.
// Every evaluation repairs the subset into a clique (dropping the vertex with
// the fewest selected neighbours until only mutually adjacent vertices remain)
// and then grows it greedily in random order into a maximal clique. Fitness is
// the clique size; IndexScore (density / size) is a secondary signal that can
// steer mutation and filter selection through an optional IndexRange.
//
// A Population keeps Individuals sorted by fitness. The Engine evolves it with
// elitism, rank selection, single-point crossover and bit-flip mutation, and
// stops on a generation budget, on stagnation (Patience) or on low genotype
// diversity (DiversityThreshold).
//
// Quick start:
//
//	g, _ := graph.New(5)
//	_ = g.AddEdge(1, 2) // ...
//	cfg := ga.DefaultConfig()
//	cfg.Seed = 42
//	eng, err := ga.NewEngine(g, cfg, ga.WithLogger(logger))
//	if err != nil { /* invalid configuration */ }
//	res, _ := eng.Run()
//	fmt.Println(res.Best.Vertices(), res.StopReason)
//
// Benchmark repeats a run with independent random streams and returns the
// best run together with every run's timing.
//
// Determinism: all randomness flows from one *rand.Rand per run (Config.Seed
// or WithRand). Identical seeds on identical inputs give identical results.
package ga
