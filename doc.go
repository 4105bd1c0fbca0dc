// Package cliquega is an in-memory search for large cliques in undirected
// graphs, driven by a genetic algorithm.
//
// 🚀 What is cliquega?
//
//	A small, deterministic-by-seed library and CLI that brings together:
//		• Graph primitives: bitset adjacency over vertices 1..n
//		• Individuals: selections repaired into cliques, then grown to maximal ones
//		• Evolution: rank selection, one-point crossover, adaptive mutation, elitism
//		• Early stopping: patience and population-diversity thresholds
//		• Benchmarks: repeated independent runs, best run chosen
//		• Reports: console summary, generation log, PNG charts, XLSX workbook
//		• Operations: Prometheus textfile metrics and a SQLite run archive
//
// ✨ Why cliquega?
//
//   - Every individual is a maximal clique after evaluation, so fitness is
//     simply the clique size
//   - Same seed, same run: all randomness flows from one explicit source
//   - Collaborators (logs, charts, metrics) are side channels; their failures
//     never stop a run
//
// Packages:
//
//	graph/    undirected simple graph with bitset rows
//	ga/       Individual, Population, Engine, Benchmark
//	builder/  synthetic topologies: complete, cycle, wheel, planted clique, ...
//	graphio/  text and DIMACS readers/writers with line-level warnings
//	config/   YAML configuration with validation
//	report/   summary, generation log, charts, workbook
//	metrics/  Prometheus collector (ga.Observer)
//	archive/  SQLite benchmark history
//	cmd/cliquega  the run, bench, generate and history commands
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╳ │
//	    3───4───5───6
//
//	K4 on 1..4 with a tail; the search settles on {1,2,3,4}, fitness 4.
//
//	go install github.com/katalvlaran/cliquega/cmd/cliquega@latest
package cliquega
