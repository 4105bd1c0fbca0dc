// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// rng.go - deterministic random streams for the search.
//
// Every stochastic step (gene seeding, expansion shuffles, selection draws,
// crossover points, mutation flips) reads from one *rand.Rand owned by the run.
// No step touches the global math/rand source.
//
// Concurrency:
//   • *rand.Rand is not goroutine-safe. One stream per run, never shared.
//   • Benchmark derives an independent stream per run with deriveRNG.

package ga

import "math/rand"

// defaultRNGSeed replaces a zero seed so that the zero Config is reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic stream; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG returns a child stream for the given id. base advances by one draw,
// so repeated derivations with the same id still differ. A nil base uses
// defaultRNGSeed as parent.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleInts permutes a in place (Fisher–Yates).
func shuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
