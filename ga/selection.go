// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// selection.go - rank selection and adaptive mutation.
//
// Rank weights: the member at rank r (0 = best) of N gets (N-r) / (N(N+1)/2).
// The cumulative table depends only on N, so it is built once per run.
// A draw u ∈ [0,1) picks the first rank whose cumulative weight ≥ u, with the
// last rank as fallback against rounding at the top of the table.

package ga

import (
	"math/rand"
	"sort"
)

// maxSelectionRetries caps the draws spent looking for an in-range index score.
const maxSelectionRetries = 10

// Adaptive mutation multipliers applied to the base rate.
const (
	minMutationFactor = 0.5
	maxMutationFactor = 2.0
)

// rankSelector holds the cumulative rank distribution for a fixed population size.
type rankSelector struct {
	cumulative []float64
}

// newRankSelector builds the cumulative weight table for n members.
func newRankSelector(n int) *rankSelector {
	total := float64(n) * float64(n+1) / 2
	cum := make([]float64, n)
	acc := 0.0
	for r := 0; r < n; r++ {
		acc += float64(n-r) / total
		cum[r] = acc
	}

	return &rankSelector{cumulative: cum}
}

// rank maps a uniform draw u to a rank index.
func (s *rankSelector) rank(u float64) int {
	i := sort.SearchFloat64s(s.cumulative, u)
	if i >= len(s.cumulative) {
		return len(s.cumulative) - 1
	}

	return i
}

// selectParent draws one parent from the sorted population. With a non-nil
// band it redraws up to maxSelectionRetries times for an index score inside
// the band and otherwise returns the last candidate drawn.
func (s *rankSelector) selectParent(p *Population, band *IndexRange, rng *rand.Rand) *Individual {
	if band == nil {
		return p.At(s.rank(rng.Float64()))
	}

	var candidate *Individual
	for attempt := 0; attempt < maxSelectionRetries; attempt++ {
		candidate = p.At(s.rank(rng.Float64()))
		if band.Contains(candidate.IndexScore()) {
			return candidate
		}
	}

	return candidate
}

// mutationRate returns the rate to apply to ind: the base rate without a band,
// otherwise a rate falling linearly from 2·base (score at Min or below) to
// 0.5·base (score at Max or above).
func mutationRate(base float64, ind *Individual, band *IndexRange) float64 {
	if band == nil {
		return base
	}

	lo, hi := base*minMutationFactor, base*maxMutationFactor
	t := band.normalize(ind.IndexScore())

	return hi - t*(hi-lo)
}
