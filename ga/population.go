// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// population.go - an ordered collection of Individuals.
//
// Invariant: after every content change the slice is sorted by fitness,
// descending, with a stable sort so equal-fitness members keep their order.
// Best() is therefore element 0 and Worst() the last element.

package ga

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/cliquega/graph"
)

// Population is a fitness-sorted, non-empty slice of Individuals.
type Population struct {
	g       *graph.Graph
	members []*Individual
}

// NewPopulation fills a population with size random Individuals and sorts it.
//
// Errors:
//   - ErrNilGraph when g is nil.
//   - ErrInvalidPopulationSize when size ≤ 0.
//
// Complexity: size × (O(n) draws + one Evaluate) + O(size·log size).
func NewPopulation(g *graph.Graph, size int, rng *rand.Rand) (*Population, error) {
	if g == nil {
		return nil, fmt.Errorf("NewPopulation: %w", ErrNilGraph)
	}
	if size <= 0 {
		return nil, fmt.Errorf("NewPopulation: size=%d: %w", size, ErrInvalidPopulationSize)
	}

	p := &Population{g: g, members: make([]*Individual, size)}
	for i := range p.members {
		p.members[i] = NewRandomIndividual(g, rng)
	}
	p.SortByFitness()

	return p, nil
}

// SortByFitness orders members by fitness, descending; ties keep their order.
func (p *Population) SortByFitness() {
	sort.SliceStable(p.members, func(i, j int) bool {
		return p.members[i].fitness > p.members[j].fitness
	})
}

// Best returns the fittest member (not a copy).
func (p *Population) Best() *Individual { return p.members[0] }

// Worst returns the least fit member (not a copy).
func (p *Population) Worst() *Individual { return p.members[len(p.members)-1] }

// Len returns the number of members.
func (p *Population) Len() int { return len(p.members) }

// At returns the member at rank i (0 = best).
func (p *Population) At(i int) *Individual { return p.members[i] }

// Individuals returns a copy of the member slice. The Individuals themselves are shared.
func (p *Population) Individuals() []*Individual {
	out := make([]*Individual, len(p.members))
	copy(out, p.members)

	return out
}

// Replace swaps in next as the new contents and re-sorts.
// next must be non-empty; the Population takes ownership of its Individuals.
func (p *Population) Replace(next []*Individual) {
	p.members = p.members[:0]
	p.members = append(p.members, next...)
	p.SortByFitness()
}

// Elite returns clones of the top min(k, Len()) members. k ≤ 0 yields nil.
func (p *Population) Elite(k int) []*Individual {
	if k <= 0 {
		return nil
	}
	if k > len(p.members) {
		k = len(p.members)
	}

	out := make([]*Individual, k)
	for i := 0; i < k; i++ {
		out[i] = p.members[i].Clone()
	}

	return out
}

// Diversity returns distinct genotypes / Len(), in [1/Len(), 1].
func (p *Population) Diversity() float64 {
	seen := make(map[string]struct{}, len(p.members))
	for _, ind := range p.members {
		seen[ind.Key()] = struct{}{}
	}

	return float64(len(seen)) / float64(len(p.members))
}
