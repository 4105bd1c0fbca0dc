// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// individual.go - a candidate solution and its evaluation.
//
// Representation:
//   • genes is a bitset of length n+1; bit v selects vertex v, bit 0 is never set.
//   • Each Individual owns its genes exclusively. Clone deep-copies; accessors
//     return copies. No two Individuals ever alias one bitset.
//
// Evaluation (Evaluate) turns any bit pattern into a maximal clique:
//   Stage 1 (repair):  drop the selected vertex with the fewest selected
//                      neighbours until the selection is a clique.
//   Stage 2 (expand):  visit unselected vertices in shuffled order and add each
//                      one adjacent to the whole selection.
//   Stage 3 (score):   fitness = |selection|, indexScore = density / k.

package ga

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/cliquega/graph"
)

// seedProbability is the chance that a fresh random Individual selects a vertex.
const seedProbability = 0.5

// Individual is a vertex subset of a shared Graph plus its cached scores.
type Individual struct {
	g          *graph.Graph
	genes      *bitset.BitSet
	fitness    int
	indexScore float64
}

// newBlank returns an Individual with no vertex selected and zero scores.
func newBlank(g *graph.Graph) *Individual {
	return &Individual{g: g, genes: bitset.New(uint(g.Size() + 1))}
}

// NewRandomIndividual selects each vertex with probability 0.5 and evaluates
// the result, so the returned Individual is already a maximal clique.
//
// Complexity: O(n) draws plus one Evaluate.
func NewRandomIndividual(g *graph.Graph, rng *rand.Rand) *Individual {
	ind := newBlank(g)
	for v := 1; v <= g.Size(); v++ {
		if rng.Float64() < seedProbability {
			ind.genes.Set(uint(v))
		}
	}
	ind.Evaluate(rng)

	return ind
}

// NewIndividual returns an unevaluated Individual selecting exactly vertices.
// Fitness and IndexScore stay zero until Evaluate is called.
//
// Errors:
//   - ErrNilGraph when g is nil.
//   - ErrVertexOutOfRange for any id outside [1,n].
func NewIndividual(g *graph.Graph, vertices ...int) (*Individual, error) {
	if g == nil {
		return nil, fmt.Errorf("NewIndividual: %w", ErrNilGraph)
	}

	ind := newBlank(g)
	for _, v := range vertices {
		if v < 1 || v > g.Size() {
			return nil, fmt.Errorf("NewIndividual: vertex %d outside [1,%d]: %w", v, g.Size(), ErrVertexOutOfRange)
		}
		ind.genes.Set(uint(v))
	}

	return ind, nil
}

// Evaluate repairs the selection into a clique, greedily expands it to a
// maximal clique using rng for the visiting order, and recomputes both scores.
//
// Postconditions:
//   - every two selected vertices are adjacent;
//   - no unselected vertex is adjacent to all selected vertices;
//   - Fitness() == number of selected vertices.
//
// Complexity: O(n²/64) per repair step (at most n steps), O(n²/64) expansion.
func (ind *Individual) Evaluate(rng *rand.Rand) {
	ind.repair()
	ind.expand(rng)
	ind.score()
}

// repair removes minimum-internal-degree vertices until the selection is a clique.
// Ties go to the lowest vertex id.
func (ind *Individual) repair() {
	for {
		k := int(ind.genes.Count())
		if k == 0 {
			return
		}

		var (
			worst    uint
			worstDeg = math.MaxInt
			clique   = true
		)
		for v, ok := ind.genes.NextSet(1); ok; v, ok = ind.genes.NextSet(v + 1) {
			d := ind.g.NeighborsIn(int(v), ind.genes)
			if d != k-1 {
				clique = false
			}
			if d < worstDeg {
				worst, worstDeg = v, d
			}
		}
		if clique {
			return
		}
		ind.genes.Clear(worst)
	}
}

// expand adds every vertex compatible with the selection, in shuffled order.
func (ind *Individual) expand(rng *rand.Rand) {
	n := ind.g.Size()
	candidates := make([]int, 0, n-int(ind.genes.Count()))
	for v := 1; v <= n; v++ {
		if !ind.genes.Test(uint(v)) {
			candidates = append(candidates, v)
		}
	}
	shuffleInts(candidates, rng)

	for _, v := range candidates {
		if ind.g.AdjacentToAll(v, ind.genes) {
			ind.genes.Set(uint(v))
		}
	}
}

// score recomputes fitness and indexScore from the current genes.
func (ind *Individual) score() {
	k := int(ind.genes.Count())
	ind.fitness = k
	ind.indexScore = 0
	if k <= 1 {
		return
	}

	inside := 0
	for v, ok := ind.genes.NextSet(1); ok; v, ok = ind.genes.NextSet(v + 1) {
		inside += ind.g.NeighborsIn(int(v), ind.genes)
	}
	inside /= 2 // each edge counted from both ends

	maxEdges := k * (k - 1) / 2
	density := float64(inside) / float64(maxEdges)
	ind.indexScore = density / float64(k)
}

// Mutate flips each gene independently with probability rate.
// Scores are stale afterwards until Evaluate runs.
func (ind *Individual) Mutate(rate float64, rng *rand.Rand) {
	for v := 1; v <= ind.g.Size(); v++ {
		if rng.Float64() < rate {
			ind.genes.Flip(uint(v))
		}
	}
}

// Splice returns the raw single-point child of p1 and p2: gene v comes from p1
// when v < point and from p2 otherwise. The child is not evaluated.
// point ≤ 1 copies p2 entirely; point > n copies p1 entirely.
func Splice(p1, p2 *Individual, point int) *Individual {
	child := newBlank(p1.g)
	for v := 1; v <= p1.g.Size(); v++ {
		src := p2
		if v < point {
			src = p1
		}
		child.genes.SetTo(uint(v), src.genes.Test(uint(v)))
	}

	return child
}

// Crossover draws a cut point uniformly from [1, n-1] (1 when n == 1),
// splices the parents and evaluates the child.
func Crossover(p1, p2 *Individual, rng *rand.Rand) *Individual {
	n := p1.g.Size()
	point := 1
	if n > 1 {
		point = 1 + rng.Intn(n-1)
	}

	child := Splice(p1, p2, point)
	child.Evaluate(rng)

	return child
}

// Clone returns a deep copy sharing only the Graph.
func (ind *Individual) Clone() *Individual {
	return &Individual{
		g:          ind.g,
		genes:      ind.genes.Clone(),
		fitness:    ind.fitness,
		indexScore: ind.indexScore,
	}
}

// Fitness returns the clique size computed by the last Evaluate.
func (ind *Individual) Fitness() int { return ind.fitness }

// IndexScore returns density/size from the last Evaluate (0 for k ≤ 1).
func (ind *Individual) IndexScore() float64 { return ind.indexScore }

// Graph returns the shared instance.
func (ind *Individual) Graph() *graph.Graph { return ind.g }

// Has reports whether vertex v is selected. Out-of-range ids yield false.
func (ind *Individual) Has(v int) bool {
	if v < 1 || v > ind.g.Size() {
		return false
	}

	return ind.genes.Test(uint(v))
}

// Len returns the number of selected vertices in the current genes,
// which may differ from Fitness between Mutate and Evaluate.
func (ind *Individual) Len() int {
	return int(ind.genes.Count())
}

// Vertices returns the selected vertex ids in ascending order.
func (ind *Individual) Vertices() []int {
	out := make([]int, 0, ind.genes.Count())
	for v, ok := ind.genes.NextSet(1); ok; v, ok = ind.genes.NextSet(v + 1) {
		out = append(out, int(v))
	}

	return out
}

// Genes returns a copy of the gene bitset.
func (ind *Individual) Genes() *bitset.BitSet {
	return ind.genes.Clone()
}

// Key renders genes 1..n as a string of '0' and '1'. Equal keys mean equal genotypes.
func (ind *Individual) Key() string {
	var sb strings.Builder
	sb.Grow(ind.g.Size())
	for v := 1; v <= ind.g.Size(); v++ {
		if ind.genes.Test(uint(v)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// String formats the Individual as "Genes: 0110..., Fitness: k".
func (ind *Individual) String() string {
	return fmt.Sprintf("Genes: %s, Fitness: %d", ind.Key(), ind.fitness)
}

// IsClique reports whether the selected vertices are pairwise adjacent.
func (ind *Individual) IsClique() bool {
	k := int(ind.genes.Count())
	for v, ok := ind.genes.NextSet(1); ok; v, ok = ind.genes.NextSet(v + 1) {
		if ind.g.NeighborsIn(int(v), ind.genes) != k-1 {
			return false
		}
	}

	return true
}

// IsMaximal reports whether no unselected vertex is adjacent to every selected one.
func (ind *Individual) IsMaximal() bool {
	for v := 1; v <= ind.g.Size(); v++ {
		if !ind.genes.Test(uint(v)) && ind.g.AdjacentToAll(v, ind.genes) {
			return false
		}
	}

	return true
}
