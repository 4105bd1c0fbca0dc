package ga_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquega/ga"
)

func TestNewPopulation_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))

	_, err := ga.NewPopulation(nil, 5, rng)
	require.ErrorIs(t, err, ga.ErrNilGraph)

	g := completeGraph(t, 3)
	for _, size := range []int{0, -3} {
		_, err = ga.NewPopulation(g, size, rng)
		require.ErrorIs(t, err, ga.ErrInvalidPopulationSize, "size=%d", size)
	}
}

func TestPopulation_SortedBestFirst(t *testing.T) {
	g := randomGraph(t, 40, 0.4, seedDet)
	pop, err := ga.NewPopulation(g, 25, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	require.Equal(t, 25, pop.Len())

	for i := 1; i < pop.Len(); i++ {
		require.GreaterOrEqual(t, pop.At(i-1).Fitness(), pop.At(i).Fitness(), "rank %d", i)
		require.GreaterOrEqual(t, pop.Best().Fitness(), pop.At(i).Fitness())
	}
	assert.Same(t, pop.At(0), pop.Best())
	assert.Same(t, pop.At(pop.Len()-1), pop.Worst())
}

func TestPopulation_SortIsStable(t *testing.T) {
	// Only a cycle: every member has fitness 2, so order must be untouched.
	g := cycleGraph(t, 7)
	pop, err := ga.NewPopulation(g, 10, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)

	before := pop.Individuals()
	pop.SortByFitness()
	for i, ind := range pop.Individuals() {
		assert.Same(t, before[i], ind)
	}
}

func TestPopulation_Elite(t *testing.T) {
	g := randomGraph(t, 20, 0.5, seedDet)
	pop, err := ga.NewPopulation(g, 3, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)

	assert.Nil(t, pop.Elite(0))
	assert.Len(t, pop.Elite(2), 2)

	elite := pop.Elite(10)
	require.Len(t, elite, 3, "elite is capped at the population size")
	for i, e := range elite {
		assert.NotSame(t, pop.At(i), e, "elite members are clones")
		assert.Equal(t, pop.At(i).Key(), e.Key())
	}
}

func TestPopulation_Replace(t *testing.T) {
	g := edgeGraph(t, 4, [2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3})
	rng := rand.New(rand.NewSource(seedDet))
	pop, err := ga.NewPopulation(g, 2, rng)
	require.NoError(t, err)

	small, err := ga.NewIndividual(g, 4)
	require.NoError(t, err)
	small.Evaluate(rng)
	big, err := ga.NewIndividual(g, 1, 2)
	require.NoError(t, err)
	big.Evaluate(rng)

	pop.Replace([]*ga.Individual{small, big})
	require.Equal(t, 2, pop.Len())
	assert.Same(t, big, pop.Best())
	assert.Equal(t, 3, pop.Best().Fitness())
	assert.Same(t, small, pop.Worst())
}

func TestPopulation_DiversityBounds(t *testing.T) {
	g := randomGraph(t, 30, 0.5, seedDet)
	for _, size := range []int{1, 2, 7, 30} {
		pop, err := ga.NewPopulation(g, size, rand.New(rand.NewSource(seedDet)))
		require.NoError(t, err)

		d := pop.Diversity()
		assert.GreaterOrEqual(t, d, 1/float64(size))
		assert.LessOrEqual(t, d, 1.0)
	}

	// A complete graph collapses every genotype to all-ones.
	pop, err := ga.NewPopulation(completeGraph(t, 5), 4, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, pop.Diversity(), 1e-12)

	single, err := ga.NewPopulation(g, 1, rand.New(rand.NewSource(seedDet)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, single.Diversity())
}
