package ga_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquega/builder"
	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/graph"
)

// seedDet is the fixed seed used wherever a test needs reproducible draws.
const seedDet int64 = 20240917

// completeGraph returns K_n.
func completeGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil, builder.Complete(n))
	require.NoError(t, err)

	return g
}

// cycleGraph returns C_n (1-2-...-n-1).
func cycleGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil, builder.Cycle(n))
	require.NoError(t, err)

	return g
}

// edgeGraph returns a graph on n vertices with exactly the listed edges.
func edgeGraph(t *testing.T, n int, edges ...[2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// randomGraph returns a G(n,p) instance drawn from seed.
func randomGraph(t *testing.T, n int, p float64, seed int64) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

func quietConfig() ga.Config {
	cfg := ga.DefaultConfig()
	cfg.Seed = seedDet

	return cfg
}

// requireMaximalClique asserts every evaluation postcondition on ind.
func requireMaximalClique(t *testing.T, ind *ga.Individual) {
	t.Helper()
	require.True(t, ind.IsClique(), "not a clique: %s", ind)
	require.True(t, ind.IsMaximal(), "not maximal: %s", ind)
	require.Equal(t, ind.Len(), ind.Fitness(), "fitness must equal popcount")
	if ind.Fitness() <= 1 {
		require.Zero(t, ind.IndexScore())
	} else {
		require.Greater(t, ind.IndexScore(), 0.0)
		require.LessOrEqual(t, ind.IndexScore(), 1.0)
	}
}
