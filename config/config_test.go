package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquega/config"
	"github.com/katalvlaran/cliquega/ga"
)

func TestDefault_MatchesGA(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	got := cfg.GA.ToGA()
	assert.Equal(t, ga.DefaultConfig(), got)
	assert.Equal(t, ga.DefaultRuns, cfg.Bench.Runs)
	assert.Equal(t, "output.txt", cfg.Output.SummaryFile)
}

func TestDecode_PartialOverridesDefaults(t *testing.T) {
	src := `
ga:
  population_size: 64
  patience: 12
  index_min: 0.05
  index_max: 0.25
bench:
  runs: 3
logging:
  level: debug
`
	cfg, err := config.Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.GA.PopulationSize)
	assert.Equal(t, 12, cfg.GA.Patience)
	assert.Equal(t, ga.DefaultMaxGenerations, cfg.GA.MaxGenerations, "untouched keys keep defaults")
	assert.Equal(t, 3, cfg.Bench.Runs)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "auto", cfg.Logging.Format)

	gc := cfg.GA.ToGA()
	require.NotNil(t, gc.IndexRange)
	assert.Equal(t, ga.IndexRange{Min: 0.05, Max: 0.25}, *gc.IndexRange)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative population": "ga:\n  population_size: -1\n",
		"rate above one":      "ga:\n  mutation_rate: 1.5\n",
		"zero runs":           "bench:\n  runs: 0\n",
		"bad level":           "logging:\n  level: loud\n",
		"bad format":          "logging:\n  format: xml\n",
		"unknown key":         "ga:\n  populaton_size: 10\n",
		"not yaml":            "ga: [1, 2\n",
		"empty summary":       "output:\n  summary_file: \"\"\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(src))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestIndexRange_DisabledWhenInverted(t *testing.T) {
	lo, hi := 0.3, 0.1
	g := config.Default().GA
	g.IndexMin, g.IndexMax = &lo, &hi
	assert.Nil(t, g.ToGA().IndexRange)
}

func TestLoad_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.GA.Seed = 99
	cfg.GA.DiversityThreshold = 0.2
	cfg.Output.Workbook = "results.xlsx"

	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cliquega.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromGA_KeepsRange(t *testing.T) {
	c := ga.DefaultConfig()
	c.IndexRange = ga.NewIndexRange(0.1, 0.2)

	g := config.FromGA(c)
	require.NotNil(t, g.IndexMin)
	require.NotNil(t, g.IndexMax)
	assert.Equal(t, 0.1, *g.IndexMin)
	assert.Equal(t, 0.2, *g.IndexMax)
}

func TestExplicitGAKeys_OverlayOnlyNamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ga:\n  patience: 9\n  mutation_rate: 0.2\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	keys, err := config.ExplicitGAKeys(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"patience": true, "mutation_rate": true}, keys)

	inst := ga.DefaultConfig()
	inst.PopulationSize = 33 // from an instance file
	inst.Patience = 4

	got := cfg.GA.Overlay(inst, keys)
	assert.Equal(t, 33, got.PopulationSize, "instance value survives")
	assert.Equal(t, 9, got.Patience, "file value wins")
	assert.Equal(t, 0.2, got.MutationRate)
	assert.Nil(t, got.IndexRange)
}

func TestExplicitGAKeys_NoSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench:\n  runs: 2\n"), 0o644))

	keys, err := config.ExplicitGAKeys(path)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
