package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquega/builder"
	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/graphio"
)

func TestReadText_Full(t *testing.T) {
	src := `5
4
1 2
2 3
3 4
4 5
30
100
0.1
0.8
3
10
0.25
0.1
0.4
`
	in, err := graphio.ReadText(strings.NewReader(src))
	require.NoError(t, err)
	require.Empty(t, in.Warnings)

	assert.Equal(t, 5, in.Graph.Size())
	assert.Equal(t, 4, in.Graph.EdgeCount())
	assert.Equal(t, 4, in.DeclaredEdges)
	assert.Equal(t, 9, in.ParamsRead)

	cfg := in.Config
	assert.Equal(t, 30, cfg.PopulationSize)
	assert.Equal(t, 100, cfg.MaxGenerations)
	assert.Equal(t, 0.1, cfg.MutationRate)
	assert.Equal(t, 0.8, cfg.CrossoverRate)
	assert.Equal(t, 3, cfg.EliteCount)
	assert.Equal(t, 10, cfg.Patience)
	assert.Equal(t, 0.25, cfg.DiversityThreshold)
	require.NotNil(t, cfg.IndexRange)
	assert.Equal(t, ga.IndexRange{Min: 0.1, Max: 0.4}, *cfg.IndexRange)
}

func TestReadText_DefaultsWithoutParams(t *testing.T) {
	in, err := graphio.ReadText(strings.NewReader("3\n1\n1 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, in.ParamsRead)

	def := ga.DefaultConfig()
	assert.Equal(t, def, in.Config)
}

func TestReadText_SkipsBadEdges(t *testing.T) {
	src := "4\n6\n1 2\n3\n1 9\n2 2\nx y\n3 4 extra\n"
	in, err := graphio.ReadText(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{1, 2}, {3, 4}}, in.Graph.Edges())
	require.Len(t, in.Warnings, 4)
	assert.Equal(t, 4, in.Warnings[0].Line)
	assert.Contains(t, in.Warnings[0].String(), "fewer than 2 tokens")
	assert.Contains(t, in.Warnings[1].Msg, "outside")
	assert.Contains(t, in.Warnings[2].Msg, "self-loop")
	assert.Contains(t, in.Warnings[3].Msg, "not two integers")
}

func TestReadText_MissingEdges(t *testing.T) {
	in, err := graphio.ReadText(strings.NewReader("4\n3\n1 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, in.Graph.EdgeCount())
	require.Len(t, in.Warnings, 1)
	assert.Contains(t, in.Warnings[0].Msg, "1 of 3")
}

func TestReadText_MalformedParamKeepsDefaults(t *testing.T) {
	src := "2\n1\n1 2\n40\nlots\n0.2\n"
	in, err := graphio.ReadText(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 1, in.ParamsRead)
	assert.Equal(t, 40, in.Config.PopulationSize)
	assert.Equal(t, ga.DefaultMaxGenerations, in.Config.MaxGenerations)
	assert.Equal(t, ga.DefaultMutationRate, in.Config.MutationRate, "later lines are not read")
	require.Len(t, in.Warnings, 1)
	assert.Equal(t, 5, in.Warnings[0].Line)
}

func TestReadText_HeaderErrors(t *testing.T) {
	cases := map[string]error{
		"":          graphio.ErrEmptyInput,
		"\n\n":      graphio.ErrEmptyInput,
		"abc\n1\n":  graphio.ErrBadHeader,
		"0\n0\n":    graphio.ErrBadHeader,
		"3\n":       graphio.ErrBadHeader,
		"3\n-1\n":   graphio.ErrBadHeader,
		"3\nmany\n": graphio.ErrBadHeader,
	}
	for src, want := range cases {
		_, err := graphio.ReadText(strings.NewReader(src))
		require.ErrorIs(t, err, want, "input %q", src)
	}
}

func TestReadText_ZeroEdges(t *testing.T) {
	in, err := graphio.ReadText(strings.NewReader("3\n0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, in.Graph.EdgeCount())
}

func TestReadDIMACS(t *testing.T) {
	src := `c sample
c second comment
p edge 4 4
e 1 2
e 2 3
e 3 1
e 3 5
x what
e 3 4
`
	in, err := graphio.ReadDIMACS(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatDIMACS, in.Format)
	assert.Equal(t, 4, in.Graph.Size())
	assert.Equal(t, 4, in.Graph.EdgeCount())
	assert.Equal(t, ga.DefaultConfig(), in.Config)
	require.Len(t, in.Warnings, 2)
	assert.Equal(t, 7, in.Warnings[0].Line)
	assert.Equal(t, 8, in.Warnings[1].Line)
}

func TestReadDIMACS_Errors(t *testing.T) {
	cases := map[string]error{
		"c only comments\n":  graphio.ErrEmptyInput,
		"e 1 2\np edge 2 1\n": graphio.ErrBadHeader,
		"p edge x 1\n":        graphio.ErrBadHeader,
		"p cnf 3 1\n":         graphio.ErrBadHeader,
		"p edge 0 0\n":        graphio.ErrBadHeader,
	}
	for src, want := range cases {
		_, err := graphio.ReadDIMACS(strings.NewReader(src))
		require.ErrorIs(t, err, want, "input %q", src)
	}
}

func TestDetect(t *testing.T) {
	assert.Equal(t, graphio.FormatDIMACS, graphio.Detect("brock200_1.clq", nil))
	assert.Equal(t, graphio.FormatDIMACS, graphio.Detect("x.txt", []byte("\nc hello\np edge 1 0\n")))
	assert.Equal(t, graphio.FormatDIMACS, graphio.Detect("x", []byte("p edge 1 0\n")))
	assert.Equal(t, graphio.FormatText, graphio.Detect("input.txt", []byte("5\n3\n")))
}

func TestParseFormat(t *testing.T) {
	f, err := graphio.ParseFormat("DIMACS")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatDIMACS, f)

	f, err = graphio.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, "text", f.String())

	_, err = graphio.ParseFormat("xml")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestWriteThenRead_Text(t *testing.T) {
	g, err := builder.BuildGraph(12, []builder.BuilderOption{builder.WithSeed(5)}, builder.PlantedClique(12, 4, 0.3))
	require.NoError(t, err)

	cfg := ga.DefaultConfig()
	cfg.PopulationSize = 33
	cfg.MutationRate = 0.125
	cfg.IndexRange = ga.NewIndexRange(0.05, 0.5)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteText(&buf, g, &cfg))

	in, err := graphio.ReadText(&buf)
	require.NoError(t, err)
	assert.Empty(t, in.Warnings)
	assert.Equal(t, g.Edges(), in.Graph.Edges())
	assert.Equal(t, 33, in.Config.PopulationSize)
	assert.Equal(t, 0.125, in.Config.MutationRate)
	require.NotNil(t, in.Config.IndexRange)
	assert.Equal(t, *cfg.IndexRange, *in.Config.IndexRange)
}

func TestWriteThenReadFile_DIMACS(t *testing.T) {
	g, err := builder.BuildGraph(7, nil, builder.Wheel(7))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wheel.clq")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, graphio.Write(f, graphio.FormatDIMACS, g, nil, "wheel W7\ngenerated"))
	require.NoError(t, f.Close())

	in, err := graphio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatDIMACS, in.Format)
	assert.Empty(t, in.Warnings)
	assert.Equal(t, g.Edges(), in.Graph.Edges())
}

func TestReadFile_Missing(t *testing.T) {
	_, err := graphio.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
