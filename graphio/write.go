// SPDX-License-Identifier: MIT
// Package: cliquega/graphio
//
// write.go - encoders for both formats. Output reads back unchanged.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/graph"
)

// WriteText encodes g in the text format. With a non-nil cfg the seven GA
// parameter lines follow, plus indexMin/indexMax when cfg.IndexRange is set.
func WriteText(w io.Writer, g *graph.Graph, cfg *ga.Config) error {
	bw := bufio.NewWriter(w)
	edges := g.Edges()

	fmt.Fprintf(bw, "%d\n%d\n", g.Size(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d\n", e[0], e[1])
	}

	if cfg != nil {
		fmt.Fprintf(bw, "%d\n%d\n%s\n%s\n%d\n%d\n%s\n",
			cfg.PopulationSize,
			cfg.MaxGenerations,
			formatFloat(cfg.MutationRate),
			formatFloat(cfg.CrossoverRate),
			cfg.EliteCount,
			cfg.Patience,
			formatFloat(cfg.DiversityThreshold),
		)
		if cfg.IndexRange != nil {
			fmt.Fprintf(bw, "%s\n%s\n", formatFloat(cfg.IndexRange.Min), formatFloat(cfg.IndexRange.Max))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}

	return nil
}

// WriteDIMACS encodes g in DIMACS format. Each line of comment becomes a "c" line.
func WriteDIMACS(w io.Writer, g *graph.Graph, comment string) error {
	bw := bufio.NewWriter(w)
	edges := g.Edges()

	if comment != "" {
		for _, line := range strings.Split(comment, "\n") {
			fmt.Fprintf(bw, "c %s\n", line)
		}
	}
	fmt.Fprintf(bw, "p edge %d %d\n", g.Size(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "e %d %d\n", e[0], e[1])
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteDIMACS: %w", err)
	}

	return nil
}

// Write encodes g in format f; cfg is used by the text format only.
func Write(w io.Writer, f Format, g *graph.Graph, cfg *ga.Config, comment string) error {
	if f == FormatDIMACS {
		return WriteDIMACS(w, g, comment)
	}

	return WriteText(w, g, cfg)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
