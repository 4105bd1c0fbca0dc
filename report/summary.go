// SPDX-License-Identifier: MIT
// Package: cliquega/report
//
// summary.go - the human-readable result block.
//
// The same body goes to the console and, under a timestamped banner, is
// appended to the summary file so that successive runs accumulate.

package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/graph"
)

const ruleWidth = 70

// Summary describes the run being reported.
type Summary struct {
	Label    string // input name shown in the banner, may be empty
	RunIndex int    // 1-based index of the reported run
	RunCount int    // total runs performed
	Result   *ga.Result
	Graph    *graph.Graph
	Config   ga.Config
}

// Console writes the summary for a terminal: a banner and the body.
func (s Summary) Console(w io.Writer) error {
	var buf bytes.Buffer
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(&buf, "\n%s\nRESULT OF BEST RUN #%d/%d%s\n%s\n", rule, s.RunIndex, s.RunCount, s.labelSuffix(), rule)
	s.body(&buf)

	_, err := w.Write(buf.Bytes())

	return err
}

// Append adds the summary to the file at path under a banner stamped with now.
// The file is created when missing.
func (s Summary) Append(path string, now time.Time) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("Summary.Append(%s): %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Summary.Append(%s): %w", path, cerr)
		}
	}()

	var buf bytes.Buffer
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(&buf, "\n%s\nBEST RUN #%d/%d%s - %s\n%s\n\n",
		rule, s.RunIndex, s.RunCount, s.labelSuffix(), now.Format(time.RFC3339), rule)
	s.body(&buf)

	if _, err = f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("Summary.Append(%s): %w", path, err)
	}

	return nil
}

func (s Summary) labelSuffix() string {
	if s.Label == "" {
		return ""
	}

	return " [" + s.Label + "]"
}

func (s Summary) body(buf *bytes.Buffer) {
	res := s.Result
	best := res.Best
	n := s.Graph.Size()

	fmt.Fprintf(buf, "Best Fitness: %d\n", best.Fitness())
	fmt.Fprintf(buf, "Time (sec): %.4f\n", res.Elapsed.Seconds())
	fmt.Fprintf(buf, "Actual Generations: %d/%d\n", res.Generations, s.Config.MaxGenerations)
	fmt.Fprintf(buf, "Final Diversity: %.4f\n", res.FinalDiversity)
	fmt.Fprintf(buf, "Early Stopped: %s\n", yesNo(res.EarlyStopped))
	fmt.Fprintf(buf, "Stop Reason: %s\n", res.StopReason)

	vs := best.Vertices()
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	fmt.Fprintf(buf, "\nSelected Vertices: %s\n", strings.Join(parts, " "))
	fmt.Fprintf(buf, "Selected Count: %d/%d\n", len(vs), n)
	fmt.Fprintf(buf, "Genes: %s\n", strings.Join(strings.Split(best.Key(), ""), " "))

	fmt.Fprintf(buf, "\nGRAPH:\n")
	fmt.Fprintf(buf, "Vertices: %d\n", n)
	fmt.Fprintf(buf, "Edges: %d\n", s.Graph.EdgeCount())
	fmt.Fprintf(buf, "Density: %.4f\n", s.Graph.Density())

	c := s.Config
	fmt.Fprintf(buf, "\nGA PARAMETERS:\n")
	fmt.Fprintf(buf, "Population Size: %d\n", c.PopulationSize)
	fmt.Fprintf(buf, "Max Generations: %d\n", c.MaxGenerations)
	fmt.Fprintf(buf, "Mutation Rate: %g\n", c.MutationRate)
	fmt.Fprintf(buf, "Crossover Rate: %g\n", c.CrossoverRate)
	fmt.Fprintf(buf, "Elite Count: %d\n", c.EliteCount)
	fmt.Fprintf(buf, "Patience: %d\n", c.Patience)
	fmt.Fprintf(buf, "Diversity Threshold: %g\n", c.DiversityThreshold)
	if c.IndexRange != nil {
		fmt.Fprintf(buf, "Index Range: [%g, %g]\n", c.IndexRange.Min, c.IndexRange.Max)
	}
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}

	return "NO"
}
