// SPDX-License-Identifier: MIT
// Package: cliquega/graphio
//
// text.go - the plain text instance format.
//
// Layout (one value per line):
//
//	n                       vertex count, n ≥ 1
//	m                       edge line count, m ≥ 0
//	u v                     m edge lines, extra tokens ignored
//	populationSize          optional parameter lines, in this order
//	maxGenerations
//	mutationRate
//	crossoverRate
//	eliteCount
//	patience
//	diversityThreshold
//	indexMin                (range enabled only when indexMax > indexMin)
//	indexMax
//
// Edge lines with fewer than two tokens, non-integers, out-of-range ids or
// self-loops are skipped with a warning. Running out of lines before m edges
// ends edge reading with a warning. The first malformed parameter line stops
// parameter reading; it and every later parameter keep their defaults.

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

// lineReader walks a slice of lines keeping 1-based numbering.
type lineReader struct {
	lines []string
	next  int
}

func (lr *lineReader) read() (string, int, bool) {
	if lr.next >= len(lr.lines) {
		return "", 0, false
	}
	lr.next++

	return strings.TrimSpace(lr.lines[lr.next-1]), lr.next, true
}

// readLines loads r and drops trailing blank lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// ReadText decodes the text instance format.
//
// Errors:
//   - ErrEmptyInput when r holds no non-blank line.
//   - ErrBadHeader when n or m is missing, not an integer, n < 1 or m < 0.
func ReadText(r io.Reader) (*Instance, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("ReadText: %w", ErrEmptyInput)
	}

	lr := &lineReader{lines: lines}
	n, err := readCount(lr, "vertex count", 1)
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}
	m, err := readCount(lr, "edge count", 0)
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w: %w", ErrBadHeader, err)
	}

	in := &Instance{Graph: g, DeclaredEdges: m, Config: ga.DefaultConfig(), Format: FormatText}
	readEdges(lr, in, m)
	readParams(lr, in)

	return in, nil
}

// readCount parses one header integer ≥ min.
func readCount(lr *lineReader, what string, min int) (int, error) {
	s, no, ok := lr.read()
	if !ok {
		return 0, fmt.Errorf("missing %s: %w", what, ErrBadHeader)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s %q is not an integer: %w", no, what, s, ErrBadHeader)
	}
	if v < min {
		return 0, fmt.Errorf("line %d: %s %d < %d: %w", no, what, v, min, ErrBadHeader)
	}

	return v, nil
}

// readEdges consumes up to m edge lines into in.Graph.
func readEdges(lr *lineReader, in *Instance, m int) {
	for i := 0; i < m; i++ {
		s, no, ok := lr.read()
		if !ok {
			in.warnf(0, "input ended after %d of %d edge lines", i, m)
			return
		}
		addEdgeLine(in, s, no)
	}
}

// addEdgeLine validates one "u v" line and adds it when well formed.
func addEdgeLine(in *Instance, s string, no int) {
	tokens := strings.Fields(s)
	if len(tokens) < 2 {
		in.warnf(no, "edge line %q has fewer than 2 tokens, skipped", s)
		return
	}
	u, errU := strconv.Atoi(tokens[0])
	v, errV := strconv.Atoi(tokens[1])
	if errU != nil || errV != nil {
		in.warnf(no, "edge line %q is not two integers, skipped", s)
		return
	}

	n := in.Graph.Size()
	switch {
	case u < 1 || u > n || v < 1 || v > n:
		in.warnf(no, "edge %d-%d outside [1,%d], skipped", u, v, n)
	case u == v:
		in.warnf(no, "self-loop %d-%d skipped", u, v)
	default:
		// Range and loop checks above leave AddEdge nothing to reject.
		_ = in.Graph.AddEdge(u, v)
	}
}

// paramSetter parses one parameter line into cfg.
type paramSetter struct {
	name string
	set  func(cfg *ga.Config, s string, band *[2]float64) error
}

var paramOrder = []paramSetter{
	{"populationSize", func(c *ga.Config, s string, _ *[2]float64) error { return setInt(&c.PopulationSize, s) }},
	{"maxGenerations", func(c *ga.Config, s string, _ *[2]float64) error { return setInt(&c.MaxGenerations, s) }},
	{"mutationRate", func(c *ga.Config, s string, _ *[2]float64) error { return setFloat(&c.MutationRate, s) }},
	{"crossoverRate", func(c *ga.Config, s string, _ *[2]float64) error { return setFloat(&c.CrossoverRate, s) }},
	{"eliteCount", func(c *ga.Config, s string, _ *[2]float64) error { return setInt(&c.EliteCount, s) }},
	{"patience", func(c *ga.Config, s string, _ *[2]float64) error { return setInt(&c.Patience, s) }},
	{"diversityThreshold", func(c *ga.Config, s string, _ *[2]float64) error { return setFloat(&c.DiversityThreshold, s) }},
	{"indexMin", func(_ *ga.Config, s string, b *[2]float64) error { return setFloat(&b[0], s) }},
	{"indexMax", func(_ *ga.Config, s string, b *[2]float64) error { return setFloat(&b[1], s) }},
}

// readParams applies parameter lines in order until input ends or a line fails.
func readParams(lr *lineReader, in *Instance) {
	var band [2]float64
	for _, p := range paramOrder {
		s, no, ok := lr.read()
		if !ok {
			break
		}
		// Parse into a scratch copy so a bad line leaves the default intact.
		cfg := in.Config
		if err := p.set(&cfg, s, &band); err != nil {
			in.warnf(no, "%s %q malformed, keeping defaults from here on", p.name, s)
			break
		}
		in.Config = cfg
		in.ParamsRead++
	}

	if in.ParamsRead == len(paramOrder) {
		in.Config.IndexRange = ga.NewIndexRange(band[0], band[1])
	}
	if extra := len(lr.lines) - lr.next; extra > 0 && in.ParamsRead == len(paramOrder) {
		in.warnf(lr.next+1, "%d trailing lines ignored", extra)
	}
}

func setInt(dst *int, s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = v

	return nil
}

func setFloat(dst *float64, s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*dst = v

	return nil
}
