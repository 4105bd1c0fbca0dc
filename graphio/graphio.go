// SPDX-License-Identifier: MIT
// Package: cliquega/graphio
//
// graphio.go - Instance, Warning, Format and format detection.
//
// Two input formats are understood:
//   • Text:   n, m, m lines "u v", then optional GA parameter lines.
//   • DIMACS: "c" comments, "p edge n m", "e u v".
//
// Both readers are tolerant about edges: bad edge lines are skipped and
// reported as Warnings, never passed to the Graph. Only a broken header is an error.

package graphio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/graph"
)

// Format names an input/output encoding.
type Format int

const (
	// FormatText is the plain "n / m / edges / parameters" layout.
	FormatText Format = iota
	// FormatDIMACS is the DIMACS clique/colouring layout.
	FormatDIMACS
)

// String returns "text" or "dimacs".
func (f Format) String() string {
	if f == FormatDIMACS {
		return "dimacs"
	}

	return "text"
}

// ParseFormat maps "text" and "dimacs" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "dimacs", "clq", "col":
		return FormatDIMACS, nil
	}

	return FormatText, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// Warning describes one skipped or defaulted input line.
type Warning struct {
	Line int // 1-based line number, 0 when not tied to a line
	Msg  string
}

// String renders "line N: msg".
func (w Warning) String() string {
	if w.Line == 0 {
		return w.Msg
	}

	return fmt.Sprintf("line %d: %s", w.Line, w.Msg)
}

// Instance is a loaded problem: the graph, the GA parameters the file carried
// (defaults where absent) and everything that was skipped on the way.
type Instance struct {
	Graph *graph.Graph
	// DeclaredEdges is m as written in the header.
	DeclaredEdges int
	// Config starts from ga.DefaultConfig and takes every parameter line read.
	Config ga.Config
	// ParamsRead counts parameter lines applied to Config.
	ParamsRead int
	Warnings   []Warning
	Format     Format
}

func (in *Instance) warnf(line int, format string, args ...any) {
	in.Warnings = append(in.Warnings, Warning{Line: line, Msg: fmt.Sprintf(format, args...)})
}

// dimacsExt lists file extensions that are always DIMACS.
var dimacsExt = map[string]bool{".clq": true, ".col": true, ".dimacs": true}

// Detect picks a Format from the file extension, then from the first
// non-blank line of head ("c ..." or "p ..." means DIMACS).
func Detect(path string, head []byte) Format {
	if dimacsExt[strings.ToLower(filepath.Ext(path))] {
		return FormatDIMACS
	}

	for _, line := range bytes.Split(head, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] == 'c' || line[0] == 'p' {
			return FormatDIMACS
		}
		break
	}

	return FormatText
}

// Read decodes r in the given format.
func Read(r io.Reader, f Format) (*Instance, error) {
	if f == FormatDIMACS {
		return ReadDIMACS(r)
	}

	return ReadText(r)
}

// ReadFile opens path, detects its format and decodes it.
func ReadFile(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	in, err := Read(bytes.NewReader(data), Detect(path, data))
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return in, nil
}
