// SPDX-License-Identifier: MIT
// Package: cliquega/graphio
//
// dimacs.go - DIMACS clique/colouring format.
//
//	c free text
//	p edge <n> <m>          ("p col" is accepted too)
//	e <u> <v>
//
// Lines before "p" other than comments are a header error. Bad "e" lines and
// unknown line kinds are skipped with a warning. GA parameters always take
// their defaults.

package graphio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliquega/ga"
	"github.com/katalvlaran/cliquega/graph"
)

// ReadDIMACS decodes the DIMACS format.
//
// Errors:
//   - ErrEmptyInput when r holds no non-comment line.
//   - ErrBadHeader when the problem line is missing or malformed, or an edge
//     line precedes it.
func ReadDIMACS(r io.Reader) (*Instance, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("ReadDIMACS: %w", err)
	}

	var in *Instance
	for i, raw := range lines {
		no := i + 1
		fields := strings.Fields(raw)
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}

		switch fields[0] {
		case "p":
			if in != nil {
				in.warnf(no, "repeated problem line ignored")
				continue
			}
			if in, err = parseProblem(fields, no); err != nil {
				return nil, fmt.Errorf("ReadDIMACS: %w", err)
			}
		case "e":
			if in == nil {
				return nil, fmt.Errorf("ReadDIMACS: line %d: edge before problem line: %w", no, ErrBadHeader)
			}
			addEdgeLine(in, strings.Join(fields[1:], " "), no)
		default:
			if in == nil {
				return nil, fmt.Errorf("ReadDIMACS: line %d: unexpected %q before problem line: %w", no, fields[0], ErrBadHeader)
			}
			in.warnf(no, "unknown line kind %q skipped", fields[0])
		}
	}

	if in == nil {
		return nil, fmt.Errorf("ReadDIMACS: %w", ErrEmptyInput)
	}
	if got := in.Graph.EdgeCount(); got != in.DeclaredEdges {
		in.warnf(0, "problem line declares %d edges, %d distinct edges loaded", in.DeclaredEdges, got)
	}

	return in, nil
}

// parseProblem reads "p edge n m".
func parseProblem(fields []string, no int) (*Instance, error) {
	if len(fields) < 4 || (fields[1] != "edge" && fields[1] != "col") {
		return nil, fmt.Errorf("line %d: want \"p edge n m\": %w", no, ErrBadHeader)
	}
	n, errN := strconv.Atoi(fields[2])
	m, errM := strconv.Atoi(fields[3])
	if errN != nil || errM != nil || n < 1 || m < 0 {
		return nil, fmt.Errorf("line %d: bad counts %q %q: %w", no, fields[2], fields[3], ErrBadHeader)
	}

	g, err := graph.New(n)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w: %w", no, ErrBadHeader, err)
	}

	return &Instance{Graph: g, DeclaredEdges: m, Config: ga.DefaultConfig(), Format: FormatDIMACS}, nil
}
