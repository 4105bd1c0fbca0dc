// SPDX-License-Identifier: MIT
// Package: cliquega/report
//
// genlog.go - per-generation population log (implements ga.GenerationLog).
//
// Each generation becomes one block, written with a single Write call:
//
//	===== GENERATION 3 =====
//
//	Population Details:
//	[0] Genes: 0110..., Fitness: 4
//	...
//	Best Fitness: 4
//	Population Diversity: 0.8500
//	Generations Without Improvement: 2
//	----------------------------------------

package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/katalvlaran/cliquega/ga"
)

// GenerationLog writes population blocks to an underlying writer.
type GenerationLog struct {
	mu     sync.Mutex
	w      io.Writer
	flush  func() error
	closer io.Closer
}

var _ ga.GenerationLog = (*GenerationLog)(nil)

// NewGenerationLog logs to w. Close is a no-op for logs built this way.
func NewGenerationLog(w io.Writer) *GenerationLog {
	return &GenerationLog{w: w}
}

// CreateGenerationLog truncates or creates path and logs to it.
func CreateGenerationLog(path string) (*GenerationLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("CreateGenerationLog(%s): %w", path, err)
	}
	bw := bufio.NewWriter(f)

	return &GenerationLog{w: bw, flush: bw.Flush, closer: f}, nil
}

// LogGeneration appends one generation block and flushes it.
func (l *GenerationLog) LogGeneration(stats ga.GenerationStats, pop *ga.Population) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "===== GENERATION %d =====\n\n", stats.Generation)
	sb.WriteString("Population Details:\n")
	for i, ind := range pop.Individuals() {
		fmt.Fprintf(&sb, "[%d] %s\n", i, ind)
	}
	fmt.Fprintf(&sb, "Best Fitness: %d\n", stats.BestFitness)
	fmt.Fprintf(&sb, "Population Diversity: %.4f\n", stats.Diversity)
	fmt.Fprintf(&sb, "Generations Without Improvement: %d\n", stats.NoImprovement)
	sb.WriteString(strings.Repeat("-", 40) + "\n")

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := io.WriteString(l.w, sb.String()); err != nil {
		return fmt.Errorf("LogGeneration(%d): %w", stats.Generation, err)
	}
	if l.flush != nil {
		if err := l.flush(); err != nil {
			return fmt.Errorf("LogGeneration(%d): %w", stats.Generation, err)
		}
	}

	return nil
}

// Close flushes and closes a file-backed log.
func (l *GenerationLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer == nil {
		return nil
	}
	if l.flush != nil {
		if err := l.flush(); err != nil {
			_ = l.closer.Close()
			return fmt.Errorf("GenerationLog.Close: %w", err)
		}
	}
	err := l.closer.Close()
	l.closer = nil

	return err
}
