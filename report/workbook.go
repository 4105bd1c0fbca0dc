// SPDX-License-Identifier: MIT
// Package: cliquega/report
//
// workbook.go - tabular export of a run trace and benchmark runs (.xlsx).
//
// Sheets:
//   • "Generations": Generation | Best Fitness | Diversity | Time (ms), plus a
//     line chart of best fitness.
//   • "Runs" (only when runs are given): Run | ID | Time (s) | Best Fitness |
//     Generations | Early Stopped | Stop Reason, plus a line chart of runtime.

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/cliquega/ga"
)

// Sheet names used by WriteWorkbook.
const (
	SheetGenerations = "Generations"
	SheetRuns        = "Runs"
)

var (
	generationHeader = []interface{}{"Generation", "Best Fitness", "Diversity", "Time (ms)"}
	runHeader        = []interface{}{"Run", "ID", "Time (s)", "Best Fitness", "Generations", "Early Stopped", "Stop Reason"}
)

// WriteWorkbook saves history (and runs, if any) to an .xlsx file at path.
//
// Errors:
//   - ErrNoData when history is empty.
//   - excelize errors, wrapped.
func WriteWorkbook(path string, history []ga.History, runs []ga.RunRecord) (err error) {
	if len(history) == 0 {
		return fmt.Errorf("WriteWorkbook: %w", ErrNoData)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteWorkbook: %w", cerr)
		}
	}()

	if err = f.SetSheetName("Sheet1", SheetGenerations); err != nil {
		return fmt.Errorf("WriteWorkbook: %w", err)
	}
	if err = writeGenerations(f, history); err != nil {
		return fmt.Errorf("WriteWorkbook: %w", err)
	}

	if len(runs) > 0 {
		if _, err = f.NewSheet(SheetRuns); err != nil {
			return fmt.Errorf("WriteWorkbook: %w", err)
		}
		if err = writeRuns(f, runs); err != nil {
			return fmt.Errorf("WriteWorkbook: %w", err)
		}
	}
	f.SetActiveSheet(0)

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("WriteWorkbook: save %s: %w", path, err)
	}

	return nil
}

func writeGenerations(f *excelize.File, history []ga.History) error {
	if err := setRow(f, SheetGenerations, 1, generationHeader); err != nil {
		return err
	}
	for i, h := range history {
		row := []interface{}{h.Generation, h.BestFitness, h.Diversity, h.GenerationTimeMillis()}
		if err := setRow(f, SheetGenerations, i+2, row); err != nil {
			return err
		}
	}

	last := len(history) + 1

	return addLineChart(f, SheetGenerations, "F2", "Best Fitness by Generation", "A", "B", last)
}

func writeRuns(f *excelize.File, runs []ga.RunRecord) error {
	if err := setRow(f, SheetRuns, 1, runHeader); err != nil {
		return err
	}
	for i, r := range runs {
		row := []interface{}{
			r.Index + 1, r.ID.String(), r.Elapsed.Seconds(), r.BestFitness,
			r.Generations, r.EarlyStopped, r.StopReason,
		}
		if err := setRow(f, SheetRuns, i+2, row); err != nil {
			return err
		}
	}

	last := len(runs) + 1

	return addLineChart(f, SheetRuns, "I2", "Runtime by Run", "A", "C", last)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	return f.SetSheetRow(sheet, cell, &values)
}

// addLineChart charts column valCol against catCol over rows 2..last.
func addLineChart(f *excelize.File, sheet, anchor, title, catCol, valCol string, last int) error {
	ref := func(col string) string {
		return fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, col, col, last)
	}

	return f.AddChart(sheet, anchor, &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, valCol),
			Categories: ref(catCol),
			Values:     ref(valCol),
		}},
		Title: []excelize.RichTextRun{{Text: title}},
	})
}
