// Package report renders search results for people: the best-run summary,
// the per-generation population log, PNG line charts and an XLSX workbook.
//
// GenerationLog implements ga.GenerationLog and PNGCharts implements
// ga.ChartRenderer, so both plug straight into an Engine.
package report
