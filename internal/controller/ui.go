// Package controller provides output adapters for displaying configuration
// generation progress and results.
package controller

import (
	m "github.com/atomer-tools/anaconf/internal/model"
)

// UI defines the interface for presenting generation progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start is called once before processing, with the number of reports.
	Start(total int)
	// ReportStarted announces that a report is being processed.
	ReportStarted(report m.Path)
	// ReportFinished shows the completed result for one report.
	ReportFinished(result m.ReportResult)
	// Summary renders the end-of-run summary naming the result directory.
	Summary(resultDir m.Path, results []m.ReportResult) error
	// DisplayReportCounts renders the per-report function counts table.
	DisplayReportCounts(results []m.ReportResult) error
	// DisplayFunctions prints function names, one per line.
	DisplayFunctions(names []string) error
	// Close releases any UI resources.
	Close()
}
