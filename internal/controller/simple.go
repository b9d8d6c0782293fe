package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/atomer-tools/anaconf/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer. It is used
// when stdout is not a terminal, so every line stays grep-friendly.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start announces the size of the batch.
func (s *SimpleUI) Start(total int) {
	s.printf("Processing %d Atomer report(s)\n", total)
}

// ReportStarted is a no-op; SimpleUI only prints completed reports.
func (s *SimpleUI) ReportStarted(_ m.Path) {
}

// ReportFinished prints the result of one processed report.
func (s *SimpleUI) ReportFinished(result m.ReportResult) {
	status := fmt.Sprintf("%d function(s)", len(result.Functions))
	if result.ParseFailed {
		status = "parse failed, empty filter"
	}

	s.printf("%s -> %s (%s)\n", result.Report, result.Config, status)
}

// Summary renders the per-config table and the final result line.
func (s *SimpleUI) Summary(resultDir m.Path, results []m.ReportResult) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Config", "Functions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, result := range results {
		table.Append([]string{string(result.Config), fmt.Sprintf("%d", len(result.Functions))})

		total += len(result.Functions)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Configs %d", len(results)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s\n", tableBuffer.String())
	s.printf("New config files created in %s\n", resultDir)

	return nil
}

// DisplayReportCounts renders the list-mode table of per-report counts.
// Parse failures are marked with a dash instead of a count.
func (s *SimpleUI) DisplayReportCounts(results []m.ReportResult) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Report", "Functions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, result := range results {
		count := fmt.Sprintf("%d", len(result.Functions))
		if result.ParseFailed {
			count = "-"
		}

		table.Append([]string{string(result.Report), count})

		total += len(result.Functions)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Reports %d", len(results)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayFunctions prints the names one per line.
func (s *SimpleUI) DisplayFunctions(names []string) error {
	for _, name := range names {
		s.printf("%s\n", name)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
