package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/atomer-tools/anaconf/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to the provided output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in its own goroutine. The pipeline
// itself stays sequential; the program only renders messages sent to it.
func (t *TUI) Start(total int) {
	t.program = tea.NewProgram(newGenerateModel(total), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	program := t.program

	go func() {
		defer close(t.done)

		_, _ = program.Run()
	}()
}

// ReportStarted announces that a report is being processed.
func (t *TUI) ReportStarted(report m.Path) {
	if t.program == nil {
		return
	}

	t.program.Send(reportStartedMsg{path: string(report)})
}

// ReportFinished shows the completed result for one report.
func (t *TUI) ReportFinished(result m.ReportResult) {
	if t.program == nil {
		return
	}

	t.program.Send(reportFinishedMsg{
		path:        string(result.Report),
		config:      string(result.Config),
		functions:   len(result.Functions),
		parseFailed: result.ParseFailed,
	})
}

// Summary tells the program the run is complete and waits for it to render
// the final view and exit.
func (t *TUI) Summary(resultDir m.Path, results []m.ReportResult) error {
	if t.program == nil {
		_, _ = fmt.Fprintf(t.output, "New config files created in %s\n", resultDir)

		return nil
	}

	t.program.Send(summaryMsg{resultDir: string(resultDir), reports: len(results)})
	<-t.done
	t.program = nil

	return nil
}

// Close shuts the program down if it is still running, e.g. when the run
// was halted by an error before the summary.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	t.program.Quit()
	<-t.done
	t.program = nil
}

// DisplayReportCounts falls back to plain output; list mode has no
// interactive view.
func (t *TUI) DisplayReportCounts(results []m.ReportResult) error {
	for _, result := range results {
		count := fmt.Sprintf("%d", len(result.Functions))
		if result.ParseFailed {
			count = "-"
		}

		_, _ = fmt.Fprintf(t.output, "%6s  %s\n", count, result.Report)
	}

	return nil
}

// DisplayFunctions prints the names one per line.
func (t *TUI) DisplayFunctions(names []string) error {
	for _, name := range names {
		_, _ = fmt.Fprintf(t.output, "%s\n", name)
	}

	return nil
}
