package domain

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/atomer-tools/anaconf/internal/adapter"
	"github.com/atomer-tools/anaconf/internal/controller"
	m "github.com/atomer-tools/anaconf/internal/model"
)

// GenerateArgs carries the three directories a generation run operates on.
type GenerateArgs struct {
	AtomerOutputs m.Path // directory of Atomer .json reports
	BaseConfig    m.Path // base configuration template directory
	ResultConfig  m.Path // root the per-report configs are created under
}

// ListArgs carries the input for the list operation.
type ListArgs struct {
	AtomerOutputs m.Path
}

// ExtractArgs carries the input for the extract operation.
type ExtractArgs struct {
	Report m.Path
}

// Workflow defines the operations the CLI exposes.
type Workflow interface {
	Generate(args GenerateArgs) error
	List(args ListArgs) error
	Extract(args ExtractArgs) error
}

type workflow struct {
	store     adapter.ReportStore
	configFS  adapter.ConfigFS
	extractor Extractor
	ui        controller.UI
	logger    *zap.Logger
}

// NewWorkflow creates a Workflow wired to the provided adapters.
func NewWorkflow(store adapter.ReportStore, configFS adapter.ConfigFS, ui controller.UI, logger *zap.Logger) Workflow {
	return &workflow{
		store:     store,
		configFS:  configFS,
		extractor: NewExtractor(),
		ui:        ui,
		logger:    logger,
	}
}

// Generate runs the full pipeline: discover reports, materialize a template
// copy per report, and write the extracted function include filter. Reports
// are processed sequentially in discovery order and are independent of each
// other; a parse failure only empties that report's filter, a filesystem
// failure halts the run.
func (w *workflow) Generate(args GenerateArgs) error {
	reports, err := w.store.List(args.AtomerOutputs)
	if err != nil {
		return err
	}

	w.ui.Start(len(reports))
	defer w.ui.Close()

	results := make([]m.ReportResult, 0, len(reports))

	for _, report := range reports {
		w.ui.ReportStarted(report)

		result, err := w.processReport(report, args)
		if err != nil {
			return err
		}

		results = append(results, result)
		w.ui.ReportFinished(result)
	}

	return w.ui.Summary(args.ResultConfig, results)
}

// List discovers the reports and shows per-report extraction counts without
// creating any configuration directories.
func (w *workflow) List(args ListArgs) error {
	reports, err := w.store.List(args.AtomerOutputs)
	if err != nil {
		return err
	}

	results := make([]m.ReportResult, 0, len(reports))

	for _, report := range reports {
		functions, parseFailed := w.loadFunctions(report)
		results = append(results, m.ReportResult{
			Report:      report,
			Functions:   functions,
			ParseFailed: parseFailed,
		})
	}

	return w.ui.DisplayReportCounts(results)
}

// Extract prints the sorted function names of a single report. Unlike the
// batch pipeline, a parse failure here is surfaced as an error.
func (w *workflow) Extract(args ExtractArgs) error {
	findings, err := w.store.Load(args.Report)
	if err != nil {
		return err
	}

	return w.ui.DisplayFunctions(w.extractor.Extract(findings).Sorted())
}

// processReport materializes the config for one report. Ordering matters:
// the destination is wiped and recopied before the include filter is
// appended, so repeated runs never accumulate duplicate entries.
func (w *workflow) processReport(report m.Path, args GenerateArgs) (m.ReportResult, error) {
	dst := m.Path(filepath.Join(string(args.ResultConfig), report.ConfName()))

	if err := w.configFS.Materialize(args.BaseConfig, dst); err != nil {
		return m.ReportResult{}, err
	}

	functions, parseFailed := w.loadFunctions(report)

	if err := w.configFS.AppendInclude(dst, functions); err != nil {
		return m.ReportResult{}, err
	}

	return m.ReportResult{
		Report:      report,
		Config:      dst,
		Functions:   functions,
		ParseFailed: parseFailed,
	}, nil
}

// loadFunctions decodes one report and extracts its function names. Decode
// failures are logged and recovered as an empty extraction so a single bad
// report cannot abort the batch.
func (w *workflow) loadFunctions(report m.Path) ([]string, bool) {
	findings, err := w.store.Load(report)
	if err != nil {
		w.logger.Warn("report skipped, include filter left empty",
			zap.String("report", string(report)),
			zap.Error(err))

		return nil, true
	}

	return w.extractor.Extract(findings).Sorted(), false
}
