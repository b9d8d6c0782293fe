package model

// ReportResult describes the outcome of processing one Atomer report.
type ReportResult struct {
	Report      Path     // input report file
	Config      Path     // materialized configuration directory
	Functions   []string // sorted function names written to the include filter
	ParseFailed bool     // report could not be decoded; the filter is empty
}
