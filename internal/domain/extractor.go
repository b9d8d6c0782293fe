// Package domain implements the report-to-configuration pipeline.
package domain

import (
	"regexp"

	m "github.com/atomer-tools/anaconf/internal/model"
)

// qualifierPattern captures the function name Atomer embeds in a finding's
// qualifier text.
var qualifierPattern = regexp.MustCompile(`originated in function: '([^']+)'`)

// Extractor derives the set of function names implicated in a report's
// findings.
type Extractor interface {
	Extract(findings []m.Finding) m.FunctionSet
}

type extractor struct{}

// NewExtractor constructs the qualifier-pattern Extractor.
func NewExtractor() Extractor {
	return &extractor{}
}

// Extract scans each finding's qualifier field and collects the unique
// function names. Findings without the field or without a match are
// silently skipped.
func (e *extractor) Extract(findings []m.Finding) m.FunctionSet {
	functions := make(m.FunctionSet)

	for _, finding := range findings {
		match := qualifierPattern.FindStringSubmatch(finding.Qualifier())
		if match == nil {
			continue
		}

		functions.Add(match[1])
	}

	return functions
}
