// Package adapter contains filesystem adapters for the anaconf CLI.
package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/atomer-tools/anaconf/internal/model"
)

// ReportStore discovers and decodes Atomer output reports.
type ReportStore interface {
	// List returns the .json entries of dir, non-recursively. A missing or
	// non-directory path yields a ConfigurationError.
	List(dir m.Path) ([]m.Path, error)

	// Load decodes the report at path into loosely-typed findings. Read and
	// decode failures are returned to the caller, which is expected to treat
	// them as "no findings" rather than aborting the batch.
	Load(path m.Path) ([]m.Finding, error)
}

type localReportStore struct{}

// NewReportStore constructs a ReportStore backed by the local filesystem.
func NewReportStore() ReportStore {
	return &localReportStore{}
}

// List collects the full paths of the .json files directly under dir.
func (rs *localReportStore) List(dir m.Path) ([]m.Path, error) {
	info, err := os.Stat(string(dir))
	if err != nil || !info.IsDir() {
		return nil, &m.ConfigurationError{Path: dir, Reason: "does not exist or is not a directory"}
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, &m.ConfigurationError{Path: dir, Reason: err.Error()}
	}

	var reports []m.Path

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		reports = append(reports, m.Path(filepath.Join(string(dir), entry.Name())))
	}

	return reports, nil
}

// Load reads the file and decodes it as an array of findings.
func (rs *localReportStore) Load(path m.Path) ([]m.Finding, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	var findings []m.Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}

	return findings, nil
}
