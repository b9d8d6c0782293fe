// Package model defines the data structures for configuration generation.
package model

// Finding is a single record of an Atomer report. Reports are decoded
// loosely: only the qualifier field is consulted, everything else is
// carried as-is.
type Finding map[string]any

// Qualifier returns the finding's qualifier text, or the empty string when
// the field is absent or not a string.
func (f Finding) Qualifier() string {
	qualifier, _ := f["qualifier"].(string)

	return qualifier
}
