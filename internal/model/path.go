package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// ConfName derives the configuration directory name for a report file:
// the base name without its extension plus a "_conf" suffix.
func (p Path) ConfName() string {
	base := filepath.Base(string(p))

	return strings.TrimSuffix(base, filepath.Ext(base)) + "_conf"
}
