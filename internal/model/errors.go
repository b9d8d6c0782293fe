package model

import "fmt"

// ConfigurationError reports an unusable input directory. It is fatal and
// raised before any report is processed.
type ConfigurationError struct {
	Path   Path
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid atomer outputs directory %s: %s", e.Path, e.Reason)
}

// FilesystemError reports a failed filesystem operation while materializing
// or extending a configuration directory. It halts the run.
type FilesystemError struct {
	Op   string
	Path Path
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
