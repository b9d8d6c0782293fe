package adapter

import (
	"io"
	"os"
	"path/filepath"

	m "github.com/atomer-tools/anaconf/internal/model"
)

// includeRelPath is the filter file ANaConDA reads the function include
// list from, relative to a configuration root.
const includeRelPath = "filters/functions/include"

// ConfigFS abstracts the filesystem operations used to materialize
// configuration directories, so the workflow logic stays decoupled from
// direct os access.
type ConfigFS interface {
	// Materialize replaces dst with a fresh recursive copy of the base
	// template. An existing dst is removed first.
	Materialize(base, dst m.Path) error

	// AppendInclude appends names, one per line, to the include filter under
	// root, creating parent directories as needed. Names must already be
	// sorted.
	AppendInclude(root m.Path, names []string) error

	// EnsureDir creates dir and any missing parents.
	EnsureDir(dir m.Path) error
}

type localConfigFS struct{}

// NewConfigFS constructs a ConfigFS backed by the local filesystem.
func NewConfigFS() ConfigFS {
	return &localConfigFS{}
}

// Materialize wipes dst and copies the base template tree there. The wipe
// must happen before the copy so a repeated run never inherits stale files.
func (fs *localConfigFS) Materialize(base, dst m.Path) error {
	if _, err := os.Stat(string(base)); err != nil {
		return &m.FilesystemError{Op: "stat base config", Path: base, Err: err}
	}

	if err := os.RemoveAll(string(dst)); err != nil {
		return &m.FilesystemError{Op: "remove stale config", Path: dst, Err: err}
	}

	if err := fs.copyDir(string(base), string(dst)); err != nil {
		return &m.FilesystemError{Op: "copy base config to", Path: dst, Err: err}
	}

	return nil
}

func (fs *localConfigFS) copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode())
		}

		return fs.copyFile(path, targetPath, info.Mode())
	})
}

// copyFile copies a single file.
func (fs *localConfigFS) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src comes from the base config template, not user input
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is derived from the result config root
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// AppendInclude opens the include filter in append mode and writes one name
// per line. The file is created empty when there are no names.
func (fs *localConfigFS) AppendInclude(root m.Path, names []string) error {
	includePath := filepath.Join(string(root), filepath.FromSlash(includeRelPath))

	if err := os.MkdirAll(filepath.Dir(includePath), 0o750); err != nil {
		return &m.FilesystemError{Op: "create filter directory", Path: m.Path(filepath.Dir(includePath)), Err: err}
	}

	// #nosec G304 - path is a fixed location under the generated config
	f, err := os.OpenFile(includePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return &m.FilesystemError{Op: "open include filter", Path: m.Path(includePath), Err: err}
	}

	defer func() { _ = f.Close() }()

	for _, name := range names {
		if _, err := f.WriteString(name + "\n"); err != nil {
			return &m.FilesystemError{Op: "write include filter", Path: m.Path(includePath), Err: err}
		}
	}

	return nil
}

// EnsureDir creates dir and any missing parents.
func (fs *localConfigFS) EnsureDir(dir m.Path) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return &m.FilesystemError{Op: "create result directory", Path: dir, Err: err}
	}

	return nil
}
