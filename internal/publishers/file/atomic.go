package file

import (
	"fmt"
	"os"
	"path/filepath"
)

type WriteError struct {
	Path  string
	Stage string
	Cause error
}

func (e *WriteError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("WriteError: %s %s: %v", e.Stage, e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }

// WriteAtomic writes data to a temporary file next to path and renames it
// into place. Readers see either the old file or the complete new one.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Stage: "creating temporary file for", Cause: err}
	}
	tmpPath := tmp.Name()

	// Write, sync, close, in that order. Any failure removes the temp file.
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &WriteError{Path: path, Stage: "writing temporary file for", Cause: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &WriteError{Path: path, Stage: "syncing temporary file for", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: path, Stage: "closing temporary file for", Cause: err}
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: path, Stage: "setting permissions on temporary file for", Cause: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: path, Stage: "replacing", Cause: err}
	}

	if parent, err := os.Open(dir); err == nil {
		parent.Sync()
		parent.Close()
	}
	return nil
}
