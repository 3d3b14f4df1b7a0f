// Package fileutil contains the small file helpers the demos need: removing a
// stale output file and writing an artifact through a scoped handle.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// RemoveIfExists deletes path. A missing file counts as success; every other
// error is returned to the caller.
func RemoveIfExists(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// WriteFile replaces path with whatever write produces. The handle is closed
// on every exit path and a close error is reported when write succeeded.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	if write == nil {
		return errors.New("fileutil: write function is required")
	}
	if err := RemoveIfExists(path); err != nil {
		return fmt.Errorf("fileutil: remove %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return write(file)
}

// TempPath joins name onto dir, falling back to the OS temp directory when
// dir is empty.
func TempPath(dir, name string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, name)
}
