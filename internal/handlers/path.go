package handlers

import (
	"errors"
	"os"
)

// UploadsBaseDir returns the root directory for uploaded files. Defaults to
// ./uploads when UPLOADS_DIR is not set.
func UploadsBaseDir() string {
	if v := os.Getenv("UPLOADS_DIR"); v != "" {
		return v
	}
	return "./uploads"
}

// ensureDir guarantees the directory exists. An existing regular file at the
// path is an error.
func ensureDir(path string) error {
	if path == "" {
		return errors.New("empty dir path")
	}
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return errors.New("path exists and is not a directory")
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(path, 0o755)
}

// fileExists reports whether a regular file (not a directory) exists.
func fileExists(p string) bool {
	if p == "" {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
