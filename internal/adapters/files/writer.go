package files

import (
	"fmt"
	"os"
	"path/filepath"

	"turmas/internal/logging"
	"turmas/internal/ports"
)

// DirWriter writes export files into a fixed directory
type DirWriter struct {
	dir string
}

var _ ports.FileWriter = (*DirWriter)(nil)

// NewDirWriter creates a writer for dir. The directory is created on first write.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{dir: dir}
}

// Dir returns the target directory
func (w *DirWriter) Dir() string {
	return w.dir
}

// WriteFile replaces name inside the directory through a temporary file so a
// failed write never leaves a truncated export behind
func (w *DirWriter) WriteFile(name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(w.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", name, err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move %s into place: %w", name, err)
	}

	logging.Logger.Info("Wrote export file", "path", path, "bytes", len(data))
	return path, nil
}
