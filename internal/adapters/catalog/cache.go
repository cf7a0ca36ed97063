package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"turmas/internal/ports"
)

// FileCache stores the last fetched document on disk. Reads and writes hold
// an exclusive lock on the file so concurrent turmas processes never see a
// half-written document.
type FileCache struct {
	path string
}

var _ ports.CatalogCache = (*FileCache)(nil)

// NewFileCache creates a FileCache at path
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Read returns the cached document. A missing cache returns os.ErrNotExist.
func (c *FileCache) Read() ([]byte, error) {
	file, err := os.Open(c.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}
	if len(data) == 0 {
		return nil, os.ErrNotExist
	}
	return data, nil
}

// Write replaces the cached document
func (c *FileCache) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	file, err := os.OpenFile(c.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
