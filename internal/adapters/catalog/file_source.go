package catalog

import (
	"context"
	"fmt"
	"os"

	"turmas/internal/ports"
)

// FileSource reads the schedule document from a local file
type FileSource struct {
	path string
}

var _ ports.CatalogSource = (*FileSource)(nil)

// NewFileSource creates a FileSource
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Describe returns the file path
func (s *FileSource) Describe() string {
	return s.path
}

// Fetch reads the whole file
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return data, nil
}
