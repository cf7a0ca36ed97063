package catalog

import (
	"strings"
	"time"

	"turmas/internal/ports"
)

// NewSource picks the source implementation for a data location: http(s)
// URLs are fetched over HTTP, anything else is read from disk
func NewSource(location string, timeout time.Duration) ports.CatalogSource {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, timeout)
	}
	return NewFileSource(location)
}
