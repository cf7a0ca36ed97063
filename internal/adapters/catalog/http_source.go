package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"turmas/internal/domain"
	"turmas/internal/logging"
	"turmas/internal/ports"
)

// maxDocumentSize bounds the downloaded document
var maxDocumentSize int64 = 32 << 20

// HTTPSource downloads the schedule document
type HTTPSource struct {
	client *http.Client
	url    string
}

var _ ports.CatalogSource = (*HTTPSource)(nil)

// NewHTTPSource creates an HTTPSource with the given request timeout
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// Describe returns the URL
func (s *HTTPSource) Describe() string {
	return s.url
}

// Fetch issues a GET request and returns the body of a 2xx response
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	logging.Logger.Debug("Catalog response", "url", s.url, "status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if permanentStatus(resp.StatusCode) {
			return nil, fmt.Errorf("%w: %s: status %d", domain.ErrSourceRejected, s.url, resp.StatusCode)
		}
		return nil, fmt.Errorf("failed to fetch %s: status %d", s.url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(data)) > maxDocumentSize {
		return nil, fmt.Errorf("%w: %s: document too large (over %d bytes)", domain.ErrSourceRejected, s.url, maxDocumentSize)
	}
	return data, nil
}

// permanentStatus reports client errors other than timeouts and rate limits
func permanentStatus(code int) bool {
	if code == http.StatusRequestTimeout || code == http.StatusTooManyRequests {
		return false
	}
	return code >= 400 && code < 500
}
