package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"turmas/internal/domain"
	"turmas/internal/logging"
	"turmas/internal/ports"
)

// CatalogResult is the outcome of loading the schedule document
type CatalogResult struct {
	FromCache bool
	Index     *domain.ScheduleIndex
	// Problems lists the records skipped while building the index
	Problems []string
	Source   string
}

// CatalogService loads the schedule document and builds the index
type CatalogService struct {
	cache    ports.CatalogCache
	interval time.Duration
	retries  int
	source   ports.CatalogSource
}

// NewCatalogService creates a new CatalogService. cache may be nil.
func NewCatalogService(
	source ports.CatalogSource,
	cache ports.CatalogCache,
	retries int,
	interval time.Duration,
) *CatalogService {
	if retries < 0 {
		retries = 0
	}
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &CatalogService{
		cache:    cache,
		interval: interval,
		retries:  retries,
		source:   source,
	}
}

// Load fetches the document, polling the source a bounded number of times,
// and falls back to the cached copy when the source stays unavailable.
// Skipped records are reported in the result; only a document with no usable
// discipline fails with domain.ErrDataLoad.
func (s *CatalogService) Load(ctx context.Context) (*CatalogResult, error) {
	logging.Logger.Debug("Loading catalog", "source", s.source.Describe(), "retries", s.retries)

	result := &CatalogResult{Source: s.source.Describe()}
	data, fetchErr := s.fetch(ctx)
	if fetchErr != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrDataLoad, ctx.Err())
		}
		cached, ok := s.readCache()
		if !ok {
			logging.Logger.Error("Failed to load catalog", "source", result.Source, "error", fetchErr)
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrDataLoad, result.Source, fetchErr)
		}
		logging.Logger.Warn("Using cached catalog", "source", result.Source, "error", fetchErr)
		data = cached
		result.FromCache = true
	}

	courses, err := domain.DecodeCatalog(data)
	if err != nil {
		logging.Logger.Error("Failed to decode catalog", "error", err)
		return nil, err
	}

	idx, err := domain.BuildIndex(courses)
	var malformed *domain.MalformedDataError
	if errors.As(err, &malformed) {
		result.Problems = malformed.Problems
		logging.Logger.Warn("Catalog has malformed records", "count", len(malformed.Problems))
	} else if err != nil {
		return nil, err
	}
	if idx.Len() == 0 {
		return nil, fmt.Errorf("%w: %s has no usable disciplines", domain.ErrDataLoad, result.Source)
	}
	result.Index = idx

	if !result.FromCache && s.cache != nil {
		if err := s.cache.Write(data); err != nil {
			logging.Logger.Warn("Failed to write catalog cache", "error", err)
		}
	}

	logging.Logger.Info("Catalog loaded",
		"source", result.Source,
		"disciplines", idx.Len(),
		"from_cache", result.FromCache)
	return result, nil
}

// fetch polls the source until it answers or the retries run out. A rejected
// request is not retried.
func (s *CatalogService) fetch(ctx context.Context) ([]byte, error) {
	backoff := retry.WithMaxRetries(uint64(s.retries), retry.NewConstant(s.interval))

	var data []byte
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		body, err := s.source.Fetch(ctx)
		if err != nil {
			logging.Logger.Debug("Catalog fetch failed", "attempt", attempt, "error", err)
			if errors.Is(err, domain.ErrSourceRejected) {
				return err
			}
			return retry.RetryableError(err)
		}
		data = body
		return nil
	})
	return data, err
}

func (s *CatalogService) readCache() ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Read()
	if err != nil {
		logging.Logger.Debug("Catalog cache unavailable", "error", err)
		return nil, false
	}
	return data, true
}
