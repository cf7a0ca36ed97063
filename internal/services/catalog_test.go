package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turmas/internal/domain"
	portsmocks "turmas/internal/ports/mocks"
)

func TestCatalogLoad_Success(t *testing.T) {
	source := portsmocks.NewMockCatalogSource(t)
	cache := portsmocks.NewMockCatalogCache(t)

	source.EXPECT().Describe().Return("horarios.json")
	source.EXPECT().Fetch(mock.Anything).Return([]byte(catalogJSON), nil).Once()
	cache.EXPECT().Write([]byte(catalogJSON)).Return(nil)

	service := NewCatalogService(source, cache, 3, time.Millisecond)

	result, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Empty(t, result.Problems)
	assert.Equal(t, []string{"Algorithms", "Calculus"}, result.Index.Names())
}

func TestCatalogLoad_RetriesUntilAvailable(t *testing.T) {
	source := portsmocks.NewMockCatalogSource(t)

	source.EXPECT().Describe().Return("http://example/horarios.json")
	source.EXPECT().Fetch(mock.Anything).Return(nil, errors.New("503")).Twice()
	source.EXPECT().Fetch(mock.Anything).Return([]byte(catalogJSON), nil).Once()

	service := NewCatalogService(source, nil, 5, time.Millisecond)

	result, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Index.Len())
}

func TestCatalogLoad_RejectedRequestIsNotRetried(t *testing.T) {
	source := portsmocks.NewMockCatalogSource(t)
	cache := portsmocks.NewMockCatalogCache(t)

	rejected := fmt.Errorf("%w: status 404", domain.ErrSourceRejected)
	source.EXPECT().Describe().Return("http://example/horarios.json")
	source.EXPECT().Fetch(mock.Anything).Return(nil, rejected).Once()
	cache.EXPECT().Read().Return(nil, os.ErrNotExist)

	service := NewCatalogService(source, cache, 5, time.Millisecond)

	_, err := service.Load(context.Background())

	require.ErrorIs(t, err, domain.ErrDataLoad)
	assert.ErrorIs(t, err, domain.ErrSourceRejected)
	source.AssertNumberOfCalls(t, "Fetch", 1)
}

func TestCatalogLoad_FallsBackToCache(t *testing.T) {
	source := portsmocks.NewMockCatalogSource(t)
	cache := portsmocks.NewMockCatalogCache(t)

	source.EXPECT().Describe().Return("http://example/horarios.json")
	source.EXPECT().Fetch(mock.Anything).Return(nil, errors.New("offline")).Times(3)
	cache.EXPECT().Read().Return([]byte(catalogJSON), nil)

	service := NewCatalogService(source, cache, 2, time.Millisecond)

	result, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, result.FromCache)
	assert.Equal(t, 2, result.Index.Len())
}

func TestCatalogLoad_FailsWithoutCache(t *testing.T) {
	source := portsmocks.NewMockCatalogSource(t)
	cache := portsmocks.NewMockCatalogCache(t)

	source.EXPECT().Describe().Return("horarios.json")
	source.EXPECT().Fetch(mock.Anything).Return(nil, os.ErrNotExist).Once()
	cache.EXPECT().Read().Return(nil, os.ErrNotExist)

	service := NewCatalogService(source, cache, 0, time.Millisecond)

	_, err := service.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrDataLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCatalogLoad_ReportsMalformedRecords(t *testing.T) {
	source := portsmocks.NewMockCatalogSource(t)
	data := []byte(`[
	  {"id": 1, "name": "Algorithms", "shifts": [
	    {"code": "PL1", "meetings": [{"weekday": "segunda", "start": "09:00", "end": "11:00"}]},
	    {"code": "", "meetings": [{"weekday": "segunda", "start": "09:00", "end": "11:00"}]}
	  ]},
	  {"id": 2, "shifts": []}
	]`)

	source.EXPECT().Describe().Return("horarios.json")
	source.EXPECT().Fetch(mock.Anything).Return(data, nil)

	service := NewCatalogService(source, nil, 0, time.Millisecond)

	result, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, result.Problems, 2)
	assert.Equal(t, []string{"Algorithms"}, result.Index.Names())
}

func TestCatalogLoad_EmptyIndex(t *testing.T) {
	source := portsmocks.NewMockCatalogSource(t)

	source.EXPECT().Describe().Return("horarios.json")
	source.EXPECT().Fetch(mock.Anything).Return([]byte(`[]`), nil)

	service := NewCatalogService(source, nil, 0, time.Millisecond)

	_, err := service.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrDataLoad)
}

func TestCatalogLoad_CancelledContext(t *testing.T) {
	source := portsmocks.NewMockCatalogSource(t)
	source.EXPECT().Describe().Return("horarios.json")
	source.EXPECT().Fetch(mock.Anything).Return(nil, context.Canceled).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := NewCatalogService(source, nil, 10, time.Hour)

	_, err := service.Load(ctx)

	assert.ErrorIs(t, err, domain.ErrDataLoad)
	assert.ErrorIs(t, err, context.Canceled)
}
