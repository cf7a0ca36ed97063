package ports

import (
	"context"
	"time"
)

// SlotRecord is one stored slot value
type SlotRecord struct {
	Key       string
	Revision  string
	UpdatedAt time.Time
	Value     string
}

// SlotReader reads stored slots
type SlotReader interface {
	// Get returns domain.ErrSlotEmpty when nothing is stored under key
	Get(ctx context.Context, key string) (string, error)
	List(ctx context.Context) ([]SlotRecord, error)
}

// SlotWriter stores and removes slots
type SlotWriter interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key, value string) error
}

// SlotRepository is the composite interface
type SlotRepository interface {
	SlotReader
	SlotWriter
	Close() error
}
