package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDataLoad      = errors.New("failed to load schedule data")
	ErrExportBlocked = errors.New("export blocked")
	ErrExportIO      = errors.New("export failed")
	ErrInvalidSlot   = errors.New("invalid slot")
	ErrLockedSection = errors.New("section is locked")
	ErrMalformedData = errors.New("malformed schedule data")
	ErrPersistence   = errors.New("slot storage failed")
	ErrSlotEmpty     = errors.New("slot is empty")

	// ErrSourceRejected marks a schedule source answer that retrying cannot fix
	ErrSourceRejected = errors.New("schedule source rejected the request")
)

// MalformedDataError lists the raw records that were skipped while building
// the schedule index. The index built alongside it is still usable.
type MalformedDataError struct {
	Problems []string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedData, strings.Join(e.Problems, "; "))
}

// Is makes errors.Is(err, ErrMalformedData) match
func (e *MalformedDataError) Is(target error) bool {
	return target == ErrMalformedData
}

// ExportBlockedError explains why a CSV export cannot be produced
type ExportBlockedError struct {
	Issues      []Issue
	NoSelection bool
}

func (e *ExportBlockedError) Error() string {
	if e.NoSelection {
		return fmt.Sprintf("%s: no sections selected", ErrExportBlocked)
	}
	items := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		items[i] = issue.String()
	}
	return fmt.Sprintf("%s: %s", ErrExportBlocked, strings.Join(items, "; "))
}

// Is makes errors.Is(err, ErrExportBlocked) match
func (e *ExportBlockedError) Is(target error) bool {
	return target == ErrExportBlocked
}
