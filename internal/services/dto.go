package services

import (
	"time"

	"turmas/internal/domain"
)

// ActionRequest names a timetable action and its target
type ActionRequest struct {
	Color      string
	Delta      int
	Discipline string
	Name       string
	Section    string
	Type       domain.SectionType
}

// SlotInfo describes one save slot
type SlotInfo struct {
	Disciplines int       `json:"disciplines"`
	Number      int       `json:"number"`
	Occupied    bool      `json:"occupied"`
	Revision    string    `json:"revision,omitempty"`
	SavedAt     time.Time `json:"saved_at,omitzero"`
}

// ExportFormat selects what an export produces
type ExportFormat string

const (
	ExportAll   ExportFormat = "all"
	ExportCSV   ExportFormat = "csv"
	ExportImage ExportFormat = "image"
)

// ExportParams contains parameters for an export
type ExportParams struct {
	BaseName  string
	Clipboard bool
	Display   domain.DisplayOptions
	Format    ExportFormat
}

// ExportResult reports where one export artifact went
type ExportResult struct {
	Clipboard bool
	Format    ExportFormat
	Path      string
}
