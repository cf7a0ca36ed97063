package storage

import (
	"turmas/internal/ports"
)

// slotModelToRecord converts a SlotModel (GORM) to ports.SlotRecord
func slotModelToRecord(m SlotModel) ports.SlotRecord {
	return ports.SlotRecord{
		Key:       m.Key,
		Revision:  m.Revision,
		UpdatedAt: m.UpdatedAt,
		Value:     m.Value,
	}
}
