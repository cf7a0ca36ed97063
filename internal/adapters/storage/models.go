package storage

import "time"

// SlotModel is the GORM model for the slots table
type SlotModel struct {
	CreatedAt time.Time
	Key       string `gorm:"column:slot_key;primaryKey"`
	Revision  string `gorm:"not null;default:''"`
	UpdatedAt time.Time
	Value     string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SlotModel) TableName() string { return "slots" }
