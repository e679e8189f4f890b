package model

import (
	"time"
)

// History represents the append-only database model for ledger history.
// Rows are only ever inserted.
type History struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Username   string    `gorm:"index:idx_history_username_recorded;not null;size:255"`
	Action     string    `gorm:"not null;size:20"`
	Symbol     string    `gorm:"not null;size:20"`
	Shares     int64     `gorm:"not null"`
	Rate       int64     `gorm:"not null"` // Unit price in cents
	TotalValue int64     `gorm:"not null"` // Total cents moved
	RecordedAt time.Time `gorm:"index:idx_history_username_recorded;not null"`
}

// TableName specifies the table name for History
func (History) TableName() string {
	return "history"
}
