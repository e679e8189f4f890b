package model

import (
	"time"
)

// Holding represents the database model for stock positions.
// The composite unique index enforces at most one row per (username, symbol).
type Holding struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"uniqueIndex:idx_stocks_username_symbol;not null;size:255"`
	Symbol    string    `gorm:"uniqueIndex:idx_stocks_username_symbol;not null;size:20"`
	Shares    int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Holding
func (Holding) TableName() string {
	return "stocks"
}
