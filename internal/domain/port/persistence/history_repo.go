package persistence

import (
	"context"

	"github.com/dampdigits/stockplay/internal/domain/entity"
)

// HistoryRepository defines the methods to interact with the append-only history table
type HistoryRepository interface {
	// Append stores a new history record. Records are never updated or deleted.
	Append(ctx context.Context, record *entity.HistoryRecord) error

	// ListByUsername returns the user's history records in chronological order
	ListByUsername(ctx context.Context, username string) ([]*entity.HistoryRecord, error)
}
