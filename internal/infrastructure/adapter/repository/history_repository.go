package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	errs "github.com/dampdigits/stockplay/internal/domain/error"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/model"
)

// HistoryRepository implements the persistence HistoryRepository interface using GORM
type HistoryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewHistoryRepository creates a new HistoryRepository instance
func NewHistoryRepository(db *gorm.DB, logger coreport.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger,
	}
}

// Append stores a new history record. Records are never updated or deleted.
func (r *HistoryRepository) Append(ctx context.Context, record *entity.HistoryRecord) error {
	historyModel := model.History{
		Username:   record.Username,
		Action:     string(record.Action),
		Symbol:     record.Symbol,
		Shares:     record.Shares,
		Rate:       record.Rate,
		TotalValue: record.TotalValue,
		RecordedAt: record.RecordedAt,
	}

	result := r.db.WithContext(ctx).Create(&historyModel)
	if result.Error != nil {
		r.logger.Error("Database error when appending history", map[string]any{
			"username": record.Username,
			"action":   string(record.Action),
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	record.ID = historyModel.ID
	return nil
}

// ListByUsername returns the user's history records in chronological order
func (r *HistoryRepository) ListByUsername(ctx context.Context, username string) ([]*entity.HistoryRecord, error) {
	var historyModels []model.History
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("recorded_at ASC, id ASC").
		Find(&historyModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing history", map[string]any{
			"username": username,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	records := make([]*entity.HistoryRecord, 0, len(historyModels))
	for i := range historyModels {
		m := &historyModels[i]
		records = append(records, &entity.HistoryRecord{
			ID:         m.ID,
			Username:   m.Username,
			Action:     entity.Action(m.Action),
			Symbol:     m.Symbol,
			Shares:     m.Shares,
			Rate:       m.Rate,
			TotalValue: m.TotalValue,
			RecordedAt: m.RecordedAt,
		})
	}
	return records, nil
}
