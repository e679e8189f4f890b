package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	errs "github.com/dampdigits/stockplay/internal/domain/error"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/model"
)

// HoldingRepository implements the persistence HoldingRepository interface using GORM
type HoldingRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewHoldingRepository creates a new HoldingRepository instance
func NewHoldingRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *HoldingRepository {
	return &HoldingRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a holding model to an entity
func (r *HoldingRepository) modelToEntity(holdingModel *model.Holding) (*entity.Holding, error) {
	holding, err := entity.NewHolding(holdingModel.Username, holdingModel.Symbol, holdingModel.Shares)
	if err != nil {
		r.logger.Error("Failed to build holding entity from row", map[string]any{
			"username": holdingModel.Username,
			"symbol":   holdingModel.Symbol,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	holding.ID = holdingModel.ID
	return holding, nil
}

// handleDatabaseError standardizes database error handling
func (r *HoldingRepository) handleDatabaseError(operation string, err error, username, symbol string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrHoldingNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"username": username,
		"symbol":   symbol,
		"error":    err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// ListByUsername returns every holding the user owns, ordered by symbol
func (r *HoldingRepository) ListByUsername(ctx context.Context, username string) ([]*entity.Holding, error) {
	var holdingModels []model.Holding
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("symbol ASC").
		Find(&holdingModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing holdings", result.Error, username, "")
	}

	holdings := make([]*entity.Holding, 0, len(holdingModels))
	for i := range holdingModels {
		holding, err := r.modelToEntity(&holdingModels[i])
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}
	return holdings, nil
}

// GetForUpdate retrieves the user's holding for a symbol with an exclusive row lock.
// Must run inside a transaction; the lock holds until commit or rollback.
func (r *HoldingRepository) GetForUpdate(ctx context.Context, username, symbol string) (*entity.Holding, error) {
	var holdingModel model.Holding
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("username = ? AND symbol = ?", username, symbol).
		First(&holdingModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking holding", result.Error, username, symbol)
	}
	return r.modelToEntity(&holdingModel)
}

// Create inserts a holding on the first purchase of a symbol
func (r *HoldingRepository) Create(ctx context.Context, holding *entity.Holding) error {
	now := r.timeProvider.Now()
	holdingModel := model.Holding{
		Username:  holding.Username,
		Symbol:    holding.Symbol,
		Shares:    holding.Shares,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := r.db.WithContext(ctx).Create(&holdingModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating holding", result.Error, holding.Username, holding.Symbol)
	}

	holding.ID = holdingModel.ID
	return nil
}

// UpdateShares writes a new share count for an existing holding
func (r *HoldingRepository) UpdateShares(ctx context.Context, username, symbol string, shares int64) error {
	result := r.db.WithContext(ctx).Model(&model.Holding{}).
		Where("username = ? AND symbol = ?", username, symbol).
		Updates(map[string]interface{}{
			"shares":     shares,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating holding", result.Error, username, symbol)
	}
	if result.RowsAffected == 0 {
		return errs.ErrHoldingNotFound
	}
	return nil
}

// Delete removes the holding once its share count reaches zero.
// Both predicates are required so one user's sale can never touch
// another user's position in the same symbol.
func (r *HoldingRepository) Delete(ctx context.Context, username, symbol string) error {
	result := r.db.WithContext(ctx).
		Where("username = ? AND symbol = ?", username, symbol).
		Delete(&model.Holding{})

	if result.Error != nil {
		return r.handleDatabaseError("deleting holding", result.Error, username, symbol)
	}
	if result.RowsAffected == 0 {
		return errs.ErrHoldingNotFound
	}
	return nil
}
