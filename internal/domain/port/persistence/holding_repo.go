package persistence

import (
	"context"

	"github.com/dampdigits/stockplay/internal/domain/entity"
)

// HoldingRepository defines the methods to interact with stock holdings
type HoldingRepository interface {
	// ListByUsername returns every holding the user owns, ordered by symbol
	ListByUsername(ctx context.Context, username string) ([]*entity.Holding, error)

	// GetForUpdate retrieves the user's holding for a symbol with an exclusive row lock
	//
	// Possible errors:
	// - ErrHoldingNotFound: If the user owns no shares of the symbol
	// - ErrDatabaseConnection: If the database cannot be reached
	GetForUpdate(ctx context.Context, username, symbol string) (*entity.Holding, error)

	// Create inserts a holding on the first purchase of a symbol
	//
	// Possible errors:
	// - ErrConstraintViolation: If a holding for (username, symbol) already exists
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, holding *entity.Holding) error

	// UpdateShares writes a new share count for an existing holding
	//
	// Possible errors:
	// - ErrHoldingNotFound: If the holding doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	UpdateShares(ctx context.Context, username, symbol string, shares int64) error

	// Delete removes the holding once its share count reaches zero
	//
	// Possible errors:
	// - ErrHoldingNotFound: If the holding doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	Delete(ctx context.Context, username, symbol string) error
}
