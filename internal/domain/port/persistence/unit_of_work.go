package persistence

import (
	"context"
)

// UnitOfWork coordinates the mutations of one ledger operation inside a single
// database transaction, so cash, holdings and history either all change or none do.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Users returns a user repository bound to the current transaction
	Users(ctx context.Context) UserRepository

	// Holdings returns a holding repository bound to the current transaction
	Holdings(ctx context.Context) HoldingRepository

	// History returns a history repository bound to the current transaction
	History(ctx context.Context) HistoryRepository
}
