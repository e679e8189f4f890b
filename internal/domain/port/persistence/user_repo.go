package persistence

import (
	"context"

	"github.com/dampdigits/stockplay/internal/domain/entity"
)

// UserRepository defines the methods to interact with user rows
type UserRepository interface {
	// GetByUsername retrieves a user by exact username match
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with that username exists
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetByUsernameForUpdate retrieves a user and takes an exclusive row lock.
	// Ledger operations call this inside a unit of work so concurrent
	// buy/sell/deposit requests for the same user serialize.
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with that username exists
	// - ErrUserLocked: If the lock cannot be acquired
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByUsernameForUpdate(ctx context.Context, username string) (*entity.User, error)

	// Create inserts a new user row
	//
	// Possible errors:
	// - ErrDuplicateUsername: If the username is already taken
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// UpdateCash writes a new cash balance for the user
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	UpdateCash(ctx context.Context, username string, cashInCents int64) error

	// UpdatePasswordHash replaces the stored password hash
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error
}
