package usecase

import "context"

// AuthUseCase defines registration and session-identity operations
type AuthUseCase interface {
	// Register creates a new user and establishes a session
	Register(ctx context.Context, username, password, confirmation string) (token string, err error)

	// Login verifies credentials and establishes a session.
	// Failure is always the generic ErrInvalidCredentials regardless of cause.
	Login(ctx context.Context, username, password string) (token string, err error)

	// Logout invalidates the session token only; durable state is untouched
	Logout(ctx context.Context, token string) error

	// ChangePassword replaces the stored hash after verifying the current password
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}
