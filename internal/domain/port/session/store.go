package session

import "context"

// Store maps opaque browser tokens to logged-in usernames.
// Sessions are ephemeral: bounded by logout or TTL expiry, never persisted
// in the relational store.
type Store interface {
	// Create mints a fresh token bound to the username
	Create(ctx context.Context, username string) (token string, err error)

	// Resolve returns the username a token is bound to
	//
	// Possible errors:
	// - ErrSessionNotFound: If the token is unknown or expired
	Resolve(ctx context.Context, token string) (username string, err error)

	// Destroy invalidates a token. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}
