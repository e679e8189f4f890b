package auth

import (
	"context"
	"errors"
	"strings"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

// Login verifies credentials and establishes a session.
//
// Every failure path answers with the same generic ErrInvalidCredentials so a
// caller cannot probe which usernames exist.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", errs.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return "", errs.ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.hasher.Verify(user.PasswordHash(), password); err != nil {
		s.logger.Warn("Login rejected", map[string]any{
			"username": username,
		})
		return "", errs.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, username)
	if err != nil {
		return "", err
	}

	s.logger.Info("User logged in", map[string]any{
		"username": username,
	})

	return token, nil
}

// Logout invalidates the session token; durable state is untouched
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
