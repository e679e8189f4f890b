package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

// Register creates a new user with the starting cash grant and establishes a session.
//
// The username's uniqueness is enforced by the database constraint rather than a
// read-then-insert check, so two simultaneous registrations of the same name
// cannot both succeed.
func (s *Service) Register(ctx context.Context, username, password, confirmation string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" || confirmation == "" {
		return "", errs.ErrMissingInput
	}
	if password != confirmation {
		return "", errs.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return "", errs.ErrInternalServer
	}

	user, err := entity.NewUser(username, hash, s.startingCash, s.tp)
	if err != nil {
		return "", err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateUsername) {
			s.logger.Warn("Registration rejected, username taken", map[string]any{
				"username": username,
			})
		}
		return "", err
	}

	token, err := s.sessions.Create(ctx, username)
	if err != nil {
		return "", err
	}

	s.logger.Info("User registered", map[string]any{
		"username": username,
		"cash":     user.FormatCash(),
	})

	return token, nil
}
