package auth

import (
	"context"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

// ChangePassword replaces the stored hash after verifying the current password
func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return errs.ErrMissingInput
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.hasher.Verify(user.PasswordHash(), oldPassword); err != nil {
		s.logger.Warn("Password change rejected, wrong current password", map[string]any{
			"username": username,
		})
		return errs.ErrWrongPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Error("Failed to hash new password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return errs.ErrInternalServer
	}

	if err := s.users.UpdatePasswordHash(ctx, username, hash); err != nil {
		return err
	}

	s.logger.Info("Password changed", map[string]any{
		"username": username,
	})
	return nil
}
