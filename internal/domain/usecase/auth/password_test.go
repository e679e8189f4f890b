package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	newStoredUser := func(t *testing.T, m *authMocks) *entity.User {
		t.Helper()
		user, err := entity.NewUser("alice", "old-hash", testStartingCash, m.tp)
		require.NoError(t, err)
		return user
	}

	t.Run("replaces the hash after verifying the current password", func(t *testing.T) {
		svc, m := newAuthService()
		user := newStoredUser(t, m)

		m.users.On("GetByUsername", ctx, "alice").Return(user, nil)
		m.hasher.On("Verify", "old-hash", "old-pw").Return(nil)
		m.hasher.On("Hash", "new-pw").Return("new-hash", nil)
		m.users.On("UpdatePasswordHash", ctx, "alice", "new-hash").Return(nil)

		err := svc.ChangePassword(ctx, "alice", "old-pw", "new-pw")

		require.NoError(t, err)
		m.users.AssertExpectations(t)
		m.hasher.AssertExpectations(t)
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		svc, m := newAuthService()
		user := newStoredUser(t, m)

		m.users.On("GetByUsername", ctx, "alice").Return(user, nil)
		m.hasher.On("Verify", "old-hash", "wrong").Return(errors.New("mismatch"))

		err := svc.ChangePassword(ctx, "alice", "wrong", "new-pw")

		assert.ErrorIs(t, err, errs.ErrWrongPassword)
		m.users.AssertNotCalled(t, "UpdatePasswordHash", ctx, "alice", "new-hash")
	})

	t.Run("rejects missing input", func(t *testing.T) {
		svc, m := newAuthService()

		assert.ErrorIs(t, svc.ChangePassword(ctx, "alice", "", "new"), errs.ErrMissingInput)
		assert.ErrorIs(t, svc.ChangePassword(ctx, "alice", "old", ""), errs.ErrMissingInput)
		m.users.AssertNotCalled(t, "GetByUsername", ctx, "alice")
	})
}
