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

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	newStoredUser := func(t *testing.T, m *authMocks) *entity.User {
		t.Helper()
		user, err := entity.NewUser("alice", "stored-hash", testStartingCash, m.tp)
		require.NoError(t, err)
		return user
	}

	t.Run("valid credentials open a session", func(t *testing.T) {
		svc, m := newAuthService()
		user := newStoredUser(t, m)

		m.users.On("GetByUsername", ctx, "alice").Return(user, nil)
		m.hasher.On("Verify", "stored-hash", "s3cret").Return(nil)
		m.sessions.On("Create", ctx, "alice").Return("token-1", nil)

		token, err := svc.Login(ctx, "alice", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "token-1", token)
		m.sessions.AssertExpectations(t)
	})

	t.Run("every failure is the same generic error", func(t *testing.T) {
		t.Run("blank input", func(t *testing.T) {
			svc, _ := newAuthService()

			_, err := svc.Login(ctx, "", "pw")
			assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

			_, err = svc.Login(ctx, "alice", "")
			assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		})

		t.Run("unknown username", func(t *testing.T) {
			svc, m := newAuthService()

			m.users.On("GetByUsername", ctx, "ghost").Return(nil, errs.ErrUserNotFound)

			_, err := svc.Login(ctx, "ghost", "pw")
			assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
			assert.NotErrorIs(t, err, errs.ErrUserNotFound, "login must not reveal that the user is unknown")
		})

		t.Run("wrong password", func(t *testing.T) {
			svc, m := newAuthService()
			user := newStoredUser(t, m)

			m.users.On("GetByUsername", ctx, "alice").Return(user, nil)
			m.hasher.On("Verify", "stored-hash", "wrong").Return(errors.New("mismatch"))

			_, err := svc.Login(ctx, "alice", "wrong")
			assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
			m.sessions.AssertNotCalled(t, "Create", ctx, "alice")
		})
	})

	t.Run("infrastructure failures pass through", func(t *testing.T) {
		svc, m := newAuthService()

		m.users.On("GetByUsername", ctx, "alice").Return(nil, errs.ErrDatabaseConnection)

		_, err := svc.Login(ctx, "alice", "pw")
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthService()

	m.sessions.On("Destroy", ctx, "token-1").Return(nil)

	require.NoError(t, svc.Logout(ctx, "token-1"))
	m.sessions.AssertExpectations(t)
}
