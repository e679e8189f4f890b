package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dampdigits/stockplay/internal/domain/entity"
)

// MockUserRepository is a mock implementation of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

// GetByUsername mocks the GetByUsername method
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// GetByUsernameForUpdate mocks the GetByUsernameForUpdate method
func (m *MockUserRepository) GetByUsernameForUpdate(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// Create mocks the Create method
func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// UpdateCash mocks the UpdateCash method
func (m *MockUserRepository) UpdateCash(ctx context.Context, username string, cashInCents int64) error {
	args := m.Called(ctx, username, cashInCents)
	return args.Error(0)
}

// UpdatePasswordHash mocks the UpdatePasswordHash method
func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}
