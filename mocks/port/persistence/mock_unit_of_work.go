package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dampdigits/stockplay/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of the UnitOfWork interface
type MockUnitOfWork struct {
	mock.Mock
}

// Begin mocks the Begin method
func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return ctx, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

// Commit mocks the Commit method
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Rollback mocks the Rollback method
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Users mocks the Users method
func (m *MockUnitOfWork) Users(ctx context.Context) persistence.UserRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.UserRepository)
}

// Holdings mocks the Holdings method
func (m *MockUnitOfWork) Holdings(ctx context.Context) persistence.HoldingRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.HoldingRepository)
}

// History mocks the History method
func (m *MockUnitOfWork) History(ctx context.Context) persistence.HistoryRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.HistoryRepository)
}
