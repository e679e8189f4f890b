package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dampdigits/stockplay/internal/domain/entity"
)

// MockHistoryRepository is a mock implementation of the HistoryRepository interface
type MockHistoryRepository struct {
	mock.Mock
}

// Append mocks the Append method
func (m *MockHistoryRepository) Append(ctx context.Context, record *entity.HistoryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// ListByUsername mocks the ListByUsername method
func (m *MockHistoryRepository) ListByUsername(ctx context.Context, username string) ([]*entity.HistoryRecord, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.HistoryRecord), args.Error(1)
}
