package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dampdigits/stockplay/internal/domain/entity"
)

// MockHoldingRepository is a mock implementation of the HoldingRepository interface
type MockHoldingRepository struct {
	mock.Mock
}

// ListByUsername mocks the ListByUsername method
func (m *MockHoldingRepository) ListByUsername(ctx context.Context, username string) ([]*entity.Holding, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Holding), args.Error(1)
}

// GetForUpdate mocks the GetForUpdate method
func (m *MockHoldingRepository) GetForUpdate(ctx context.Context, username, symbol string) (*entity.Holding, error) {
	args := m.Called(ctx, username, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Holding), args.Error(1)
}

// Create mocks the Create method
func (m *MockHoldingRepository) Create(ctx context.Context, holding *entity.Holding) error {
	args := m.Called(ctx, holding)
	return args.Error(0)
}

// UpdateShares mocks the UpdateShares method
func (m *MockHoldingRepository) UpdateShares(ctx context.Context, username, symbol string, shares int64) error {
	args := m.Called(ctx, username, symbol, shares)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockHoldingRepository) Delete(ctx context.Context, username, symbol string) error {
	args := m.Called(ctx, username, symbol)
	return args.Error(0)
}
