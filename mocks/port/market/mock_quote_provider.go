package market

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dampdigits/stockplay/internal/domain/entity"
)

// MockQuoteProvider is a mock implementation of the QuoteProvider interface
type MockQuoteProvider struct {
	mock.Mock
}

// Lookup mocks the Lookup method
func (m *MockQuoteProvider) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quote), args.Error(1)
}
