package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

func TestService_Sell(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()
	quote := &entity.Quote{Symbol: "NFLX", CompanyName: "NFLX", PriceInCents: 60000}

	t.Run("partial sale keeps the holding", func(t *testing.T) {
		svc, m := newLedgerService(fixedTime)
		user := newTestUser(t, m.tp, 10000)
		holding, err := entity.NewHolding("alice", "NFLX", 5)
		require.NoError(t, err)

		m.quotes.On("Lookup", ctx, "NFLX").Return(quote, nil)
		m.expectTransaction(ctx, true)
		m.users.On("GetByUsernameForUpdate", ctx, "alice").Return(user, nil)
		m.holdings.On("GetForUpdate", ctx, "alice", "NFLX").Return(holding, nil)
		m.holdings.On("UpdateShares", ctx, "alice", "NFLX", int64(3)).Return(nil)
		m.history.On("Append", ctx, mock.AnythingOfType("*entity.HistoryRecord")).Return(nil)
		m.users.On("UpdateCash", ctx, "alice", int64(130000)).Return(nil)

		result, err := svc.Sell(ctx, "alice", "NFLX", "2")

		require.NoError(t, err)
		assert.Equal(t, entity.ActionSold, result.Action)
		assert.Equal(t, int64(2), result.Shares)
		assert.Equal(t, int64(120000), result.TotalInCents)
		assert.Equal(t, int64(130000), result.CashInCents)

		m.holdings.AssertExpectations(t)
		m.holdings.AssertNotCalled(t, "Delete", ctx, "alice", "NFLX")
	})

	t.Run("selling every share deletes the holding", func(t *testing.T) {
		svc, m := newLedgerService(fixedTime)
		user := newTestUser(t, m.tp, 0)
		holding, err := entity.NewHolding("alice", "NFLX", 2)
		require.NoError(t, err)

		m.quotes.On("Lookup", ctx, "NFLX").Return(quote, nil)
		m.expectTransaction(ctx, true)
		m.users.On("GetByUsernameForUpdate", ctx, "alice").Return(user, nil)
		m.holdings.On("GetForUpdate", ctx, "alice", "NFLX").Return(holding, nil)
		m.holdings.On("Delete", ctx, "alice", "NFLX").Return(nil)
		m.history.On("Append", ctx, mock.AnythingOfType("*entity.HistoryRecord")).Return(nil)
		m.users.On("UpdateCash", ctx, "alice", int64(120000)).Return(nil)

		result, err := svc.Sell(ctx, "alice", "NFLX", "2")

		require.NoError(t, err)
		assert.Equal(t, int64(120000), result.CashInCents)
		m.holdings.AssertExpectations(t)
		m.holdings.AssertNotCalled(t, "UpdateShares", ctx, "alice", "NFLX", int64(0))
	})

	t.Run("selling more than owned rolls back", func(t *testing.T) {
		svc, m := newLedgerService(fixedTime)
		user := newTestUser(t, m.tp, 0)
		holding, err := entity.NewHolding("alice", "NFLX", 1)
		require.NoError(t, err)

		m.quotes.On("Lookup", ctx, "NFLX").Return(quote, nil)
		m.expectTransaction(ctx, false)
		m.users.On("GetByUsernameForUpdate", ctx, "alice").Return(user, nil)
		m.holdings.On("GetForUpdate", ctx, "alice", "NFLX").Return(holding, nil)

		_, err = svc.Sell(ctx, "alice", "NFLX", "3")

		assert.ErrorIs(t, err, errs.ErrInsufficientShares)
		m.uow.AssertExpectations(t)
	})

	t.Run("selling a symbol not owned reports zero shares", func(t *testing.T) {
		svc, m := newLedgerService(fixedTime)
		user := newTestUser(t, m.tp, 0)

		m.quotes.On("Lookup", ctx, "NFLX").Return(quote, nil)
		m.expectTransaction(ctx, false)
		m.users.On("GetByUsernameForUpdate", ctx, "alice").Return(user, nil)
		m.holdings.On("GetForUpdate", ctx, "alice", "NFLX").Return(nil, errs.ErrHoldingNotFound)

		_, err := svc.Sell(ctx, "alice", "NFLX", "1")

		assert.ErrorIs(t, err, errs.ErrInsufficientShares)

		var sharesErr *errs.InsufficientSharesError
		require.ErrorAs(t, err, &sharesErr)
		assert.Equal(t, int64(0), sharesErr.Owned)
	})

	t.Run("invalid share count never opens a transaction", func(t *testing.T) {
		svc, m := newLedgerService(fixedTime)

		_, err := svc.Sell(ctx, "alice", "NFLX", "2.5")
		assert.ErrorIs(t, err, errs.ErrInvalidShares)
		m.uow.AssertNotCalled(t, "Begin", ctx)
	})
}
