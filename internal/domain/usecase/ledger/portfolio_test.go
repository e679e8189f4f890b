package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

func TestService_Portfolio(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("values every holding at the live quote", func(t *testing.T) {
		svc, m := newLedgerService(fixedTime)
		user := newTestUser(t, m.tp, 50000)

		aapl, err := entity.NewHolding("alice", "AAPL", 2)
		require.NoError(t, err)
		nflx, err := entity.NewHolding("alice", "NFLX", 1)
		require.NoError(t, err)

		m.users.On("GetByUsername", ctx, "alice").Return(user, nil)
		m.holdings.On("ListByUsername", ctx, "alice").Return([]*entity.Holding{aapl, nflx}, nil)
		m.quotes.On("Lookup", ctx, "AAPL").Return(&entity.Quote{Symbol: "AAPL", CompanyName: "AAPL", PriceInCents: 15000}, nil)
		m.quotes.On("Lookup", ctx, "NFLX").Return(&entity.Quote{Symbol: "NFLX", CompanyName: "NFLX", PriceInCents: 60000}, nil)

		summary, err := svc.Portfolio(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, "alice", summary.Username)
		assert.Equal(t, int64(50000), summary.CashInCents)
		require.Len(t, summary.Positions, 2)
		assert.Equal(t, int64(30000), summary.Positions[0].ValueInCents)
		assert.Equal(t, int64(60000), summary.Positions[1].ValueInCents)
		// cash 500.00 + AAPL 300.00 + NFLX 600.00
		assert.Equal(t, int64(140000), summary.NetWorthInCents)
		assert.Equal(t, "1400.00", summary.FormatNetWorth())
	})

	t.Run("empty portfolio is just cash", func(t *testing.T) {
		svc, m := newLedgerService(fixedTime)
		user := newTestUser(t, m.tp, 1000000)

		m.users.On("GetByUsername", ctx, "alice").Return(user, nil)
		m.holdings.On("ListByUsername", ctx, "alice").Return([]*entity.Holding{}, nil)

		summary, err := svc.Portfolio(ctx, "alice")

		require.NoError(t, err)
		assert.Empty(t, summary.Positions)
		assert.Equal(t, int64(1000000), summary.NetWorthInCents)
	})

	t.Run("quote failure aborts the valuation", func(t *testing.T) {
		svc, m := newLedgerService(fixedTime)
		user := newTestUser(t, m.tp, 50000)
		aapl, err := entity.NewHolding("alice", "AAPL", 2)
		require.NoError(t, err)

		m.users.On("GetByUsername", ctx, "alice").Return(user, nil)
		m.holdings.On("ListByUsername", ctx, "alice").Return([]*entity.Holding{aapl}, nil)
		m.quotes.On("Lookup", ctx, "AAPL").Return(nil, errs.ErrQuoteUnavailable)

		_, err = svc.Portfolio(ctx, "alice")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})
}

func TestService_OwnedSymbols(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	svc, m := newLedgerService(fixedTime)
	aapl, err := entity.NewHolding("alice", "AAPL", 2)
	require.NoError(t, err)
	nflx, err := entity.NewHolding("alice", "NFLX", 1)
	require.NoError(t, err)

	m.holdings.On("ListByUsername", ctx, "alice").Return([]*entity.Holding{aapl, nflx}, nil)

	symbols, err := svc.OwnedSymbols(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "NFLX"}, symbols)
}

func TestService_History(t *testing.T) {
	fixedTime := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	svc, m := newLedgerService(fixedTime)
	records := []*entity.HistoryRecord{
		{Username: "alice", Action: entity.ActionDeposited, Symbol: entity.SymbolNone, TotalValue: 10000},
		{Username: "alice", Action: entity.ActionBought, Symbol: "AAPL", Shares: 1, Rate: 15000, TotalValue: 15000},
	}

	m.history.On("ListByUsername", ctx, "alice").Return(records, nil)

	got, err := svc.History(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, records, got)
}
