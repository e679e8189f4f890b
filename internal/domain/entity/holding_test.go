package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

func TestNewHolding(t *testing.T) {
	t.Run("creates holding", func(t *testing.T) {
		holding, err := NewHolding("alice", "AAPL", 10)

		require.NoError(t, err)
		assert.Equal(t, "alice", holding.Username)
		assert.Equal(t, "AAPL", holding.Symbol)
		assert.Equal(t, int64(10), holding.Shares)
	})

	t.Run("rejects missing username or symbol", func(t *testing.T) {
		_, err := NewHolding("", "AAPL", 10)
		assert.ErrorIs(t, err, errs.ErrMissingInput)

		_, err = NewHolding("alice", " ", 10)
		assert.ErrorIs(t, err, errs.ErrMissingInput)
	})

	t.Run("rejects non-positive share counts", func(t *testing.T) {
		_, err := NewHolding("alice", "AAPL", 0)
		assert.ErrorIs(t, err, errs.ErrInvalidShares)

		_, err = NewHolding("alice", "AAPL", -5)
		assert.ErrorIs(t, err, errs.ErrInvalidShares)
	})
}

func TestHoldingAddReduce(t *testing.T) {
	t.Run("add increases shares", func(t *testing.T) {
		holding, err := NewHolding("alice", "AAPL", 10)
		require.NoError(t, err)

		holding.Add(5)
		assert.Equal(t, int64(15), holding.Shares)
	})

	t.Run("reduce decreases shares", func(t *testing.T) {
		holding, err := NewHolding("alice", "AAPL", 10)
		require.NoError(t, err)

		require.NoError(t, holding.Reduce(4))
		assert.Equal(t, int64(6), holding.Shares)
		assert.False(t, holding.Empty())
	})

	t.Run("reducing to zero empties the holding", func(t *testing.T) {
		holding, err := NewHolding("alice", "AAPL", 10)
		require.NoError(t, err)

		require.NoError(t, holding.Reduce(10))
		assert.True(t, holding.Empty())
	})

	t.Run("reduce rejects selling more than owned", func(t *testing.T) {
		holding, err := NewHolding("alice", "AAPL", 10)
		require.NoError(t, err)

		err = holding.Reduce(11)
		assert.ErrorIs(t, err, errs.ErrInsufficientShares)
		assert.Equal(t, int64(10), holding.Shares, "shares must be unchanged after a rejected reduce")

		var sharesErr *errs.InsufficientSharesError
		require.ErrorAs(t, err, &sharesErr)
		assert.Equal(t, int64(11), sharesErr.Requested)
		assert.Equal(t, int64(10), sharesErr.Owned)
	})
}
