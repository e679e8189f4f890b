package entity

import (
	"strings"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

// Holding represents a user's current position in one symbol.
// At most one holding exists per (username, symbol) pair and its share
// count is always positive; a holding that reaches zero is deleted.
type Holding struct {
	ID       uint64
	Username string
	Symbol   string
	Shares   int64
}

// NewHolding creates a holding for the first purchase of a symbol
func NewHolding(username, symbol string, shares int64) (*Holding, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(symbol) == "" {
		return nil, errs.ErrMissingInput
	}
	if shares <= 0 {
		return nil, errs.ErrInvalidShares
	}
	return &Holding{
		Username: username,
		Symbol:   symbol,
		Shares:   shares,
	}, nil
}

// Add increases the share count by the given amount
func (h *Holding) Add(shares int64) {
	h.Shares += shares
}

// Reduce decreases the share count by the given amount.
// Returns an error if the holding owns fewer shares than requested.
func (h *Holding) Reduce(shares int64) error {
	if shares > h.Shares {
		return errs.NewInsufficientSharesError(h.Username, h.Symbol, shares, h.Shares)
	}
	h.Shares -= shares
	return nil
}

// Empty reports whether no shares remain
func (h *Holding) Empty() bool {
	return h.Shares == 0
}
