package usecase

import (
	"context"

	"github.com/dampdigits/stockplay/internal/domain/entity"
)

// Position is one row of the portfolio breakdown: a holding priced at the live quote
type Position struct {
	Symbol       string
	Shares       int64
	PriceInCents int64
	ValueInCents int64
}

// FormatPrice returns the live share price as a decimal string
func (p Position) FormatPrice() string {
	return entity.AmountInCentsToString(p.PriceInCents)
}

// FormatValue returns the position value as a decimal string
func (p Position) FormatValue() string {
	return entity.AmountInCentsToString(p.ValueInCents)
}

// PortfolioSummary is the full valuation of a user's account
type PortfolioSummary struct {
	Username        string
	CashInCents     int64
	NetWorthInCents int64
	Positions       []Position
}

// FormatCash returns the cash balance as a decimal string
func (s *PortfolioSummary) FormatCash() string {
	return entity.AmountInCentsToString(s.CashInCents)
}

// FormatNetWorth returns the total net worth as a decimal string
func (s *PortfolioSummary) FormatNetWorth() string {
	return entity.AmountInCentsToString(s.NetWorthInCents)
}

// TradeResult describes a completed ledger operation
type TradeResult struct {
	Action       entity.Action
	Symbol       string
	Shares       int64
	PriceInCents int64
	TotalInCents int64
	CashInCents  int64 // Cash balance after the operation
}

// LedgerUseCase defines the ledger-side business operations.
// Buy, Sell and Deposit take raw form input and perform their own validation;
// each mutation is atomic with respect to concurrent operations on the same user.
type LedgerUseCase interface {
	// Portfolio values every holding at the live quote and adds cash
	Portfolio(ctx context.Context, username string) (*PortfolioSummary, error)

	// History returns the user's ledger history in chronological order
	History(ctx context.Context, username string) ([]*entity.HistoryRecord, error)

	// OwnedSymbols lists the symbols the user currently holds
	OwnedSymbols(ctx context.Context, username string) ([]string, error)

	// Buy purchases shares at the live price, debiting cash
	Buy(ctx context.Context, username, symbol, shares string) (*TradeResult, error)

	// Sell disposes of shares at the live price, crediting cash
	Sell(ctx context.Context, username, symbol, shares string) (*TradeResult, error)

	// Deposit credits simulated cash given in whole dollars
	Deposit(ctx context.Context, username, cash string) (*TradeResult, error)
}
