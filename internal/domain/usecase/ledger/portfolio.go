package ledger

import (
	"context"

	"github.com/dampdigits/stockplay/internal/domain/port/usecase"
)

// Portfolio values every holding the user owns at the live quote and adds cash.
// A quote failure for any held symbol aborts the whole valuation; there is no
// partial-price fallback.
func (s *Service) Portfolio(ctx context.Context, username string) (*usecase.PortfolioSummary, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	holdings, err := s.holdings.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	summary := &usecase.PortfolioSummary{
		Username:    username,
		CashInCents: user.Cash(),
		Positions:   make([]usecase.Position, 0, len(holdings)),
	}

	total := user.Cash()
	for _, holding := range holdings {
		quote, err := s.quotes.Lookup(ctx, holding.Symbol)
		if err != nil {
			s.logger.Warn("Portfolio valuation aborted, quote lookup failed", map[string]any{
				"username": username,
				"symbol":   holding.Symbol,
				"error":    err.Error(),
			})
			return nil, err
		}

		value := quote.PriceInCents * holding.Shares
		summary.Positions = append(summary.Positions, usecase.Position{
			Symbol:       holding.Symbol,
			Shares:       holding.Shares,
			PriceInCents: quote.PriceInCents,
			ValueInCents: value,
		})
		total += value
	}

	summary.NetWorthInCents = total
	return summary, nil
}

// OwnedSymbols lists the symbols the user currently holds, for the sell form
func (s *Service) OwnedSymbols(ctx context.Context, username string) ([]string, error) {
	holdings, err := s.holdings.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(holdings))
	for _, holding := range holdings {
		symbols = append(symbols, holding.Symbol)
	}
	return symbols, nil
}
