package ledger

import (
	"context"
	"strings"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/domain/port/market"
	"github.com/dampdigits/stockplay/internal/domain/port/persistence"
)

// Service implements the ledger business logic: portfolio valuation and the
// atomic buy/sell/deposit mutations over users, holdings and history.
type Service struct {
	uow      persistence.UnitOfWork
	users    persistence.UserRepository
	holdings persistence.HoldingRepository
	history  persistence.HistoryRepository
	quotes   market.QuoteProvider
	tp       coreport.TimeProvider
	logger   coreport.Logger
}

// NewService creates a new ledger service. The user, holding and history
// repositories are used for plain reads; all mutations go through the unit of work.
func NewService(
	uow persistence.UnitOfWork,
	users persistence.UserRepository,
	holdings persistence.HoldingRepository,
	history persistence.HistoryRepository,
	quotes market.QuoteProvider,
	tp coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:      uow,
		users:    users,
		holdings: holdings,
		history:  history,
		quotes:   quotes,
		tp:       tp,
		logger:   logger,
	}
}

// withTransaction runs fn inside a unit of work, committing on success and
// rolling back on any error so no partial ledger mutation is ever observable.
func (s *Service) withTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back ledger transaction", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return err
	}

	return s.uow.Commit(txCtx)
}

// resolveQuote validates the symbol input and fetches the live price
func (s *Service) resolveQuote(ctx context.Context, symbol string) (*quoteResult, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, errs.ErrMissingInput
	}
	quote, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return &quoteResult{symbol: quote.Symbol, priceInCents: quote.PriceInCents}, nil
}

type quoteResult struct {
	symbol       string
	priceInCents int64
}
