package ledger

import (
	"context"
	"errors"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	errs "github.com/dampdigits/stockplay/internal/domain/error"
	"github.com/dampdigits/stockplay/internal/domain/port/usecase"
)

// Sell disposes of shares at the live quoted price.
//
// Selling more shares than owned is rejected with no state change; a sale that
// empties the holding deletes the row rather than leaving a zero-share entry.
func (s *Service) Sell(ctx context.Context, username, symbol, shares string) (*usecase.TradeResult, error) {
	shareCount, err := entity.ParseShareCount(shares)
	if err != nil {
		return nil, err
	}

	quote, err := s.resolveQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	income, err := entity.MultiplyCents(quote.priceInCents, shareCount)
	if err != nil {
		return nil, err
	}

	var result *usecase.TradeResult
	err = s.withTransaction(ctx, func(txCtx context.Context) error {
		users := s.uow.Users(txCtx)
		holdings := s.uow.Holdings(txCtx)
		history := s.uow.History(txCtx)

		user, err := users.GetByUsernameForUpdate(txCtx, username)
		if err != nil {
			return err
		}

		holding, err := holdings.GetForUpdate(txCtx, username, quote.symbol)
		if err != nil {
			if errors.Is(err, errs.ErrHoldingNotFound) {
				return errs.NewInsufficientSharesError(username, quote.symbol, shareCount, 0)
			}
			return err
		}

		if err := holding.Reduce(shareCount); err != nil {
			return err
		}

		if holding.Empty() {
			if err := holdings.Delete(txCtx, username, quote.symbol); err != nil {
				return err
			}
		} else {
			if err := holdings.UpdateShares(txCtx, username, quote.symbol, holding.Shares); err != nil {
				return err
			}
		}

		record, err := entity.NewTradeRecord(username, entity.ActionSold, quote.symbol, shareCount, quote.priceInCents, s.tp)
		if err != nil {
			return err
		}
		if err := history.Append(txCtx, record); err != nil {
			return err
		}

		newCash := user.Cash() + income
		if err := users.UpdateCash(txCtx, username, newCash); err != nil {
			return err
		}

		result = &usecase.TradeResult{
			Action:       entity.ActionSold,
			Symbol:       quote.symbol,
			Shares:       shareCount,
			PriceInCents: quote.priceInCents,
			TotalInCents: income,
			CashInCents:  newCash,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Shares sold", map[string]any{
		"username": username,
		"symbol":   result.Symbol,
		"shares":   result.Shares,
		"rate":     entity.AmountInCentsToString(result.PriceInCents),
		"income":   entity.AmountInCentsToString(result.TotalInCents),
		"cash":     entity.AmountInCentsToString(result.CashInCents),
	})

	return result, nil
}
