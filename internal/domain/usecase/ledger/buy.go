package ledger

import (
	"context"
	"errors"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	errs "github.com/dampdigits/stockplay/internal/domain/error"
	"github.com/dampdigits/stockplay/internal/domain/port/usecase"
)

// Buy purchases shares of a symbol at the live quoted price.
//
// The price is resolved before the transaction opens; the read-modify-write of
// cash and the holding happens entirely under an exclusive lock on the user row,
// so two buys from the same user cannot interleave.
func (s *Service) Buy(ctx context.Context, username, symbol, shares string) (*usecase.TradeResult, error) {
	shareCount, err := entity.ParseShareCount(shares)
	if err != nil {
		return nil, err
	}

	quote, err := s.resolveQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	cost, err := entity.MultiplyCents(quote.priceInCents, shareCount)
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

		if !user.CanAfford(cost) {
			return errs.NewInsufficientBalanceError(username, cost, user.Cash())
		}

		holding, err := holdings.GetForUpdate(txCtx, username, quote.symbol)
		switch {
		case err == nil:
			holding.Add(shareCount)
			if err := holdings.UpdateShares(txCtx, username, quote.symbol, holding.Shares); err != nil {
				return err
			}
		case errors.Is(err, errs.ErrHoldingNotFound):
			holding, err = entity.NewHolding(username, quote.symbol, shareCount)
			if err != nil {
				return err
			}
			if err := holdings.Create(txCtx, holding); err != nil {
				return err
			}
		default:
			return err
		}

		record, err := entity.NewTradeRecord(username, entity.ActionBought, quote.symbol, shareCount, quote.priceInCents, s.tp)
		if err != nil {
			return err
		}
		if err := history.Append(txCtx, record); err != nil {
			return err
		}

		newCash := user.Cash() - cost
		if err := users.UpdateCash(txCtx, username, newCash); err != nil {
			return err
		}

		result = &usecase.TradeResult{
			Action:       entity.ActionBought,
			Symbol:       quote.symbol,
			Shares:       shareCount,
			PriceInCents: quote.priceInCents,
			TotalInCents: cost,
			CashInCents:  newCash,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Shares bought", map[string]any{
		"username": username,
		"symbol":   result.Symbol,
		"shares":   result.Shares,
		"rate":     entity.AmountInCentsToString(result.PriceInCents),
		"cost":     entity.AmountInCentsToString(result.TotalInCents),
		"cash":     entity.AmountInCentsToString(result.CashInCents),
	})

	return result, nil
}
