package ledger

import (
	"context"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	"github.com/dampdigits/stockplay/internal/domain/port/usecase"
)

// Deposit credits simulated cash to the user's balance. The amount is given in
// whole dollars; non-positive or non-numeric input is rejected.
func (s *Service) Deposit(ctx context.Context, username, cash string) (*usecase.TradeResult, error) {
	amount, err := entity.ParseCashAmount(cash)
	if err != nil {
		return nil, err
	}

	var result *usecase.TradeResult
	err = s.withTransaction(ctx, func(txCtx context.Context) error {
		users := s.uow.Users(txCtx)
		history := s.uow.History(txCtx)

		user, err := users.GetByUsernameForUpdate(txCtx, username)
		if err != nil {
			return err
		}

		if err := history.Append(txCtx, entity.NewDepositRecord(username, amount, s.tp)); err != nil {
			return err
		}

		newCash := user.Cash() + amount
		if err := users.UpdateCash(txCtx, username, newCash); err != nil {
			return err
		}

		result = &usecase.TradeResult{
			Action:       entity.ActionDeposited,
			Symbol:       entity.SymbolNone,
			Shares:       0,
			PriceInCents: 0,
			TotalInCents: amount,
			CashInCents:  newCash,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cash deposited", map[string]any{
		"username": username,
		"amount":   entity.AmountInCentsToString(result.TotalInCents),
		"cash":     entity.AmountInCentsToString(result.CashInCents),
	})

	return result, nil
}
