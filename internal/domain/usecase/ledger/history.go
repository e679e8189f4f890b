package ledger

import (
	"context"

	"github.com/dampdigits/stockplay/internal/domain/entity"
)

// History returns the user's ledger history in chronological order
func (s *Service) History(ctx context.Context, username string) ([]*entity.HistoryRecord, error) {
	return s.history.ListByUsername(ctx, username)
}
