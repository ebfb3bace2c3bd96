package repository

import (
	"context"

	"ecopoints/internal/domain/ledger"
	"ecopoints/internal/infra"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type LedgerWriteQueries interface {
	CreatePointsTransaction(ctx context.Context, db pgquery.DBTX, arg pgquery.CreatePointsTransactionParams) error
	GetUserEcoPoints(ctx context.Context, db pgquery.DBTX, userID uuid.UUID) (int64, error)
}

// LedgerRepository only appends. There is no update or delete path.
type LedgerRepository struct {
	queries LedgerWriteQueries
}

func NewLedgerRepository(queries LedgerWriteQueries) *LedgerRepository {
	return &LedgerRepository{queries: queries}
}

func (r *LedgerRepository) Append(ctx context.Context, tx pgquery.DBTX, e *ledger.Entry) error {
	if err := r.queries.CreatePointsTransaction(ctx, tx, converter.EntryToCreateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to append ledger entry", err)
	}
	return nil
}

// BalanceOf reads through tx so a caller holding the user lock sees its own writes.
func (r *LedgerRepository) BalanceOf(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID) (int64, error) {
	balance, err := r.queries.GetUserEcoPoints(ctx, tx, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read balance", err)
	}
	return balance, nil
}
