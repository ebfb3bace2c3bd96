package readstore

import (
	"context"
	"time"

	"ecopoints/internal/infra"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/pkg/pgconv"
	"ecopoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type PointsReadQueries interface {
	GetUserEcoPoints(ctx context.Context, db pgquery.DBTX, userID uuid.UUID) (int64, error)
	GetLedgerSummary(ctx context.Context, db pgquery.DBTX, userID uuid.UUID) (pgquery.GetLedgerSummaryRow, error)
	ListPointsTransactionsFirstPage(ctx context.Context, db pgquery.DBTX, arg pgquery.ListPointsTransactionsFirstPageParams) ([]pgquery.EcopointsTransaction, error)
	ListPointsTransactionsKeyset(ctx context.Context, db pgquery.DBTX, arg pgquery.ListPointsTransactionsKeysetParams) ([]pgquery.EcopointsTransaction, error)
}

type PointsReadStore struct {
	queries PointsReadQueries
	db      pgquery.DBTX
}

func NewPointsReadStore(queries PointsReadQueries, db pgquery.DBTX) *PointsReadStore {
	return &PointsReadStore{queries: queries, db: db}
}

// Balance goes through get_user_ecopoints so every reader shares one definition of the sum.
func (r *PointsReadStore) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	balance, err := r.queries.GetUserEcoPoints(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get user ecopoints", err)
	}
	return balance, nil
}

func (r *PointsReadStore) Summary(ctx context.Context, userID uuid.UUID) (*queries.BalanceView, error) {
	row, err := r.queries.GetLedgerSummary(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get ledger summary", err)
	}
	return &queries.BalanceView{
		UserID:           userID,
		Balance:          row.Balance,
		TotalEarned:      row.TotalEarned,
		TotalSpent:       row.TotalSpent,
		TransactionCount: row.TransactionCount,
	}, nil
}

func (r *PointsReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListPointsTransactionsFirstPage(ctx, r.db, pgquery.ListPointsTransactionsFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list points transactions first page", err)
	}
	return mapRows[queries.TransactionView](rows, "points transaction")
}

func (r *PointsReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListPointsTransactionsKeyset(ctx, r.db, pgquery.ListPointsTransactionsKeysetParams{
		UserID:          userID,
		CursorCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		CursorID:        lastID,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list points transactions keyset", err)
	}
	return mapRows[queries.TransactionView](rows, "points transaction")
}
