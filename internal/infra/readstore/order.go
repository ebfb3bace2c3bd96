package readstore

import (
	"context"
	"time"

	"ecopoints/internal/infra"
	"ecopoints/internal/infra/converter"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/pkg/pgconv"
	"ecopoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	GetProductOrder(ctx context.Context, db pgquery.DBTX, arg pgquery.GetProductOrderParams) (pgquery.ProductOrder, error)
	ListProductOrdersFirstPage(ctx context.Context, db pgquery.DBTX, arg pgquery.ListProductOrdersFirstPageParams) ([]pgquery.ProductOrder, error)
	ListProductOrdersKeyset(ctx context.Context, db pgquery.DBTX, arg pgquery.ListProductOrdersKeysetParams) ([]pgquery.ProductOrder, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      pgquery.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db pgquery.DBTX) *OrderReadStore {
	return &OrderReadStore{queries: queries, db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, userID, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetProductOrder(ctx, r.db, pgquery.GetProductOrderParams{ID: id, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product order", err)
	}

	view, err := converter.CopyRow[queries.OrderView](row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map product order row", err)
	}
	return view, nil
}

func (r *OrderReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListProductOrdersFirstPage(ctx, r.db, pgquery.ListProductOrdersFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product orders first page", err)
	}
	return mapRows[queries.OrderView](rows, "product order")
}

func (r *OrderReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListProductOrdersKeyset(ctx, r.db, pgquery.ListProductOrdersKeysetParams{
		UserID:          userID,
		CursorCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		CursorID:        lastID,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product orders keyset", err)
	}
	return mapRows[queries.OrderView](rows, "product order")
}
