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

type PickupReadQueries interface {
	GetPickupRequest(ctx context.Context, db pgquery.DBTX, arg pgquery.GetPickupRequestParams) (pgquery.PickupRequest, error)
	ListPickupRequestsFirstPage(ctx context.Context, db pgquery.DBTX, arg pgquery.ListPickupRequestsFirstPageParams) ([]pgquery.PickupRequest, error)
	ListPickupRequestsKeyset(ctx context.Context, db pgquery.DBTX, arg pgquery.ListPickupRequestsKeysetParams) ([]pgquery.PickupRequest, error)
}

type PickupReadStore struct {
	queries PickupReadQueries
	db      pgquery.DBTX
}

func NewPickupReadStore(queries PickupReadQueries, db pgquery.DBTX) *PickupReadStore {
	return &PickupReadStore{queries: queries, db: db}
}

func (r *PickupReadStore) FindByID(ctx context.Context, userID, id uuid.UUID) (*queries.PickupView, error) {
	row, err := r.queries.GetPickupRequest(ctx, r.db, pgquery.GetPickupRequestParams{ID: id, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pickup request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pickup request", err)
	}

	view, err := converter.CopyRow[queries.PickupView](row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map pickup request row", err)
	}
	return view, nil
}

func (r *PickupReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.PickupView, error) {
	rows, err := r.queries.ListPickupRequestsFirstPage(ctx, r.db, pgquery.ListPickupRequestsFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pickup requests first page", err)
	}
	return mapRows[queries.PickupView](rows, "pickup request")
}

func (r *PickupReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PickupView, error) {
	rows, err := r.queries.ListPickupRequestsKeyset(ctx, r.db, pgquery.ListPickupRequestsKeysetParams{
		UserID:          userID,
		CursorCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		CursorID:        lastID,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pickup requests keyset", err)
	}
	return mapRows[queries.PickupView](rows, "pickup request")
}

func mapRows[T any, R any](rows []R, what string) ([]*T, error) {
	views, err := converter.CopyRows[T](rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map "+what+" rows", err)
	}
	return views, nil
}
