package readstore

import (
	"context"

	"ecopoints/internal/infra"
	"ecopoints/internal/infra/converter"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/pkg/pgconv"
	"ecopoints/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.GetIdempotencyKeyParams) (pgquery.IdempotencyKey, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get returns the record even when it has expired; callers decide whether to reclaim it.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx pgquery.DBTX, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	params := pgquery.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record, err := converter.CopyRow[shared.IdempotencyRecord](row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map idempotency key row", err)
	}
	return record, nil
}
