package repository

import (
	"context"
	"time"

	"ecopoints/internal/infra"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/pkg/pgconv"
	"ecopoints/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.TryInsertIdempotencyKeyParams) (int64, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db pgquery.DBTX, arg pgquery.ClaimExpiredIdempotencyKeyParams) (int64, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateIdempotencyKeyCompletedParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db pgquery.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx pgquery.DBTX, claim shared.IdempotencyClaim, now time.Time) (bool, error) {
	params := pgquery.TryInsertIdempotencyKeyParams{
		Key:         claim.Key,
		UserID:      claim.UserID,
		Endpoint:    claim.Endpoint,
		RequestHash: claim.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(claim.ExpiresAt),
		CreatedAt:   pgconv.TimeToPgtype(now),
	}

	n, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx pgquery.DBTX, claim shared.IdempotencyClaim, now time.Time) (bool, error) {
	params := pgquery.ClaimExpiredIdempotencyKeyParams{
		Key:         claim.Key,
		UserID:      claim.UserID,
		Endpoint:    claim.Endpoint,
		RequestHash: claim.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(claim.ExpiresAt),
		Now:         pgconv.TimeToPgtype(now),
	}

	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx pgquery.DBTX, key, userID, resultID uuid.UUID, now time.Time) error {
	params := pgquery.UpdateIdempotencyKeyCompletedParams{
		Key:              key,
		UserID:           userID,
		ResultID:         pgconv.UUIDToPgtype(resultID),
		ResponseBodyHash: pgconv.StringToPgtype(resultID.String()),
		UpdatedAt:        pgconv.TimeToPgtype(now),
	}

	if err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx pgquery.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return count, nil
}
