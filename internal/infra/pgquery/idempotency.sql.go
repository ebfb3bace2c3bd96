package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const idempotencyColumns = `key, user_id, endpoint, request_hash, response_body_hash, status, result_id, expires_at, created_at, updated_at`

func scanIdempotencyKey(row interface{ Scan(...any) error }, k *IdempotencyKey) error {
	return row.Scan(
		&k.Key,
		&k.UserID,
		&k.Endpoint,
		&k.RequestHash,
		&k.ResponseBodyHash,
		&k.Status,
		&k.ResultID,
		&k.ExpiresAt,
		&k.CreatedAt,
		&k.UpdatedAt,
	)
}

const tryInsertIdempotencyKey = `-- name: TryInsertIdempotencyKey :execrows
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, 'processing', $5, $6, $6)
ON CONFLICT (key, user_id) DO NOTHING`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
}

// TryInsertIdempotencyKey returns 0 when the key is already taken.
func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey,
		arg.Key,
		arg.UserID,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getIdempotencyKey = `-- name: GetIdempotencyKey :one
SELECT ` + idempotencyColumns + ` FROM idempotency_keys WHERE key = $1 AND user_id = $2`

type GetIdempotencyKeyParams struct {
	Key    uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKey, error) {
	var k IdempotencyKey
	err := scanIdempotencyKey(db.QueryRow(ctx, getIdempotencyKey, arg.Key, arg.UserID), &k)
	return k, err
}

const updateIdempotencyKeyCompleted = `-- name: UpdateIdempotencyKeyCompleted :exec
UPDATE idempotency_keys
SET status = 'completed', result_id = $3, response_body_hash = $4, updated_at = $5
WHERE key = $1 AND user_id = $2`

type UpdateIdempotencyKeyCompletedParams struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	ResultID         pgtype.UUID
	ResponseBodyHash pgtype.Text
	UpdatedAt        pgtype.Timestamptz
}

func (q *Queries) UpdateIdempotencyKeyCompleted(ctx context.Context, db DBTX, arg UpdateIdempotencyKeyCompletedParams) error {
	_, err := db.Exec(ctx, updateIdempotencyKeyCompleted,
		arg.Key,
		arg.UserID,
		arg.ResultID,
		arg.ResponseBodyHash,
		arg.UpdatedAt,
	)
	return err
}

const claimExpiredIdempotencyKey = `-- name: ClaimExpiredIdempotencyKey :execrows
UPDATE idempotency_keys
SET endpoint = $3, request_hash = $4, status = 'processing', result_id = NULL,
    response_body_hash = NULL, expires_at = $5, updated_at = $6
WHERE key = $1 AND user_id = $2 AND expires_at <= $6`

type ClaimExpiredIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
	Now         pgtype.Timestamptz
}

// ClaimExpiredIdempotencyKey reuses a key whose previous use has expired.
func (q *Queries) ClaimExpiredIdempotencyKey(ctx context.Context, db DBTX, arg ClaimExpiredIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, claimExpiredIdempotencyKey,
		arg.Key,
		arg.UserID,
		arg.Endpoint,
		arg.RequestHash,
		arg.ExpiresAt,
		arg.Now,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteExpiredIdempotencyKeys = `-- name: DeleteExpiredIdempotencyKeys :execrows
DELETE FROM idempotency_keys WHERE expires_at <= $1`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredIdempotencyKeys, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
