package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const pickupColumns = `id, user_id, address, waste_type, estimated_weight, preferred_date, points_awarded, created_at`

func scanPickup(row interface{ Scan(...any) error }, p *PickupRequest) error {
	return row.Scan(
		&p.ID,
		&p.UserID,
		&p.Address,
		&p.WasteType,
		&p.EstimatedWeight,
		&p.PreferredDate,
		&p.PointsAwarded,
		&p.CreatedAt,
	)
}

func collectPickups(rows pgx.Rows) ([]PickupRequest, error) {
	defer rows.Close()
	var items []PickupRequest
	for rows.Next() {
		var p PickupRequest
		if err := scanPickup(rows, &p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const createPickupRequest = `-- name: CreatePickupRequest :exec
INSERT INTO pickup_requests (id, user_id, address, waste_type, estimated_weight, preferred_date, points_awarded, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type CreatePickupRequestParams struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Address         string
	WasteType       string
	EstimatedWeight float64
	PreferredDate   pgtype.Date
	PointsAwarded   int64
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) CreatePickupRequest(ctx context.Context, db DBTX, arg CreatePickupRequestParams) error {
	_, err := db.Exec(ctx, createPickupRequest,
		arg.ID,
		arg.UserID,
		arg.Address,
		arg.WasteType,
		arg.EstimatedWeight,
		arg.PreferredDate,
		arg.PointsAwarded,
		arg.CreatedAt,
	)
	return err
}

const getPickupRequest = `-- name: GetPickupRequest :one
SELECT ` + pickupColumns + ` FROM pickup_requests WHERE id = $1 AND user_id = $2`

type GetPickupRequestParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) GetPickupRequest(ctx context.Context, db DBTX, arg GetPickupRequestParams) (PickupRequest, error) {
	var p PickupRequest
	err := scanPickup(db.QueryRow(ctx, getPickupRequest, arg.ID, arg.UserID), &p)
	return p, err
}

const listPickupRequestsFirstPage = `-- name: ListPickupRequestsFirstPage :many
SELECT ` + pickupColumns + ` FROM pickup_requests
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

type ListPickupRequestsFirstPageParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) ListPickupRequestsFirstPage(ctx context.Context, db DBTX, arg ListPickupRequestsFirstPageParams) ([]PickupRequest, error) {
	rows, err := db.Query(ctx, listPickupRequestsFirstPage, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectPickups(rows)
}

const listPickupRequestsKeyset = `-- name: ListPickupRequestsKeyset :many
SELECT ` + pickupColumns + ` FROM pickup_requests
WHERE user_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

type ListPickupRequestsKeysetParams struct {
	UserID          uuid.UUID
	CursorCreatedAt pgtype.Timestamptz
	CursorID        uuid.UUID
	Limit           int32
}

func (q *Queries) ListPickupRequestsKeyset(ctx context.Context, db DBTX, arg ListPickupRequestsKeysetParams) ([]PickupRequest, error) {
	rows, err := db.Query(ctx, listPickupRequestsKeyset, arg.UserID, arg.CursorCreatedAt, arg.CursorID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectPickups(rows)
}
