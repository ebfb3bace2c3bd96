package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, user_id, product_id, product_name, quantity, points_spent, created_at`

func scanOrder(row interface{ Scan(...any) error }, o *ProductOrder) error {
	return row.Scan(
		&o.ID,
		&o.UserID,
		&o.ProductID,
		&o.ProductName,
		&o.Quantity,
		&o.PointsSpent,
		&o.CreatedAt,
	)
}

func collectOrders(rows pgx.Rows) ([]ProductOrder, error) {
	defer rows.Close()
	var items []ProductOrder
	for rows.Next() {
		var o ProductOrder
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const createProductOrder = `-- name: CreateProductOrder :exec
INSERT INTO product_orders (id, user_id, product_id, product_name, quantity, points_spent, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type CreateProductOrderParams struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProductID   int32
	ProductName string
	Quantity    int32
	PointsSpent int64
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateProductOrder(ctx context.Context, db DBTX, arg CreateProductOrderParams) error {
	_, err := db.Exec(ctx, createProductOrder,
		arg.ID,
		arg.UserID,
		arg.ProductID,
		arg.ProductName,
		arg.Quantity,
		arg.PointsSpent,
		arg.CreatedAt,
	)
	return err
}

const getProductOrder = `-- name: GetProductOrder :one
SELECT ` + orderColumns + ` FROM product_orders WHERE id = $1 AND user_id = $2`

type GetProductOrderParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) GetProductOrder(ctx context.Context, db DBTX, arg GetProductOrderParams) (ProductOrder, error) {
	var o ProductOrder
	err := scanOrder(db.QueryRow(ctx, getProductOrder, arg.ID, arg.UserID), &o)
	return o, err
}

const listProductOrdersFirstPage = `-- name: ListProductOrdersFirstPage :many
SELECT ` + orderColumns + ` FROM product_orders
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

type ListProductOrdersFirstPageParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) ListProductOrdersFirstPage(ctx context.Context, db DBTX, arg ListProductOrdersFirstPageParams) ([]ProductOrder, error) {
	rows, err := db.Query(ctx, listProductOrdersFirstPage, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

const listProductOrdersKeyset = `-- name: ListProductOrdersKeyset :many
SELECT ` + orderColumns + ` FROM product_orders
WHERE user_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

type ListProductOrdersKeysetParams struct {
	UserID          uuid.UUID
	CursorCreatedAt pgtype.Timestamptz
	CursorID        uuid.UUID
	Limit           int32
}

func (q *Queries) ListProductOrdersKeyset(ctx context.Context, db DBTX, arg ListProductOrdersKeysetParams) ([]ProductOrder, error) {
	rows, err := db.Query(ctx, listProductOrdersKeyset, arg.UserID, arg.CursorCreatedAt, arg.CursorID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}
