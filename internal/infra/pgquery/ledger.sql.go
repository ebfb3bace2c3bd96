package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const transactionColumns = `id, user_id, amount, transaction_type, description, pickup_request_id, product_order_id, created_at`

func scanTransaction(row interface{ Scan(...any) error }, t *EcopointsTransaction) error {
	return row.Scan(
		&t.ID,
		&t.UserID,
		&t.Amount,
		&t.TransactionType,
		&t.Description,
		&t.PickupRequestID,
		&t.ProductOrderID,
		&t.CreatedAt,
	)
}

func collectTransactions(rows pgx.Rows) ([]EcopointsTransaction, error) {
	defer rows.Close()
	var items []EcopointsTransaction
	for rows.Next() {
		var t EcopointsTransaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const createPointsTransaction = `-- name: CreatePointsTransaction :exec
INSERT INTO ecopoints_transactions (id, user_id, amount, transaction_type, description, pickup_request_id, product_order_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type CreatePointsTransactionParams struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Amount          int64
	TransactionType string
	Description     string
	PickupRequestID pgtype.UUID
	ProductOrderID  pgtype.UUID
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) CreatePointsTransaction(ctx context.Context, db DBTX, arg CreatePointsTransactionParams) error {
	_, err := db.Exec(ctx, createPointsTransaction,
		arg.ID,
		arg.UserID,
		arg.Amount,
		arg.TransactionType,
		arg.Description,
		arg.PickupRequestID,
		arg.ProductOrderID,
		arg.CreatedAt,
	)
	return err
}

const getUserEcoPoints = `-- name: GetUserEcoPoints :one
SELECT get_user_ecopoints($1)`

func (q *Queries) GetUserEcoPoints(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	var balance int64
	err := db.QueryRow(ctx, getUserEcoPoints, userID).Scan(&balance)
	return balance, err
}

const getLedgerSummary = `-- name: GetLedgerSummary :one
SELECT
    COALESCE(SUM(amount), 0)::BIGINT                                   AS balance,
    COALESCE(SUM(amount) FILTER (WHERE amount > 0), 0)::BIGINT         AS total_earned,
    COALESCE(-SUM(amount) FILTER (WHERE amount < 0), 0)::BIGINT        AS total_spent,
    COUNT(*)::BIGINT                                                   AS transaction_count
FROM ecopoints_transactions
WHERE user_id = $1`

type GetLedgerSummaryRow struct {
	Balance          int64
	TotalEarned      int64
	TotalSpent       int64
	TransactionCount int64
}

func (q *Queries) GetLedgerSummary(ctx context.Context, db DBTX, userID uuid.UUID) (GetLedgerSummaryRow, error) {
	var r GetLedgerSummaryRow
	err := db.QueryRow(ctx, getLedgerSummary, userID).Scan(
		&r.Balance,
		&r.TotalEarned,
		&r.TotalSpent,
		&r.TransactionCount,
	)
	return r, err
}

const listPointsTransactionsFirstPage = `-- name: ListPointsTransactionsFirstPage :many
SELECT ` + transactionColumns + ` FROM ecopoints_transactions
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

type ListPointsTransactionsFirstPageParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) ListPointsTransactionsFirstPage(ctx context.Context, db DBTX, arg ListPointsTransactionsFirstPageParams) ([]EcopointsTransaction, error) {
	rows, err := db.Query(ctx, listPointsTransactionsFirstPage, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectTransactions(rows)
}

const listPointsTransactionsKeyset = `-- name: ListPointsTransactionsKeyset :many
SELECT ` + transactionColumns + ` FROM ecopoints_transactions
WHERE user_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

type ListPointsTransactionsKeysetParams struct {
	UserID          uuid.UUID
	CursorCreatedAt pgtype.Timestamptz
	CursorID        uuid.UUID
	Limit           int32
}

func (q *Queries) ListPointsTransactionsKeyset(ctx context.Context, db DBTX, arg ListPointsTransactionsKeysetParams) ([]EcopointsTransaction, error) {
	rows, err := db.Query(ctx, listPointsTransactionsKeyset, arg.UserID, arg.CursorCreatedAt, arg.CursorID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectTransactions(rows)
}
