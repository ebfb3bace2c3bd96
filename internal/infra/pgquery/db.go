// Package pgquery holds the hand-written SQL for every table, shaped after
// sqlc output: one method per statement taking an explicit DBTX so the same
// query runs on the pool or inside a transaction.
package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
