package queries

import (
	"context"
	"time"

	"ecopoints/internal/infra"
	"ecopoints/internal/pkg/errs"

	"github.com/google/uuid"
)

type PointsReadStore interface {
	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
	Summary(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*TransactionView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*TransactionView, error)
}

type PointsQueries interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
	GetUserBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error)
}

type pointsQueriesImpl struct {
	repo  PointsReadStore
	users UserReadStore
}

func NewPointsQueries(repo PointsReadStore, users UserReadStore) PointsQueries {
	return &pointsQueriesImpl{repo: repo, users: users}
}

func (q *pointsQueriesImpl) GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	return q.repo.Summary(ctx, userID)
}

// GetUserBalance is the staff lookup; unlike GetBalance it reports unknown users.
func (q *pointsQueriesImpl) GetUserBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}
	return q.repo.Summary(ctx, userID)
}

func (q *pointsQueriesImpl) ListTransactions(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	return paginate(cursor, limit, pageFetcher[TransactionView]{
		first: func(n int32) ([]*TransactionView, error) {
			return q.repo.FindByUserFirstPage(ctx, userID, n)
		},
		after: func(createdAt time.Time, id uuid.UUID, n int32) ([]*TransactionView, error) {
			return q.repo.FindByUserKeyset(ctx, userID, createdAt, id, n)
		},
		keyset: func(v *TransactionView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID },
	})
}
