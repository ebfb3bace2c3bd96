package readstore

import (
	"context"

	"github.com/google/uuid"

	"ecopoints/internal/infra"
	"ecopoints/internal/infra/converter"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/pkg/pgconv"
	"ecopoints/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.User, error)
	FindUserByEmail(ctx context.Context, db pgquery.DBTX, email string) (pgquery.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgquery.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgquery.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view, err := converter.CopyRow[queries.UserView](row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map user row", err)
	}
	return view, nil
}

// FindByEmail also returns the password hash, which never leaves the auth flow.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view, err := converter.CopyRow[queries.UserView](row)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to map user row", err)
	}
	return view, row.PasswordHash, nil
}
