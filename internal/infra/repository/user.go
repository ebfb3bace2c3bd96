package repository

import (
	"context"
	"time"

	"ecopoints/internal/domain/user"
	"ecopoints/internal/infra"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/infra/repository/converter"
	"ecopoints/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateUserParams) (pgquery.User, error)
	UpdateUserLastLogin(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateUserLastLoginParams) error
	LockUserForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (uuid.UUID, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx pgquery.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID, at time.Time) error {
	params := pgquery.UpdateUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	}
	if err := r.queries.UpdateUserLastLogin(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) LockForUpdate(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID) error {
	if _, err := r.queries.LockUserForUpdate(ctx, tx, userID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock user", err)
	}
	return nil
}
