package queries

import (
	"context"

	"ecopoints/internal/infra"
	"ecopoints/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errs.New("profile not found")

type ProfileReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type ProfileQueries interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type profileQueriesImpl struct {
	repo ProfileReadStore
}

func NewProfileQueries(repo ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{repo: repo}
}

func (q *profileQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	v, err := q.repo.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProfileNotFound)
		}
		return nil, err
	}
	return v, nil
}
