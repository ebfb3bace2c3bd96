package readstore

import (
	"context"

	"ecopoints/internal/infra"
	"ecopoints/internal/infra/converter"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/pkg/pgconv"
	"ecopoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileReadQueries interface {
	GetProfile(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Profile, error)
}

type ProfileReadStore struct {
	queries ProfileReadQueries
	db      pgquery.DBTX
}

func NewProfileReadStore(queries ProfileReadQueries, db pgquery.DBTX) *ProfileReadStore {
	return &ProfileReadStore{queries: queries, db: db}
}

func (r *ProfileReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.ProfileView, error) {
	row, err := r.queries.GetProfile(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get profile", err)
	}

	view, err := converter.CopyRow[queries.ProfileView](row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map profile row", err)
	}
	return view, nil
}
