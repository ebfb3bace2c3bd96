package repository

import (
	"context"
	"time"

	"ecopoints/internal/domain/profile"
	"ecopoints/internal/infra"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/infra/repository/converter"
	"ecopoints/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProfileWriteQueries interface {
	CreateProfile(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateProfileParams) error
	UpdateProfile(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateProfileParams) (pgquery.Profile, error)
}

type ProfileRepository struct {
	queries ProfileWriteQueries
}

func NewProfileRepository(queries ProfileWriteQueries) *ProfileRepository {
	return &ProfileRepository{queries: queries}
}

func (r *ProfileRepository) Create(ctx context.Context, tx pgquery.DBTX, p *profile.Profile) error {
	if err := r.queries.CreateProfile(ctx, tx, converter.ProfileToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create profile", err)
	}
	return nil
}

// UpdateSettings issues one UPDATE; unset fields bind NULL and keep the stored value.
func (r *ProfileRepository) UpdateSettings(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID, s profile.Settings, now time.Time) error {
	params := pgquery.UpdateProfileParams{
		ID:        userID,
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
	if s.Address != nil {
		params.Address = pgconv.StringToPgtype(s.Address.String())
	}
	if s.Gender != nil {
		params.Gender = pgconv.StringToPgtype(s.Gender.String())
	}
	if s.Theme != nil {
		params.Theme = pgtype.Text{String: string(*s.Theme), Valid: true}
	}
	if s.Language != nil {
		params.Language = pgtype.Text{String: string(*s.Language), Valid: true}
	}

	if _, err := r.queries.UpdateProfile(ctx, tx, params); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update profile", err)
	}
	return nil
}
