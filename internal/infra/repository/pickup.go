package repository

import (
	"context"

	"ecopoints/internal/domain/pickup"
	"ecopoints/internal/infra"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/infra/repository/converter"
)

type PickupWriteQueries interface {
	CreatePickupRequest(ctx context.Context, db pgquery.DBTX, arg pgquery.CreatePickupRequestParams) error
}

type PickupRepository struct {
	queries PickupWriteQueries
}

func NewPickupRepository(queries PickupWriteQueries) *PickupRepository {
	return &PickupRepository{queries: queries}
}

func (r *PickupRepository) Create(ctx context.Context, tx pgquery.DBTX, req *pickup.Request) error {
	if err := r.queries.CreatePickupRequest(ctx, tx, converter.PickupToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create pickup request", err)
	}
	return nil
}
