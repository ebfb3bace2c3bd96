package repository

import (
	"context"

	"ecopoints/internal/domain/exchange"
	"ecopoints/internal/infra"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/infra/repository/converter"
)

type OrderWriteQueries interface {
	CreateProductOrder(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateProductOrderParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, tx pgquery.DBTX, o *exchange.Order) error {
	if err := r.queries.CreateProductOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create product order", err)
	}
	return nil
}
