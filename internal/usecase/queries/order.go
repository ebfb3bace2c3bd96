package queries

import (
	"context"
	"time"

	"ecopoints/internal/domain/catalog"
	"ecopoints/internal/domain/exchange"
	"ecopoints/internal/infra"
	"ecopoints/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("product order not found")

type OrderReadStore interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*OrderView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*OrderView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderView, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, userID, id uuid.UUID) (*OrderView, error)
	ListOrders(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
	QuoteExchange(ctx context.Context, userID uuid.UUID, productID int, quantity exchange.Quantity) (*ExchangeQuoteView, error)
}

type orderQueriesImpl struct {
	repo    OrderReadStore
	points  PointsReadStore
	catalog *catalog.Catalog
}

func NewOrderQueries(repo OrderReadStore, points PointsReadStore, c *catalog.Catalog) OrderQueries {
	return &orderQueriesImpl{repo: repo, points: points, catalog: c}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, userID, id uuid.UUID) (*OrderView, error) {
	v, err := q.repo.FindByID(ctx, userID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	return paginate(cursor, limit, pageFetcher[OrderView]{
		first: func(n int32) ([]*OrderView, error) {
			return q.repo.FindByUserFirstPage(ctx, userID, n)
		},
		after: func(createdAt time.Time, id uuid.UUID, n int32) ([]*OrderView, error) {
			return q.repo.FindByUserKeyset(ctx, userID, createdAt, id, n)
		},
		keyset: func(v *OrderView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID },
	})
}

// QuoteExchange previews a redemption against the current balance without writing anything.
func (q *orderQueriesImpl) QuoteExchange(ctx context.Context, userID uuid.UUID, productID int, quantity exchange.Quantity) (*ExchangeQuoteView, error) {
	product, err := q.catalog.Product(productID)
	if err != nil {
		return nil, errs.Mark(err, ErrProductNotFound)
	}

	balance, err := q.points.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	quote := exchange.NewQuote(product, quantity, balance)
	return &ExchangeQuoteView{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   quote.UnitPrice,
		Quantity:    quote.Quantity.Int(),
		Total:       quote.Total,
		Balance:     quote.Balance,
		Sufficient:  quote.Sufficient,
		Shortfall:   quote.Shortfall,
		Remaining:   quote.Remaining,
	}, nil
}
