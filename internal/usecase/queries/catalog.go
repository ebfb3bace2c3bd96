package queries

import (
	"context"

	"ecopoints/internal/domain/catalog"
	"ecopoints/internal/pkg/errs"
)

var ErrProductNotFound = errs.New("product not found")

type CatalogQueries interface {
	ListProducts(ctx context.Context) []*ProductView
	GetProduct(ctx context.Context, id int) (*ProductView, error)
}

type catalogQueriesImpl struct {
	catalog *catalog.Catalog
}

func NewCatalogQueries(c *catalog.Catalog) CatalogQueries {
	return &catalogQueriesImpl{catalog: c}
}

func (q *catalogQueriesImpl) ListProducts(_ context.Context) []*ProductView {
	products := q.catalog.Products()
	views := make([]*ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}

func (q *catalogQueriesImpl) GetProduct(_ context.Context, id int) (*ProductView, error) {
	p, err := q.catalog.Product(id)
	if err != nil {
		return nil, errs.Mark(err, ErrProductNotFound)
	}
	return toProductView(p), nil
}

func toProductView(p catalog.Product) *ProductView {
	return &ProductView{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Points:        p.Points,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Rating:        p.Rating,
		Image:         p.Image,
	}
}
