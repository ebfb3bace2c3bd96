package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrDuplicateProduct = errors.New("duplicate product id")
)

type Product struct {
	ID            int
	Name          string
	Description   string
	Points        int64
	OriginalPrice string
	Category      string
	Rating        float64
	Image         string
}

func (p Product) validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: id %d must be positive", ErrInvalidProduct, p.ID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product %d has no name", ErrInvalidProduct, p.ID)
	}
	if p.Points <= 0 {
		return fmt.Errorf("%w: product %d must cost at least 1 point", ErrInvalidProduct, p.ID)
	}
	return nil
}

// Catalog is an immutable product list, in display order.
type Catalog struct {
	products []Product
	byID     map[int]int
}

func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProduct, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Product(id int) (Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return c.products[idx], nil
}

func (c *Catalog) Len() int { return len(c.products) }

func DefaultProducts() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "Lettuce Starter Kit",
			Description:   "Complete hydroponic system for growing fresh lettuce at home",
			Points:        50,
			OriginalPrice: "Rp 250,000",
			Category:      "Starter Kit",
			Rating:        4.9,
			Image:         "🥬",
		},
		{
			ID:            2,
			Name:          "Tomato Growing System",
			Description:   "Advanced setup for cherry tomatoes with automated watering",
			Points:        120,
			OriginalPrice: "Rp 600,000",
			Category:      "Advanced",
			Rating:        4.8,
			Image:         "🍅",
		},
		{
			ID:            3,
			Name:          "Herb Garden Collection",
			Description:   "Basil, cilantro, and mint in compact hydroponic containers",
			Points:        35,
			OriginalPrice: "Rp 175,000",
			Category:      "Herbs",
			Rating:        5.0,
			Image:         "🌿",
		},
		{
			ID:            4,
			Name:          "Nutrient Solution Pack",
			Description:   "Organic liquid fertilizer for 6 months of hydroponic growing",
			Points:        25,
			OriginalPrice: "Rp 125,000",
			Category:      "Supplies",
			Rating:        4.7,
			Image:         "🧪",
		},
	}
}

func Default() *Catalog {
	c, err := New(DefaultProducts())
	if err != nil {
		panic(err)
	}
	return c
}
