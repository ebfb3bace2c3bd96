package request

import (
	"ecopoints/internal/domain/exchange"
)

type ExchangeRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

func (r *ExchangeRequest) ToDomain() (exchange.Quantity, error) {
	return exchange.NewQuantity(r.Quantity)
}

type ExchangeQuoteQuery struct {
	ProductID int    `form:"product_id" binding:"required"`
	Quantity  string `form:"quantity"`
}

func (q *ExchangeQuoteQuery) ToDomain() (exchange.Quantity, error) {
	return exchange.ParseQuantity(q.Quantity)
}
