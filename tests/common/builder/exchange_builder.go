//go:build unit || e2e

package builder

import (
	reqdto "ecopoints/internal/handler/dto/request"
)

type ExchangeBuilder struct {
	ProductID int
	Quantity  int
}

func NewExchangeBuilder() *ExchangeBuilder {
	return &ExchangeBuilder{ProductID: 1, Quantity: 1}
}

func (e *ExchangeBuilder) WithProduct(id int) *ExchangeBuilder {
	e.ProductID = id
	return e
}

func (e *ExchangeBuilder) WithQuantity(q int) *ExchangeBuilder {
	e.Quantity = q
	return e
}

func (e *ExchangeBuilder) BuildDTO() reqdto.ExchangeRequest {
	return reqdto.ExchangeRequest{
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
	}
}
