package exchange

import "ecopoints/internal/domain/catalog"

type Quote struct {
	Product    catalog.Product
	UnitPrice  int64
	Quantity   Quantity
	Total      int64
	Balance    int64
	Sufficient bool
	Shortfall  int64
	Remaining  int64
}

func NewQuote(p catalog.Product, q Quantity, balance int64) Quote {
	total := p.Points * int64(q.Int())
	quote := Quote{
		Product:    p,
		UnitPrice:  p.Points,
		Quantity:   q,
		Total:      total,
		Balance:    balance,
		Sufficient: balance >= total,
	}
	if quote.Sufficient {
		quote.Remaining = balance - total
	} else {
		quote.Shortfall = total - balance
	}
	return quote
}
