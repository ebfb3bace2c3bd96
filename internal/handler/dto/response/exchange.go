package response

import (
	"time"

	"ecopoints/internal/usecase/commands"
	"ecopoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	PointsSpent int64     `json:"points_spent"`
	CreatedAt   time.Time `json:"created_at"`
}

type ExchangeResponse struct {
	Order        *OrderResponse `json:"order"`
	LedgerAmount int64          `json:"ledger_amount"`
	Balance      int64          `json:"balance"`
	Replayed     bool           `json:"replayed"`
}

type ExchangeQuoteResponse struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Total       int64  `json:"total"`
	Balance     int64  `json:"balance"`
	Sufficient  bool   `json:"sufficient"`
	Shortfall   int64  `json:"shortfall"`
	Remaining   int64  `json:"remaining"`
}

// InsufficientPointsDetail is the 422 detail for a redemption the balance cannot cover.
type InsufficientPointsDetail struct {
	Required  int64 `json:"required"`
	Available int64 `json:"available"`
	Shortfall int64 `json:"shortfall"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:          v.ID,
		ProductID:   v.ProductID,
		ProductName: v.ProductName,
		Quantity:    v.Quantity,
		PointsSpent: v.PointsSpent,
		CreatedAt:   v.CreatedAt,
	}
}

func FromExchangeResult(r *commands.ExchangeResult) *ExchangeResponse {
	return &ExchangeResponse{
		Order:        FromOrderView(r.Order),
		LedgerAmount: r.LedgerAmount,
		Balance:      r.Balance,
		Replayed:     r.IsReplayed,
	}
}

func FromExchangeQuote(v *queries.ExchangeQuoteView) *ExchangeQuoteResponse {
	return &ExchangeQuoteResponse{
		ProductID:   v.ProductID,
		ProductName: v.ProductName,
		UnitPrice:   v.UnitPrice,
		Quantity:    v.Quantity,
		Total:       v.Total,
		Balance:     v.Balance,
		Sufficient:  v.Sufficient,
		Shortfall:   v.Shortfall,
		Remaining:   v.Remaining,
	}
}
