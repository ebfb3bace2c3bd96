package response

import (
	"time"

	"ecopoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type BalanceResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	Balance          int64     `json:"balance"`
	TotalEarned      int64     `json:"total_earned"`
	TotalSpent       int64     `json:"total_spent"`
	TransactionCount int64     `json:"transaction_count"`
}

type TransactionResponse struct {
	ID              uuid.UUID  `json:"id"`
	Amount          int64      `json:"amount"`
	TransactionType string     `json:"transaction_type"`
	Description     string     `json:"description"`
	PickupRequestID *uuid.UUID `json:"pickup_request_id,omitempty"`
	ProductOrderID  *uuid.UUID `json:"product_order_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		UserID:           v.UserID,
		Balance:          v.Balance,
		TotalEarned:      v.TotalEarned,
		TotalSpent:       v.TotalSpent,
		TransactionCount: v.TransactionCount,
	}
}

func FromTransactionView(v *queries.TransactionView) *TransactionResponse {
	return &TransactionResponse{
		ID:              v.ID,
		Amount:          v.Amount,
		TransactionType: v.TransactionType,
		Description:     v.Description,
		PickupRequestID: v.PickupRequestID,
		ProductOrderID:  v.ProductOrderID,
		CreatedAt:       v.CreatedAt,
	}
}
