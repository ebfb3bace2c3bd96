package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView represents read-optimized user data with authorization info
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type PickupView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Address         string    `json:"address"`
	WasteType       string    `json:"waste_type"`
	EstimatedWeight float64   `json:"estimated_weight"`
	PreferredDate   string    `json:"preferred_date"`
	PointsAwarded   int64     `json:"points_awarded"`
	CreatedAt       time.Time `json:"created_at"`
}

type OrderView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	PointsSpent int64     `json:"points_spent"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionView is one signed ledger entry
type TransactionView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Amount          int64      `json:"amount"`
	TransactionType string     `json:"transaction_type"`
	Description     string     `json:"description"`
	PickupRequestID *uuid.UUID `json:"pickup_request_id,omitempty"`
	ProductOrderID  *uuid.UUID `json:"product_order_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type BalanceView struct {
	UserID           uuid.UUID `json:"user_id"`
	Balance          int64     `json:"balance"`
	TotalEarned      int64     `json:"total_earned"`
	TotalSpent       int64     `json:"total_spent"`
	TransactionCount int64     `json:"transaction_count"`
}

type ProfileView struct {
	ID        uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Theme     string    `json:"theme"`
	Language  string    `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductView struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Points        int64   `json:"points"`
	OriginalPrice string  `json:"original_price"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image,omitempty"`
}

// RewardQuoteView is a side-effect free preview of a pickup reward
type RewardQuoteView struct {
	WasteType  string  `json:"waste_type"`
	Weight     float64 `json:"weight"`
	Multiplier int64   `json:"multiplier"`
	Points     int64   `json:"points"`
}

// ExchangeQuoteView is a side-effect free preview of a redemption
type ExchangeQuoteView struct {
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

// IdempotencyKeyView represents read-optimized idempotency key data
type IdempotencyKeyView struct {
	Key              uuid.UUID  `json:"key"`
	UserID           uuid.UUID  `json:"user_id"`
	Endpoint         string     `json:"endpoint"`
	RequestHash      string     `json:"request_hash"`
	ResponseBodyHash *string    `json:"response_body_hash,omitempty"`
	Status           string     `json:"status"`
	ResultID         *uuid.UUID `json:"result_id,omitempty"`
	ExpiresAt        time.Time  `json:"expires_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
