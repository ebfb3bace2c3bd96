package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	Role         string
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Profile struct {
	ID        uuid.UUID
	FullName  string
	Phone     string
	Address   pgtype.Text
	Gender    pgtype.Text
	Theme     string
	Language  string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type PickupRequest struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Address         string
	WasteType       string
	EstimatedWeight float64
	PreferredDate   pgtype.Date
	PointsAwarded   int64
	CreatedAt       pgtype.Timestamptz
}

type ProductOrder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProductID   int32
	ProductName string
	Quantity    int32
	PointsSpent int64
	CreatedAt   pgtype.Timestamptz
}

type EcopointsTransaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Amount          int64
	TransactionType string
	Description     string
	PickupRequestID pgtype.UUID
	ProductOrderID  pgtype.UUID
	CreatedAt       pgtype.Timestamptz
}

type IdempotencyKey struct {
	Key              uuid.UUID
	UserID           uuid.UUID
	Endpoint         string
	RequestHash      string
	ResponseBodyHash pgtype.Text
	Status           string
	ResultID         pgtype.UUID
	ExpiresAt        pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
