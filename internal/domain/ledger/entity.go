package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one append-only ledger row. Amount is signed: earned > 0, spent < 0.
type Entry struct {
	id              uuid.UUID
	userID          uuid.UUID
	amount          int64
	kind            Kind
	description     string
	pickupRequestID *uuid.UUID
	productOrderID  *uuid.UUID
	createdAt       time.Time
}

func NewEarnedEntry(userID uuid.UUID, points int64, description string, pickupRequestID uuid.UUID, now time.Time) (*Entry, error) {
	if points <= 0 {
		return nil, ErrNonPositiveAmount
	}
	return &Entry{
		id:              uuid.New(),
		userID:          userID,
		amount:          points,
		kind:            KindEarned,
		description:     description,
		pickupRequestID: &pickupRequestID,
		createdAt:       now,
	}, nil
}

func NewSpentEntry(userID uuid.UUID, cost int64, description string, productOrderID uuid.UUID, now time.Time) (*Entry, error) {
	if cost <= 0 {
		return nil, ErrNonPositiveAmount
	}
	return &Entry{
		id:             uuid.New(),
		userID:         userID,
		amount:         -cost,
		kind:           KindSpent,
		description:    description,
		productOrderID: &productOrderID,
		createdAt:      now,
	}, nil
}

func (e *Entry) ID() uuid.UUID               { return e.id }
func (e *Entry) UserID() uuid.UUID           { return e.userID }
func (e *Entry) Amount() int64               { return e.amount }
func (e *Entry) Kind() Kind                  { return e.kind }
func (e *Entry) Description() string         { return e.description }
func (e *Entry) PickupRequestID() *uuid.UUID { return e.pickupRequestID }
func (e *Entry) ProductOrderID() *uuid.UUID  { return e.productOrderID }
func (e *Entry) CreatedAt() time.Time        { return e.createdAt }
