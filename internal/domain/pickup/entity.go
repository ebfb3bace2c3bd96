package pickup

import (
	"fmt"
	"strconv"
	"time"

	"ecopoints/internal/domain/waste"

	"github.com/google/uuid"
)

type Request struct {
	id            uuid.UUID
	userID        uuid.UUID
	address       Address
	category      waste.Category
	weight        waste.Weight
	preferredDate PreferredDate
	pointsAwarded int64
	createdAt     time.Time
}

// NewRequest prices the pickup with calc. Points never come from the caller.
func NewRequest(calc waste.RewardCalculator, userID uuid.UUID, d Details, now time.Time) *Request {
	return &Request{
		id:            uuid.New(),
		userID:        userID,
		address:       d.Address,
		category:      d.Category,
		weight:        d.Weight,
		preferredDate: d.PreferredDate,
		pointsAwarded: calc.Reward(d.Category, d.Weight),
		createdAt:     now,
	}
}

func (r *Request) ID() uuid.UUID                { return r.id }
func (r *Request) UserID() uuid.UUID            { return r.userID }
func (r *Request) Address() Address             { return r.address }
func (r *Request) Category() waste.Category     { return r.category }
func (r *Request) Weight() waste.Weight         { return r.weight }
func (r *Request) PreferredDate() PreferredDate { return r.preferredDate }
func (r *Request) PointsAwarded() int64         { return r.pointsAwarded }
func (r *Request) CreatedAt() time.Time         { return r.createdAt }

// Description is the ledger text for the points this pickup earns.
func (r *Request) Description() string {
	return fmt.Sprintf("Pickup scheduled - %s (%skg)",
		r.category, strconv.FormatFloat(r.weight.Kilograms(), 'f', -1, 64))
}
