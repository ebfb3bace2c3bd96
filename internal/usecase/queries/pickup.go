package queries

import (
	"context"
	"time"

	"ecopoints/internal/domain/waste"
	"ecopoints/internal/infra"
	"ecopoints/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPickupNotFound = errs.New("pickup request not found")

type PickupReadStore interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*PickupView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*PickupView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PickupView, error)
}

type PickupQueries interface {
	GetPickup(ctx context.Context, userID, id uuid.UUID) (*PickupView, error)
	ListPickups(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*PickupView, *Cursor, error)
	QuoteReward(ctx context.Context, wasteType string, weight float64) (*RewardQuoteView, error)
}

type pickupQueriesImpl struct {
	repo       PickupReadStore
	calculator waste.RewardCalculator
}

func NewPickupQueries(repo PickupReadStore, calculator waste.RewardCalculator) PickupQueries {
	return &pickupQueriesImpl{repo: repo, calculator: calculator}
}

// GetPickup only returns requests owned by userID; anything else reads as not found.
func (q *pickupQueriesImpl) GetPickup(ctx context.Context, userID, id uuid.UUID) (*PickupView, error) {
	v, err := q.repo.FindByID(ctx, userID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPickupNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *pickupQueriesImpl) ListPickups(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*PickupView, *Cursor, error) {
	return paginate(cursor, limit, pageFetcher[PickupView]{
		first: func(n int32) ([]*PickupView, error) {
			return q.repo.FindByUserFirstPage(ctx, userID, n)
		},
		after: func(createdAt time.Time, id uuid.UUID, n int32) ([]*PickupView, error) {
			return q.repo.FindByUserKeyset(ctx, userID, createdAt, id, n)
		},
		keyset: func(v *PickupView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID },
	})
}

func (q *pickupQueriesImpl) QuoteReward(_ context.Context, wasteType string, weight float64) (*RewardQuoteView, error) {
	category, err := waste.NewCategory(wasteType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	w, err := waste.NewWeight(weight)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return &RewardQuoteView{
		WasteType:  category.String(),
		Weight:     w.Kilograms(),
		Multiplier: q.calculator.Multiplier(category),
		Points:     q.calculator.Reward(category, w),
	}, nil
}
