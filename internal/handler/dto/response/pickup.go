package response

import (
	"time"

	"ecopoints/internal/usecase/commands"
	"ecopoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type PickupResponse struct {
	ID              uuid.UUID `json:"id"`
	Address         string    `json:"address"`
	WasteType       string    `json:"waste_type"`
	EstimatedWeight float64   `json:"estimated_weight"`
	PreferredDate   string    `json:"preferred_date"`
	PointsAwarded   int64     `json:"points_awarded"`
	CreatedAt       time.Time `json:"created_at"`
}

type SchedulePickupResponse struct {
	Pickup   *PickupResponse `json:"pickup"`
	Balance  int64           `json:"balance"`
	Replayed bool            `json:"replayed"`
}

type RewardQuoteResponse struct {
	WasteType  string  `json:"waste_type"`
	Weight     float64 `json:"weight"`
	Multiplier int64   `json:"multiplier"`
	Points     int64   `json:"points"`
}

func FromPickupView(v *queries.PickupView) *PickupResponse {
	return &PickupResponse{
		ID:              v.ID,
		Address:         v.Address,
		WasteType:       v.WasteType,
		EstimatedWeight: v.EstimatedWeight,
		PreferredDate:   v.PreferredDate,
		PointsAwarded:   v.PointsAwarded,
		CreatedAt:       v.CreatedAt,
	}
}

func FromSchedulePickupResult(r *commands.SchedulePickupResult) *SchedulePickupResponse {
	return &SchedulePickupResponse{
		Pickup:   FromPickupView(r.Pickup),
		Balance:  r.Balance,
		Replayed: r.IsReplayed,
	}
}

func FromRewardQuote(v *queries.RewardQuoteView) *RewardQuoteResponse {
	return &RewardQuoteResponse{
		WasteType:  v.WasteType,
		Weight:     v.Weight,
		Multiplier: v.Multiplier,
		Points:     v.Points,
	}
}
