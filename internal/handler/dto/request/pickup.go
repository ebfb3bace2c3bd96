package request

import (
	"ecopoints/internal/domain/pickup"
	"ecopoints/internal/pkg/patch"
)

// SchedulePickupRequest carries no points field. Rewards are always computed
// server-side and unknown JSON fields are rejected by the decoder.
type SchedulePickupRequest struct {
	Address         string   `json:"address"`
	WasteType       string   `json:"waste_type"`
	EstimatedWeight *float64 `json:"estimated_weight"`
	PreferredDate   string   `json:"preferred_date"`
}

func (r *SchedulePickupRequest) ToForm() pickup.Form {
	return pickup.Form{
		Address:         r.Address,
		WasteType:       r.WasteType,
		EstimatedWeight: patch.Coalesce(r.EstimatedWeight, 0),
		PreferredDate:   r.PreferredDate,
	}
}

func (r *SchedulePickupRequest) ToDomain() (pickup.Details, error) {
	return pickup.ParseForm(r.ToForm())
}

type RewardQuoteQuery struct {
	WasteType string  `form:"waste_type"`
	Weight    float64 `form:"weight"`
}
