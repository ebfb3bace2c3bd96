//go:build unit || e2e

package builder

import (
	reqdto "ecopoints/internal/handler/dto/request"
)

type PickupBuilder struct {
	Address         string
	WasteType       string
	EstimatedWeight float64
	PreferredDate   string
}

func NewPickupBuilder() *PickupBuilder {
	return &PickupBuilder{
		Address:         "Jl. Merdeka No. 10, Jakarta Pusat",
		WasteType:       "metal",
		EstimatedWeight: 5,
		PreferredDate:   "2025-03-01",
	}
}

func (p *PickupBuilder) With(mutate func(*PickupBuilder)) *PickupBuilder {
	mutate(p)
	return p
}

func (p *PickupBuilder) WithWasteType(t string) *PickupBuilder {
	p.WasteType = t
	return p
}

func (p *PickupBuilder) WithWeight(kg float64) *PickupBuilder {
	p.EstimatedWeight = kg
	return p
}

func (p *PickupBuilder) WithAddress(a string) *PickupBuilder {
	p.Address = a
	return p
}

func (p *PickupBuilder) BuildDTO() reqdto.SchedulePickupRequest {
	w := p.EstimatedWeight
	return reqdto.SchedulePickupRequest{
		Address:         p.Address,
		WasteType:       p.WasteType,
		EstimatedWeight: &w,
		PreferredDate:   p.PreferredDate,
	}
}
