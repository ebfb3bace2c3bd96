package waste

import "math"

// RewardCalculator turns a pickup's category and weight into EcoPoints.
type RewardCalculator interface {
	Reward(c Category, w Weight) int64
	Multiplier(c Category) int64
}

const defaultMultiplier int64 = 10

// MultiplierTable applies floor(weight * multiplier). Categories without an
// explicit rate (glass, mixed) use the fallback.
type MultiplierTable struct {
	rates    map[Category]int64
	fallback int64
}

func NewMultiplierTable(rates map[Category]int64, fallback int64) *MultiplierTable {
	copied := make(map[Category]int64, len(rates))
	for c, r := range rates {
		copied[c] = r
	}
	return &MultiplierTable{rates: copied, fallback: fallback}
}

func NewDefaultMultiplierTable() *MultiplierTable {
	return NewMultiplierTable(map[Category]int64{
		CategoryMetal:   15,
		CategoryPlastic: 10,
		CategoryPaper:   8,
	}, defaultMultiplier)
}

func (t *MultiplierTable) Multiplier(c Category) int64 {
	if r, ok := t.rates[c]; ok {
		return r
	}
	return t.fallback
}

func (t *MultiplierTable) Reward(c Category, w Weight) int64 {
	return int64(math.Floor(w.Kilograms() * float64(t.Multiplier(c))))
}
