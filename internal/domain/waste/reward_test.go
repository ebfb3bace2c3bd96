//go:build unit

package waste_test

import (
	"math"
	"testing"

	"ecopoints/internal/domain/waste"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWeight(t *testing.T, kg float64) waste.Weight {
	t.Helper()
	w, err := waste.NewWeight(kg)
	require.NoError(t, err)
	return w
}

func TestReward(t *testing.T) {
	calc := waste.NewDefaultMultiplierTable()

	tests := []struct {
		name     string
		category waste.Category
		kg       float64
		want     int64
	}{
		{name: "metal 5kg", category: waste.CategoryMetal, kg: 5, want: 75},
		{name: "paper 5kg", category: waste.CategoryPaper, kg: 5, want: 40},
		{name: "plastic 5kg", category: waste.CategoryPlastic, kg: 5, want: 50},
		{name: "glass falls back to 10", category: waste.CategoryGlass, kg: 5, want: 50},
		{name: "mixed falls back to 10", category: waste.CategoryMixed, kg: 5, want: 50},
		{name: "floor of fractional weight", category: waste.CategoryPaper, kg: 2.7, want: 21},
		{name: "minimum weight", category: waste.CategoryMetal, kg: 1, want: 15},
		{name: "maximum weight", category: waste.CategoryMetal, kg: 1000, want: 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Reward(tt.category, mustWeight(t, tt.kg)))
		})
	}
}

func TestRewardMatchesFloorFormula(t *testing.T) {
	calc := waste.NewDefaultMultiplierTable()
	multipliers := map[waste.Category]float64{
		waste.CategoryMetal:   15,
		waste.CategoryPlastic: 10,
		waste.CategoryPaper:   8,
		waste.CategoryGlass:   10,
		waste.CategoryMixed:   10,
	}

	for _, c := range waste.Categories() {
		for kg := 1.0; kg <= 1000; kg += 7.3 {
			want := int64(math.Floor(kg * multipliers[c]))
			assert.Equal(t, want, calc.Reward(c, mustWeight(t, kg)), "category=%s kg=%v", c, kg)
		}
	}
}

func TestNewWeight(t *testing.T) {
	tests := []struct {
		name  string
		kg    float64
		errIs error
	}{
		{name: "lower bound", kg: 1},
		{name: "upper bound", kg: 1000},
		{name: "below lower bound", kg: 0.99, errIs: waste.ErrWeightTooLow},
		{name: "zero", kg: 0, errIs: waste.ErrWeightTooLow},
		{name: "negative", kg: -5, errIs: waste.ErrWeightTooLow},
		{name: "above upper bound", kg: 1000.01, errIs: waste.ErrWeightTooHigh},
		{name: "NaN", kg: math.NaN(), errIs: waste.ErrWeightTooLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := waste.NewWeight(tt.kg)
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewCategory(t *testing.T) {
	c, err := waste.NewCategory("metal")
	require.NoError(t, err)
	assert.Equal(t, waste.CategoryMetal, c)

	_, err = waste.NewCategory("")
	assert.ErrorIs(t, err, waste.ErrWasteTypeRequired)
	assert.Equal(t, "Please select a waste type", err.Error())

	_, err = waste.NewCategory("styrofoam")
	assert.ErrorIs(t, err, waste.ErrInvalidWasteType)
}

func TestCustomTable(t *testing.T) {
	calc := waste.NewMultiplierTable(map[waste.Category]int64{waste.CategoryGlass: 12}, 9)

	assert.Equal(t, int64(12), calc.Multiplier(waste.CategoryGlass))
	assert.Equal(t, int64(9), calc.Multiplier(waste.CategoryMetal))
}
