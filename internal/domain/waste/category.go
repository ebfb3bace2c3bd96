package waste

import (
	"errors"
	"math"
)

var (
	ErrWasteTypeRequired = errors.New("Please select a waste type")
	ErrInvalidWasteType  = errors.New("Please select a valid waste type")
	ErrWeightTooLow      = errors.New("Weight must be at least 1 kg")
	ErrWeightTooHigh     = errors.New("Weight must be at most 1000 kg")
)

const (
	MinWeightKg = 1.0
	MaxWeightKg = 1000.0
)

type Category string

const (
	CategoryPlastic Category = "plastic"
	CategoryPaper   Category = "paper"
	CategoryMetal   Category = "metal"
	CategoryGlass   Category = "glass"
	CategoryMixed   Category = "mixed"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryPlastic, CategoryPaper, CategoryMetal, CategoryGlass, CategoryMixed:
		return true
	default:
		return false
	}
}

func Categories() []Category {
	return []Category{CategoryPlastic, CategoryPaper, CategoryMetal, CategoryGlass, CategoryMixed}
}

func NewCategory(s string) (Category, error) {
	if s == "" {
		return "", ErrWasteTypeRequired
	}
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidWasteType
	}
	return c, nil
}

// Weight is an estimated weight in kilograms.
type Weight struct {
	kg float64
}

func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg < MinWeightKg {
		return Weight{}, ErrWeightTooLow
	}
	if kg > MaxWeightKg {
		return Weight{}, ErrWeightTooHigh
	}
	return Weight{kg: kg}, nil
}

func (w Weight) Kilograms() float64 {
	return w.kg
}
