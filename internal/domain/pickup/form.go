package pickup

import "ecopoints/internal/domain/waste"

// Form is the raw pickup submission as typed by the user.
type Form struct {
	Address         string
	WasteType       string
	EstimatedWeight float64
	PreferredDate   string
}

// Details is a Form that passed validation.
type Details struct {
	Address       Address
	Category      waste.Category
	Weight        waste.Weight
	PreferredDate PreferredDate
}

// ParseForm checks address, waste type, weight and date in that order and
// reports the first violation.
func ParseForm(f Form) (Details, error) {
	addr, err := NewAddress(f.Address)
	if err != nil {
		return Details{}, err
	}
	category, err := waste.NewCategory(f.WasteType)
	if err != nil {
		return Details{}, err
	}
	weight, err := waste.NewWeight(f.EstimatedWeight)
	if err != nil {
		return Details{}, err
	}
	date, err := NewPreferredDate(f.PreferredDate)
	if err != nil {
		return Details{}, err
	}

	return Details{
		Address:       addr,
		Category:      category,
		Weight:        weight,
		PreferredDate: date,
	}, nil
}
