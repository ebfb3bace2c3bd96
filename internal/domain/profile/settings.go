package profile

import "ecopoints/internal/pkg/patch"

// SettingsInput is a raw settings update. Nil or empty fields mean "leave unchanged".
type SettingsInput struct {
	Address  *string
	Gender   *string
	Theme    *string
	Language *string
}

type Settings struct {
	Address  *Address
	Gender   *Gender
	Theme    *Theme
	Language *Language
}

func (s Settings) IsEmpty() bool {
	return s.Address == nil && s.Gender == nil && s.Theme == nil && s.Language == nil
}

// ParseSettings validates address, gender, theme and language in that order.
func ParseSettings(in SettingsInput) (Settings, error) {
	var s Settings

	if v := patch.NonEmpty(in.Address); v != nil {
		a, err := NewAddress(*v)
		if err != nil {
			return Settings{}, err
		}
		s.Address = &a
	}
	if v := patch.NonEmpty(in.Gender); v != nil {
		g, err := NewGender(*v)
		if err != nil {
			return Settings{}, err
		}
		s.Gender = &g
	}
	if v := patch.NonEmpty(in.Theme); v != nil {
		t, err := NewTheme(*v)
		if err != nil {
			return Settings{}, err
		}
		s.Theme = &t
	}
	if v := patch.NonEmpty(in.Language); v != nil {
		l, err := NewLanguage(*v)
		if err != nil {
			return Settings{}, err
		}
		s.Language = &l
	}

	return s, nil
}
