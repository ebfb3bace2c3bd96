package request

import (
	"ecopoints/internal/domain/profile"
)

type UpdateProfileRequest struct {
	Address  *string `json:"address"`
	Gender   *string `json:"gender"`
	Theme    *string `json:"theme"`
	Language *string `json:"language"`
}

func (r *UpdateProfileRequest) ToDomain() (profile.Settings, error) {
	return profile.ParseSettings(profile.SettingsInput{
		Address:  r.Address,
		Gender:   r.Gender,
		Theme:    r.Theme,
		Language: r.Language,
	})
}
