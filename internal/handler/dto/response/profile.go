package response

import (
	"time"

	"ecopoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type PreferencesResponse struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

type ProfileResponse struct {
	UserID      uuid.UUID           `json:"user_id"`
	FullName    string              `json:"full_name"`
	Phone       string              `json:"phone"`
	Address     *string             `json:"address"`
	Gender      *string             `json:"gender"`
	Preferences PreferencesResponse `json:"preferences"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromProfileView(v *queries.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		UserID:   v.ID,
		FullName: v.FullName,
		Phone:    v.Phone,
		Address:  v.Address,
		Gender:   v.Gender,
		Preferences: PreferencesResponse{
			Theme:    v.Theme,
			Language: v.Language,
		},
		UpdatedAt: v.UpdatedAt,
	}
}
