package request

import (
	"ecopoints/internal/domain/user"
)

// Field rules live in the domain so the first violated rule's message is returned.
type SignUpRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignUpRequest) ToDomain() (user.Registration, error) {
	return user.NewRegistration(r.FullName, r.Phone, r.Email, r.Password)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
