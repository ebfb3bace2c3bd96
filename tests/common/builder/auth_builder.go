//go:build unit || e2e

package builder

import (
	reqdto "ecopoints/internal/handler/dto/request"
)

type AuthBuilder struct {
	FullName string
	Phone    string
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		FullName: "Budi Santoso",
		Phone:    "081234567890",
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(pw string) *AuthBuilder {
	a.Password = pw
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignUpDTO() reqdto.SignUpRequest {
	return reqdto.SignUpRequest{
		FullName: a.FullName,
		Phone:    a.Phone,
		Email:    a.Email,
		Password: a.Password,
	}
}
