package usecase

import (
	"ecopoints/internal/domain/user"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrNotAccessToken = errs.New("refresh token used as access token")

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

// CanAct reports whether the principal may act as at least min.
func (p Principal) CanAct(min user.Role) bool {
	return p.Role.Level() >= min.Level()
}

type TokenValidator interface {
	ValidateAccessToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateAccessToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return Principal{}, ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, errs.Mark(err, jwt.ErrInvalidToken)
	}

	return Principal{UserID: claims.UserID, Role: role}, nil
}
