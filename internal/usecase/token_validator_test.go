//go:build unit

package usecase

import (
	"testing"
	"time"

	"ecopoints/internal/domain/user"
	"ecopoints/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccessToken(t *testing.T) {
	svc := jwt.NewService("secret", time.Minute, time.Hour)
	v := NewTokenValidator(svc)
	id := uuid.New()

	t.Run("access token", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(id, user.RoleOperator)
		require.NoError(t, err)

		p, err := v.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, p.UserID)
		assert.Equal(t, user.RoleOperator, p.Role)
	})

	t.Run("refresh token is refused", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(id, user.RoleMember)
		require.NoError(t, err)

		_, err = v.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrNotAccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := v.ValidateAccessToken("nope")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestPrincipalCanAct(t *testing.T) {
	tests := []struct {
		role user.Role
		min  user.Role
		want bool
	}{
		{user.RoleMember, user.RoleMember, true},
		{user.RoleMember, user.RoleOperator, false},
		{user.RoleOperator, user.RoleOperator, true},
		{user.RoleAdmin, user.RoleOperator, true},
		{user.Role("ghost"), user.RoleMember, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+"_"+string(tt.min), func(t *testing.T) {
			assert.Equal(t, tt.want, Principal{Role: tt.role}.CanAct(tt.min))
		})
	}
}
