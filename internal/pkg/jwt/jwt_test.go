//go:build unit

package jwt

import (
	"testing"
	"time"

	"ecopoints/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, user.RoleMember)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(userID, user.RoleMember)
	require.NoError(t, err)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "member", accessClaims.Role)
	assert.Equal(t, TokenTypeAccess, accessClaims.TokenType)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestValidateToken(t *testing.T) {
	svc := NewService("secret", time.Minute, time.Hour)

	t.Run("expired token", func(t *testing.T) {
		expired := NewService("secret", time.Minute, time.Hour)
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := expired.GenerateAccessToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other-secret", time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
