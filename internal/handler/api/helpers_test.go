//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"ecopoints/internal/domain/user"
	"ecopoints/internal/handler/httperr"
	"ecopoints/internal/handler/middleware"
	"ecopoints/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeAuth stands in for RequireAuth: any Authorization header authenticates
// as the given principal.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}
		middleware.SetPrincipal(c, usecase.Principal{UserID: userID, Role: role})
		c.Next()
	}
}

func performWithKey(t *testing.T, router *gin.Engine, path string, body any, key string) *nethttptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := nethttptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer bearer-token")
	req.Header.Set(middleware.HeaderIdempotencyKey, key)

	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
