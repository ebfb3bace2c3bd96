//go:build unit

package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes body and records error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		AbortWithError(c, http.StatusUnprocessableEntity, errors.New("boom"), "You need 10 more EcoPoints to complete this exchange", map[string]int64{"shortfall": 10})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.True(t, c.IsAborted())
		require.Len(t, c.Errors, 1)
		assert.EqualError(t, c.Errors[0].Err, "boom")

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail map[string]int64 `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "You need 10 more EcoPoints to complete this exchange", body.Error.Message)
		assert.Equal(t, int64(10), body.Detail["shortfall"])
	})

	t.Run("nil error uses message", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)

		require.Len(t, c.Errors, 1)
		assert.EqualError(t, c.Errors[0].Err, "Unauthorized")
		assert.NotContains(t, w.Body.String(), "detail")
	})
}
