package api

import (
	"log/slog"
	"net/http"

	"ecopoints/internal/domain/ledger"
	resdto "ecopoints/internal/handler/dto/response"
	"ecopoints/internal/handler/httperr"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/usecase/commands"
	"ecopoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// First match wins. An empty message means the error text is user-facing.
var errorMappings = []errorMapping{
	{errs.ErrDomainValidation, http.StatusBadRequest, ""},
	{errs.ErrIdempotencyKeyInvalid, http.StatusBadRequest, "Idempotency-Key must be a UUID"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrIdempotencyConflict, http.StatusConflict, "Idempotency-Key was already used with a different request"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "A request with this Idempotency-Key is still being processed"},
	{commands.ErrEmailAlreadyExists, http.StatusConflict, "Email is already registered"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired refresh token"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{queries.ErrPickupNotFound, http.StatusNotFound, "Pickup not found"},
	{queries.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{queries.ErrProfileNotFound, http.StatusNotFound, "Profile not found"},
}

// abortWithUsecaseError maps a use case error onto the JSON error response.
func abortWithUsecaseError(c *gin.Context, err error) {
	var insufficient *ledger.InsufficientPointsError
	if errs.As(err, &insufficient) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, insufficient.Error(), resdto.InsufficientPointsDetail{
			Required:  insufficient.Required,
			Available: insufficient.Available,
			Shortfall: insufficient.Shortfall(),
		})
		return
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			httperr.AbortWithError(c, m.status, err, msg, nil)
			return
		}
	}

	slog.Error("unhandled use case error", "path", c.FullPath(), "error", err.Error(), "stack", errs.ExtractStackLines(err, 6))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
