package api

import (
	"net/http"

	resdto "ecopoints/internal/handler/dto/response"
	"ecopoints/internal/handler/httperr"
	"ecopoints/internal/handler/middleware"
	"ecopoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PointsHandler struct {
	q queries.PointsQueries
}

func NewPointsHandler(q queries.PointsQueries) *PointsHandler {
	return &PointsHandler{q: q}
}

// @Summary Get balance
// @Description Own EcoPoints balance with earned and spent totals
// @Tags points
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Router /points/balance [get]
func (h *PointsHandler) Balance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetBalance(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}

// @Summary List transactions
// @Description Own ledger entries, newest first
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Max items (default 20, max 200)"
// @Success 200 {object} resdto.PageResponse[resdto.TransactionResponse]
// @Failure 400 {object} httperr.Response
// @Router /points/transactions [get]
func (h *PointsHandler) Transactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	cursor, limit, err := listParams(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, next, err := h.q.ListTransactions(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(views, next, resdto.FromTransactionView))
}

// @Summary Get user balance
// @Description Any user's balance, for operators and admins
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id}/points/balance [get]
func (h *PointsHandler) UserBalance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID format", nil)
		return
	}

	view, err := h.q.GetUserBalance(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}
