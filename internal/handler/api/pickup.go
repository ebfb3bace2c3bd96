package api

import (
	"net/http"

	reqdto "ecopoints/internal/handler/dto/request"
	resdto "ecopoints/internal/handler/dto/response"
	"ecopoints/internal/handler/httperr"
	"ecopoints/internal/handler/middleware"
	"ecopoints/internal/usecase/commands"
	"ecopoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PickupHandler struct {
	cmds commands.PickupCommands
	q    queries.PickupQueries
}

func NewPickupHandler(cmds commands.PickupCommands, q queries.PickupQueries) *PickupHandler {
	return &PickupHandler{cmds: cmds, q: q}
}

// @Summary Schedule pickup
// @Description Schedule a waste pickup. Points are computed server-side and credited in the same transaction.
// @Tags pickups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID that makes retries safe"
// @Param request body reqdto.SchedulePickupRequest true "Pickup request"
// @Success 201 {object} resdto.SchedulePickupResponse
// @Success 200 {object} resdto.SchedulePickupResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /pickups [post]
func (h *PickupHandler) Schedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	key, err := idempotencyKey(c)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	var req reqdto.SchedulePickupRequest
	if err := bindStrictJSON(c, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.SchedulePickup(c.Request.Context(), req, userID, key)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromSchedulePickupResult(result))
}

// @Summary List pickups
// @Description List own pickups, newest first
// @Tags pickups
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Max items (default 20, max 200)"
// @Success 200 {object} resdto.PageResponse[resdto.PickupResponse]
// @Failure 400 {object} httperr.Response
// @Router /pickups [get]
func (h *PickupHandler) List(c *gin.Context) {
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

	views, next, err := h.q.ListPickups(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(views, next, resdto.FromPickupView))
}

// @Summary Get pickup
// @Tags pickups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pickup ID"
// @Success 200 {object} resdto.PickupResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pickups/{id} [get]
func (h *PickupHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pickup ID format", nil)
		return
	}

	view, err := h.q.GetPickup(c.Request.Context(), userID, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPickupView(view))
}

// @Summary Quote reward
// @Description Preview the EcoPoints a pickup would earn. Nothing is written.
// @Tags pickups
// @Produce json
// @Param waste_type query string true "plastic, paper, metal, glass or mixed"
// @Param weight query number true "Estimated weight in kg"
// @Success 200 {object} resdto.RewardQuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /rewards/quote [get]
func (h *PickupHandler) QuoteReward(c *gin.Context) {
	var q reqdto.RewardQuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	quote, err := h.q.QuoteReward(c.Request.Context(), q.WasteType, q.Weight)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRewardQuote(quote))
}
