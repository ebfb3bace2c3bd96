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

type ExchangeHandler struct {
	cmds commands.ExchangeCommands
	q    queries.OrderQueries
}

func NewExchangeHandler(cmds commands.ExchangeCommands, q queries.OrderQueries) *ExchangeHandler {
	return &ExchangeHandler{cmds: cmds, q: q}
}

// @Summary Redeem product
// @Description Exchange EcoPoints for a catalog product. The price comes from the catalog.
// @Tags exchanges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID that makes retries safe"
// @Param request body reqdto.ExchangeRequest true "Exchange request"
// @Success 201 {object} resdto.ExchangeResponse
// @Success 200 {object} resdto.ExchangeResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response "Insufficient points, detail carries required, available and shortfall"
// @Router /exchanges [post]
func (h *ExchangeHandler) Exchange(c *gin.Context) {
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
	var req reqdto.ExchangeRequest
	if err := bindStrictJSON(c, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.ExchangeProduct(c.Request.Context(), req, userID, key)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromExchangeResult(result))
}

// @Summary Quote redemption
// @Description Preview total, balance and shortfall for a redemption. Nothing is written.
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param product_id query int true "Product ID"
// @Param quantity query string false "Quantity, clamped to at least 1"
// @Success 200 {object} resdto.ExchangeQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /exchanges/quote [get]
func (h *ExchangeHandler) Quote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var q reqdto.ExchangeQuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	quantity, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	quote, err := h.q.QuoteExchange(c.Request.Context(), userID, q.ProductID, quantity)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExchangeQuote(quote))
}

// @Summary List orders
// @Description List own product orders, newest first
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Max items (default 20, max 200)"
// @Success 200 {object} resdto.PageResponse[resdto.OrderResponse]
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *ExchangeHandler) ListOrders(c *gin.Context) {
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

	views, next, err := h.q.ListOrders(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(views, next, resdto.FromOrderView))
}

// @Summary Get order
// @Tags exchanges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *ExchangeHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	view, err := h.q.GetOrder(c.Request.Context(), userID, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
