package api

import (
	"net/http"
	"strconv"

	resdto "ecopoints/internal/handler/dto/response"
	"ecopoints/internal/handler/httperr"
	"ecopoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List products
// @Description Redeemable products in display order
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromProductViews(h.q.ListProducts(c.Request.Context())))
}

// @Summary Get product
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID", nil)
		return
	}

	view, err := h.q.GetProduct(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}
