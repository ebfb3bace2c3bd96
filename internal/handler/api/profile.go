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
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Get profile
// @Description Profile with address, gender and display preferences
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 404 {object} httperr.Response
// @Router /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Update profile settings
// @Description Update address, gender, theme or language. Absent or empty fields are left unchanged.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Settings"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.UpdateSettings(c.Request.Context(), req, userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}
