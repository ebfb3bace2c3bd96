//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"ecopoints/internal/domain/user"
	"ecopoints/internal/handler/api"
	reqdto "ecopoints/internal/handler/dto/request"
	resdto "ecopoints/internal/handler/dto/response"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/usecase/queries"
	"ecopoints/tests/common/httptest"
	commandsmock "ecopoints/tests/mock/commands"
	queriesmock "ecopoints/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProfileCommands
	mockQueries  *queriesmock.MockProfileQueries
	userID       uuid.UUID
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProfileQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewProfileHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(s.userID, user.RoleMember)
	s.router.GET("/profile", auth, h.Get)
	s.router.PATCH("/profile", auth, h.Update)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) profileView(theme, language string) *queries.ProfileView {
	return &queries.ProfileView{
		ID:        s.userID,
		FullName:  "Budi Santoso",
		Phone:     "081234567890",
		Theme:     theme,
		Language:  language,
		UpdatedAt: time.Now(),
	}
}

func (s *ProfileHandlerTestSuite) TestGet() {
	s.Run("success: preferences are nested", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.userID).Return(s.profileView("light", "id"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profile", nil, "bearer-token")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("light", response.Preferences.Theme)
		s.Equal("id", response.Preferences.Language)
		s.Nil(response.Address)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.userID).Return(nil, queries.ErrProfileNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profile", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Profile not found")
	})
}

func (s *ProfileHandlerTestSuite) TestUpdate() {
	s.Run("success: only sent fields reach the command", func() {
		theme := "dark"
		expected := reqdto.UpdateProfileRequest{Theme: &theme}
		s.mockCommands.EXPECT().UpdateSettings(gomock.Any(), expected, s.userID).
			Return(s.profileView("dark", "id"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/profile", map[string]any{"theme": "dark"}, "bearer-token")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("dark", response.Preferences.Theme)
	})

	s.Run("error: 400 on invalid language", func() {
		s.mockCommands.EXPECT().UpdateSettings(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.Mark(errors.New("Invalid language"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/profile", map[string]any{"language": "fr"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid language")
	})

	s.Run("error: 400 on malformed json", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/profile", "not an object", "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
