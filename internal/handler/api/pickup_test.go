//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"ecopoints/internal/domain/user"
	"ecopoints/internal/handler/api"
	resdto "ecopoints/internal/handler/dto/response"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/usecase/commands"
	"ecopoints/internal/usecase/queries"
	"ecopoints/tests/common/builder"
	"ecopoints/tests/common/httptest"
	"ecopoints/tests/common/testutil"
	commandsmock "ecopoints/tests/mock/commands"
	queriesmock "ecopoints/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PickupHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPickupCommands
	mockQueries  *queriesmock.MockPickupQueries
	userID       uuid.UUID
}

func (s *PickupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPickupCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPickupQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewPickupHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(s.userID, user.RoleMember)
	s.router.POST("/pickups", auth, h.Schedule)
	s.router.GET("/pickups", auth, h.List)
	s.router.GET("/pickups/:id", auth, h.Get)
	s.router.GET("/rewards/quote", h.QuoteReward)
}

func (s *PickupHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPickupHandlerSuite(t *testing.T) {
	suite.Run(t, new(PickupHandlerTestSuite))
}

func (s *PickupHandlerTestSuite) pickupView() *queries.PickupView {
	return &queries.PickupView{
		ID:              uuid.New(),
		UserID:          s.userID,
		Address:         "Jl. Merdeka No. 10, Jakarta Pusat",
		WasteType:       "metal",
		EstimatedWeight: 5,
		PreferredDate:   "2025-03-01",
		PointsAwarded:   75,
		CreatedAt:       time.Now(),
	}
}

func (s *PickupHandlerTestSuite) TestSchedule() {
	url := "/pickups"
	reqBody := builder.NewPickupBuilder().BuildDTO()

	s.Run("success: returns 201 with the awarded points", func() {
		view := s.pickupView()
		s.mockCommands.EXPECT().SchedulePickup(gomock.Any(), reqBody, s.userID, (*uuid.UUID)(nil)).
			Return(&commands.SchedulePickupResult{Pickup: view, Balance: 175}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.SchedulePickupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(75), response.Pickup.PointsAwarded)
		s.Equal(int64(175), response.Balance)
		s.False(response.Replayed)
	})

	s.Run("success: replay returns 200 and passes the key through", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().SchedulePickup(gomock.Any(), reqBody, s.userID, &key).
			Return(&commands.SchedulePickupResult{Pickup: s.pickupView(), Balance: 75, IsReplayed: true}, nil).Times(1)

		rec := performWithKey(s.T(), s.router, url, reqBody, key.String())

		var response resdto.SchedulePickupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Replayed)
	})

	s.Run("error: 400 on a malformed Idempotency-Key", func() {
		rec := performWithKey(s.T(), s.router, url, reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})

	s.Run("error: 400 when the client sends points", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("points_awarded", 9999))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "first invalid field",
				commandsError:  errs.Mark(errors.New("Minimum weight is 1 kg"), errs.ErrDomainValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Minimum weight is 1 kg",
			},
			{
				name:           "key reused with another body",
				commandsError:  errs.ErrIdempotencyConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "different request",
			},
			{
				name:           "key still in flight",
				commandsError:  commands.ErrIdempotencyInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "still being processed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SchedulePickup(gomock.Any(), reqBody, s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PickupHandlerTestSuite) TestList() {
	s.Run("success: returns a page with the next cursor", func() {
		views := []*queries.PickupView{s.pickupView(), s.pickupView()}
		s.mockQueries.EXPECT().ListPickups(gomock.Any(), s.userID, (*queries.Cursor)(nil), 2).
			Return(views, &queries.Cursor{After: "next-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pickups?limit=2", nil, "bearer-token")

		var response resdto.PageResponse[resdto.PickupResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Require().NotNil(response.NextCursor)
		s.Equal("next-token", *response.NextCursor)
	})

	s.Run("success: cursor is forwarded and limit defaults", func() {
		s.mockQueries.EXPECT().ListPickups(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, queries.DefaultListLimit).
			Return([]*queries.PickupView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pickups?cursor=abc", nil, "bearer-token")

		var response resdto.PageResponse[resdto.PickupResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Items)
		s.Nil(response.NextCursor)
	})

	s.Run("error: 400 on a tampered cursor", func() {
		s.mockQueries.EXPECT().ListPickups(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pickups?cursor=zzz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *PickupHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := s.pickupView()
		s.mockQueries.EXPECT().GetPickup(gomock.Any(), s.userID, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pickups/"+view.ID.String(), nil, "bearer-token")

		var response resdto.PickupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 on a bad id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pickups/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pickup ID format")
	})

	s.Run("error: 404 for someone else's pickup", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetPickup(gomock.Any(), s.userID, id).Return(nil, queries.ErrPickupNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pickups/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pickup not found")
	})
}

func (s *PickupHandlerTestSuite) TestQuoteReward() {
	s.Run("success: no auth required", func() {
		s.mockQueries.EXPECT().QuoteReward(gomock.Any(), "metal", 3.7).
			Return(&queries.RewardQuoteView{WasteType: "metal", Weight: 3.7, Multiplier: 15, Points: 55}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rewards/quote?waste_type=metal&weight=3.7", nil, "")

		var response resdto.RewardQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(55), response.Points)
		s.Equal(int64(15), response.Multiplier)
	})

	s.Run("error: 400 on invalid category", func() {
		s.mockQueries.EXPECT().QuoteReward(gomock.Any(), "wood", 2.0).
			Return(nil, errs.Mark(errors.New("Invalid waste type"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rewards/quote?waste_type=wood&weight=2", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid waste type")
	})

	s.Run("error: 400 on non-numeric weight", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rewards/quote?waste_type=metal&weight=heavy", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}
