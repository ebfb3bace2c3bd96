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
	"ecopoints/internal/usecase/queries"
	"ecopoints/tests/common/httptest"
	queriesmock "ecopoints/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PointsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPointsQueries
	userID      uuid.UUID
}

func (s *PointsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPointsQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewPointsHandler(s.mockQueries)

	auth := fakeAuth(s.userID, user.RoleOperator)
	s.router.GET("/points/balance", auth, h.Balance)
	s.router.GET("/points/transactions", auth, h.Transactions)
	s.router.GET("/users/:id/points/balance", auth, h.UserBalance)
}

func (s *PointsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPointsHandlerSuite(t *testing.T) {
	suite.Run(t, new(PointsHandlerTestSuite))
}

func (s *PointsHandlerTestSuite) TestBalance() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), s.userID).
			Return(&queries.BalanceView{UserID: s.userID, Balance: 130, TotalEarned: 180, TotalSpent: 50, TransactionCount: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/points/balance", nil, "bearer-token")

		var response resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(130), response.Balance)
		s.Equal(int64(180), response.TotalEarned)
		s.Equal(int64(50), response.TotalSpent)
	})

	s.Run("error: internal server error", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), s.userID).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/points/balance", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *PointsHandlerTestSuite) TestTransactions() {
	s.Run("success: signed amounts newest first", func() {
		orderID := uuid.New()
		views := []*queries.TransactionView{
			{ID: uuid.New(), UserID: s.userID, Amount: -50, TransactionType: "spent", ProductOrderID: &orderID, CreatedAt: time.Now()},
			{ID: uuid.New(), UserID: s.userID, Amount: 75, TransactionType: "earned", CreatedAt: time.Now().Add(-time.Hour)},
		}
		s.mockQueries.EXPECT().ListTransactions(gomock.Any(), s.userID, (*queries.Cursor)(nil), queries.MaxListLimit).
			Return(views, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/points/transactions?limit=100000", nil, "bearer-token")

		var response resdto.PageResponse[resdto.TransactionResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 2)
		s.Equal(int64(-50), response.Items[0].Amount)
		s.Equal(&orderID, response.Items[0].ProductOrderID)
		s.Equal("earned", response.Items[1].TransactionType)
	})

	s.Run("error: 400 on non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/points/transactions?limit=ten", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *PointsHandlerTestSuite) TestUserBalance() {
	s.Run("success: any user's balance", func() {
		other := uuid.New()
		s.mockQueries.EXPECT().GetUserBalance(gomock.Any(), other).
			Return(&queries.BalanceView{UserID: other, Balance: 10}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+other.String()+"/points/balance", nil, "bearer-token")

		var response resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(other, response.UserID)
	})

	s.Run("error: 404 for unknown user", func() {
		other := uuid.New()
		s.mockQueries.EXPECT().GetUserBalance(gomock.Any(), other).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+other.String()+"/points/balance", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 400 on a bad id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/abc/points/balance", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user ID format")
	})
}
