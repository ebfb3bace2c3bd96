//go:build e2e

package pickup_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"testing"

	"ecopoints/internal/domain/user"
	resdto "ecopoints/internal/handler/dto/response"
	"ecopoints/tests/common/authtest"
	"ecopoints/tests/common/builder"
	"ecopoints/tests/common/httptest"
	"ecopoints/tests/common/testutil"
	"ecopoints/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	pickupsURL = "/api/pickups"
	balanceURL = "/api/points/balance"
)

type pickupSuite struct {
	e2e.SharedSuite
	token string
}

func TestPickupSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(pickupSuite))
}

func (s *pickupSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "member@example.com", string(user.RoleMember))
}

func (s *pickupSuite) schedule(t *testing.T, body any, key string) *nethttptest.ResponseRecorder {
	t.Helper()

	var headers map[string]string
	if key != "" {
		headers = map[string]string{"Idempotency-Key": key}
	}
	return httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, pickupsURL, body, s.token, headers)
}

func (s *pickupSuite) countRows(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func (s *pickupSuite) TestSchedulePickup() {
	s.Run("credits floor(weight x multiplier) atomically", func() {
		t := s.T()

		body := builder.NewPickupBuilder().WithWasteType("metal").WithWeight(3.7).BuildDTO()
		w := s.schedule(t, body, "")

		var res resdto.SchedulePickupResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, int64(55), res.Pickup.PointsAwarded)
		require.Equal(t, int64(55), res.Balance)
		require.False(t, res.Replayed)

		var amount int64
		var txType string
		var pickupID uuid.UUID
		err := s.DB.QueryRow(t.Context(), `
			SELECT amount, transaction_type, pickup_request_id
			FROM ecopoints_transactions`).Scan(&amount, &txType, &pickupID)
		require.NoError(t, err)
		require.Equal(t, int64(55), amount)
		require.Equal(t, "earned", txType)
		require.Equal(t, res.Pickup.ID, pickupID)

		var topic string
		err = s.DB.QueryRow(t.Context(), "SELECT topic FROM notification_jobs WHERE status = 'queued'").Scan(&topic)
		require.NoError(t, err)
		require.Equal(t, "pickup_scheduled", topic)

		bw := httptest.PerformRequest(t, s.Router, http.MethodGet, balanceURL, nil, s.token)
		var balance resdto.BalanceResponse
		httptest.AssertSuccessResponse(t, bw, http.StatusOK, &balance)
		require.Equal(t, int64(55), balance.Balance)
		require.Equal(t, int64(55), balance.TotalEarned)
		require.Equal(t, int64(1), balance.TransactionCount)
	})

	s.Run("client supplied points are rejected", func() {
		t := s.T()

		body := testutil.DtoMap(t, builder.NewPickupBuilder().BuildDTO(), testutil.Field("points_awarded", 99999))
		w := s.schedule(t, body, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		require.Zero(t, s.countRows(t, "pickup_requests"))
		require.Zero(t, s.countRows(t, "ecopoints_transactions"))
	})

	s.Run("validation failures write nothing", func() {
		t := s.T()

		cases := []struct {
			name string
			body any
			msg  string
		}{
			{"unknown waste type", builder.NewPickupBuilder().WithWasteType("wood").BuildDTO(), "Please select a valid waste type"},
			{"weight below minimum", builder.NewPickupBuilder().WithWeight(0.5).BuildDTO(), "Weight must be at least 1 kg"},
			{"weight above maximum", builder.NewPickupBuilder().WithWeight(1000.5).BuildDTO(), "Weight must be at most 1000 kg"},
			{"short address", builder.NewPickupBuilder().WithAddress("Jl. A").BuildDTO(), "Address must be at least 10 characters"},
			{"missing weight", testutil.DtoMap(t, builder.NewPickupBuilder().BuildDTO(), testutil.Field("estimated_weight", nil)), "Weight must be at least 1 kg"},
		}
		for _, c := range cases {
			w := s.schedule(t, c.body, "")
			require.Equal(t, http.StatusBadRequest, w.Code, c.name)
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, c.msg)
		}
		require.Zero(t, s.countRows(t, "pickup_requests"))
		require.Zero(t, s.countRows(t, "ecopoints_transactions"))
	})

	s.Run("reuses the stored result for a retried key", func() {
		t := s.T()

		key := uuid.NewString()
		body := builder.NewPickupBuilder().WithWasteType("plastic").WithWeight(2).BuildDTO()

		first := s.schedule(t, body, key)
		var created resdto.SchedulePickupResponse
		httptest.AssertSuccessResponse(t, first, http.StatusCreated, &created)
		require.Equal(t, int64(20), created.Pickup.PointsAwarded)

		second := s.schedule(t, body, key)
		var replayed resdto.SchedulePickupResponse
		httptest.AssertSuccessResponse(t, second, http.StatusOK, &replayed)
		require.True(t, replayed.Replayed)
		require.Equal(t, created.Pickup.ID, replayed.Pickup.ID)

		require.Equal(t, 1, s.countRows(t, "pickup_requests"))
		require.Equal(t, 1, s.countRows(t, "ecopoints_transactions"))
	})

	s.Run("same key with a different body conflicts", func() {
		t := s.T()

		key := uuid.NewString()
		first := s.schedule(t, builder.NewPickupBuilder().WithWeight(2).BuildDTO(), key)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

		second := s.schedule(t, builder.NewPickupBuilder().WithWeight(3).BuildDTO(), key)
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "different request")
		require.Equal(t, 1, s.countRows(t, "pickup_requests"))
	})

	s.Run("malformed key", func() {
		t := s.T()

		w := s.schedule(t, builder.NewPickupBuilder().BuildDTO(), "not-a-uuid")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})
}

func (s *pickupSuite) TestListPickups() {
	s.Run("pages newest first", func() {
		t := s.T()

		for _, kg := range []float64{1, 2, 3} {
			w := s.schedule(t, builder.NewPickupBuilder().WithWasteType("paper").WithWeight(kg).BuildDTO(), "")
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pickupsURL+"?limit=2", nil, s.token)
		var page resdto.PageResponse[resdto.PickupResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 2)
		require.Equal(t, 3.0, page.Items[0].EstimatedWeight)
		require.Equal(t, 2.0, page.Items[1].EstimatedWeight)
		require.NotNil(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, pickupsURL+"?limit=2&cursor="+url.QueryEscape(*page.NextCursor), nil, s.token)
		var rest resdto.PageResponse[resdto.PickupResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rest)
		require.Len(t, rest.Items, 1)
		require.Equal(t, 1.0, rest.Items[0].EstimatedWeight)
		require.Nil(t, rest.NextCursor)
	})

	s.Run("other users' pickups are not visible", func() {
		t := s.T()

		w := s.schedule(t, builder.NewPickupBuilder().BuildDTO(), "")
		var created resdto.SchedulePickupResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		other := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleMember))
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, pickupsURL+"/"+created.Pickup.ID.String(), nil, other)
		require.Equal(t, http.StatusNotFound, gw.Code, gw.Body.String())
	})
}

func (s *pickupSuite) TestQuoteReward() {
	s.Run("quote matches the credited amount", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rewards/quote?waste_type=metal&weight=3.7", nil, "")
		var quote resdto.RewardQuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &quote)
		require.Equal(t, int64(15), quote.Multiplier)
		require.Equal(t, int64(55), quote.Points)
	})
}
