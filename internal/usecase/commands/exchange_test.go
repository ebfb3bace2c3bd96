//go:build unit

package commands

import (
	"context"
	"sync"
	"testing"
	"time"

	"ecopoints/internal/domain/catalog"
	"ecopoints/internal/domain/exchange"
	"ecopoints/internal/domain/ledger"
	reqdto "ecopoints/internal/handler/dto/request"
	"ecopoints/internal/pkg/clock"
	"ecopoints/internal/pkg/config"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExchangeFixture(t *testing.T, balance int64) (*fakeUoW, ExchangeCommands, uuid.UUID) {
	t.Helper()
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	userID := uuid.New()
	uow.seedUser(&shared.UserSnapshot{ID: userID, Email: "rina@example.com", Role: "member", IsActive: true})
	if balance > 0 {
		uow.seedBalance(userID, balance)
	}

	q := memQueries{uow: uow}
	cmd := NewExchangeCommands(uow, catalog.Default(), q, q, clk, config.IdempotencyConfig{TTL: time.Hour})
	return uow, cmd, userID
}

func TestExchangeProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("debits price times quantity", func(t *testing.T) {
		uow, cmd, userID := newExchangeFixture(t, 100)

		res, err := cmd.ExchangeProduct(ctx, reqdto.ExchangeRequest{ProductID: 1, Quantity: 2}, userID, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(-100), res.LedgerAmount)
		assert.Equal(t, int64(0), res.Balance)
		assert.Equal(t, int64(100), res.Order.PointsSpent)
		assert.Equal(t, "Lettuce Starter Kit", res.Order.ProductName)
		assert.Equal(t, 2, res.Order.Quantity)

		state := uow.snapshot()
		require.Len(t, state.entries, 2)
		spent := state.entries[1]
		assert.Equal(t, ledger.KindSpent, spent.Kind())
		require.NotNil(t, spent.ProductOrderID())
		assert.Equal(t, res.Order.ID, *spent.ProductOrderID())
		assert.Len(t, state.jobs, 1)
	})

	t.Run("insufficient balance reports shortfall and writes nothing", func(t *testing.T) {
		uow, cmd, userID := newExchangeFixture(t, 40)

		_, err := cmd.ExchangeProduct(ctx, reqdto.ExchangeRequest{ProductID: 1, Quantity: 1}, userID, nil)
		require.Error(t, err)

		var insufficient *ledger.InsufficientPointsError
		require.True(t, errs.As(err, &insufficient))
		assert.Equal(t, int64(50), insufficient.Required)
		assert.Equal(t, int64(40), insufficient.Available)
		assert.Equal(t, int64(10), insufficient.Shortfall())
		assert.ErrorIs(t, err, ledger.ErrInsufficientPoints)

		state := uow.snapshot()
		assert.Empty(t, state.orders)
		assert.Len(t, state.entries, 1)
		assert.Empty(t, state.jobs)
	})

	t.Run("unknown product", func(t *testing.T) {
		uow, cmd, userID := newExchangeFixture(t, 100)

		_, err := cmd.ExchangeProduct(ctx, reqdto.ExchangeRequest{ProductID: 99, Quantity: 1}, userID, nil)
		assert.True(t, errs.Is(err, ErrProductNotFound))
		assert.Zero(t, uow.withinCalls)
	})

	t.Run("quantity above the limit", func(t *testing.T) {
		_, cmd, userID := newExchangeFixture(t, 100)

		_, err := cmd.ExchangeProduct(ctx, reqdto.ExchangeRequest{ProductID: 1, Quantity: exchange.MaxQuantity + 1}, userID, nil)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.True(t, errs.Is(err, exchange.ErrQuantityTooLarge))
	})

	t.Run("zero quantity is clamped to one", func(t *testing.T) {
		_, cmd, userID := newExchangeFixture(t, 100)

		res, err := cmd.ExchangeProduct(ctx, reqdto.ExchangeRequest{ProductID: 1, Quantity: 0}, userID, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Order.Quantity)
		assert.Equal(t, int64(50), res.Balance)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, cmd, _ := newExchangeFixture(t, 0)

		_, err := cmd.ExchangeProduct(ctx, reqdto.ExchangeRequest{ProductID: 4, Quantity: 1}, uuid.New(), nil)
		assert.True(t, errs.Is(err, ErrUserNotFound))
	})

	t.Run("replay does not debit twice", func(t *testing.T) {
		uow, cmd, userID := newExchangeFixture(t, 100)
		key := uuid.New()
		req := reqdto.ExchangeRequest{ProductID: 4, Quantity: 2}

		first, err := cmd.ExchangeProduct(ctx, req, userID, &key)
		require.NoError(t, err)
		second, err := cmd.ExchangeProduct(ctx, req, userID, &key)
		require.NoError(t, err)

		assert.True(t, second.IsReplayed)
		assert.Equal(t, first.Order.ID, second.Order.ID)
		assert.Equal(t, int64(50), second.Balance)
		assert.Len(t, uow.snapshot().orders, 1)
	})
}

func TestExchangeProductConcurrentRedemptions(t *testing.T) {
	ctx := context.Background()
	uow, cmd, userID := newExchangeFixture(t, 100)

	const attempts = 5
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cmd.ExchangeProduct(ctx, reqdto.ExchangeRequest{ProductID: 1, Quantity: 1}, userID, nil)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errs.Is(err, ledger.ErrInsufficientPoints):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 2, ok)
	assert.Equal(t, 3, insufficient)
	assert.Equal(t, int64(0), uow.snapshot().balance(userID))
}
