package commands

import (
	"context"

	"ecopoints/internal/domain/catalog"
	"ecopoints/internal/domain/exchange"
	"ecopoints/internal/domain/ledger"
	"ecopoints/internal/domain/notification"
	reqdto "ecopoints/internal/handler/dto/request"
	"ecopoints/internal/infra"
	"ecopoints/internal/pkg/clock"
	"ecopoints/internal/pkg/config"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/usecase/queries"
	"ecopoints/internal/usecase/shared"

	"github.com/google/uuid"
)

const endpointExchangeProduct = "POST /api/exchanges"

var ErrProductNotFound = queries.ErrProductNotFound

type ExchangeResult struct {
	Order *queries.OrderView
	// LedgerAmount is the signed entry written for the order, always negative.
	LedgerAmount int64
	Balance      int64
	IsReplayed   bool
}

type ExchangeCommands interface {
	ExchangeProduct(ctx context.Context, req reqdto.ExchangeRequest, userID uuid.UUID, idempotencyKey *uuid.UUID) (*ExchangeResult, error)
}

type exchangeCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog *catalog.Catalog
	orders  queries.OrderQueries
	points  queries.PointsQueries
	clock   clock.Clock
	cfg     config.IdempotencyConfig
}

func NewExchangeCommands(
	uow shared.UnitOfWork,
	c *catalog.Catalog,
	orders queries.OrderQueries,
	points queries.PointsQueries,
	clk clock.Clock,
	cfg config.IdempotencyConfig,
) ExchangeCommands {
	return &exchangeCommandsImpl{
		uow:     uow,
		catalog: c,
		orders:  orders,
		points:  points,
		clock:   clk,
		cfg:     cfg,
	}
}

// ExchangeProduct debits the catalog price inside one transaction that holds the
// user row lock, so concurrent redemptions see each other's spent entries.
func (c *exchangeCommandsImpl) ExchangeProduct(
	ctx context.Context,
	req reqdto.ExchangeRequest,
	userID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*ExchangeResult, error) {
	product, err := c.catalog.Product(req.ProductID)
	if err != nil {
		return nil, errs.Mark(err, ErrProductNotFound)
	}
	quantity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	idem := idempotencyRequest{
		Key:         idempotencyKey,
		UserID:      userID,
		Endpoint:    endpointExchangeProduct,
		RequestHash: requestHash(endpointExchangeProduct, req),
	}
	now := c.clock.Now()

	var orderID uuid.UUID
	var replayed bool
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayed = false

		prior, derr := claimIdempotencyKey(ctx, tx, idem, now, c.cfg.TTL)
		if derr != nil {
			return derr
		}
		if prior != nil {
			orderID = *prior
			replayed = true
			return nil
		}

		if derr = tx.Users().LockForUpdate(ctx, tx.DB(), userID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrUserNotFound)
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		balance, derr := tx.Ledger().BalanceOf(ctx, tx.DB(), userID)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		order := exchange.NewOrder(userID, product, quantity, now)
		if derr = ledger.CheckSufficient(balance, order.PointsSpent()); derr != nil {
			return derr
		}

		if derr = tx.Orders().Create(ctx, tx.DB(), order); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		entry, derr := ledger.NewSpentEntry(userID, order.PointsSpent(), order.Description(), order.ID(), now)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		if derr = tx.Ledger().Append(ctx, tx.DB(), entry); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		job, derr := notification.NewJob(notification.TopicExchangeCompleted, notification.ExchangeCompletedPayload{
			UserID:      userID,
			OrderID:     order.ID(),
			ProductName: order.ProductName(),
			Quantity:    order.Quantity().Int(),
			PointsSpent: order.PointsSpent(),
		}, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Notifications().Enqueue(ctx, tx.DB(), job); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		if derr = completeIdempotencyKey(ctx, tx, idem, order.ID(), now); derr != nil {
			return derr
		}
		orderID = order.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.orders.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	balance, err := c.points.GetBalance(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ExchangeResult{
		Order:        view,
		LedgerAmount: -view.PointsSpent,
		Balance:      balance.Balance,
		IsReplayed:   replayed,
	}, nil
}
