package commands

import (
	"context"

	"ecopoints/internal/domain/ledger"
	"ecopoints/internal/domain/notification"
	"ecopoints/internal/domain/pickup"
	"ecopoints/internal/domain/waste"
	reqdto "ecopoints/internal/handler/dto/request"
	"ecopoints/internal/pkg/clock"
	"ecopoints/internal/pkg/config"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/usecase/queries"
	"ecopoints/internal/usecase/shared"

	"github.com/google/uuid"
)

const endpointSchedulePickup = "POST /api/pickups"

type SchedulePickupResult struct {
	Pickup     *queries.PickupView
	Balance    int64
	IsReplayed bool
}

type PickupCommands interface {
	SchedulePickup(ctx context.Context, req reqdto.SchedulePickupRequest, userID uuid.UUID, idempotencyKey *uuid.UUID) (*SchedulePickupResult, error)
}

type pickupCommandsImpl struct {
	uow        shared.UnitOfWork
	calculator waste.RewardCalculator
	pickups    queries.PickupQueries
	points     queries.PointsQueries
	clock      clock.Clock
	cfg        config.IdempotencyConfig
}

func NewPickupCommands(
	uow shared.UnitOfWork,
	calculator waste.RewardCalculator,
	pickups queries.PickupQueries,
	points queries.PointsQueries,
	clk clock.Clock,
	cfg config.IdempotencyConfig,
) PickupCommands {
	return &pickupCommandsImpl{
		uow:        uow,
		calculator: calculator,
		pickups:    pickups,
		points:     points,
		clock:      clk,
		cfg:        cfg,
	}
}

func (c *pickupCommandsImpl) SchedulePickup(
	ctx context.Context,
	req reqdto.SchedulePickupRequest,
	userID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*SchedulePickupResult, error) {
	details, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	idem := idempotencyRequest{
		Key:         idempotencyKey,
		UserID:      userID,
		Endpoint:    endpointSchedulePickup,
		RequestHash: requestHash(endpointSchedulePickup, req),
	}
	now := c.clock.Now()

	var pickupID uuid.UUID
	var replayed bool
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayed = false

		prior, derr := claimIdempotencyKey(ctx, tx, idem, now, c.cfg.TTL)
		if derr != nil {
			return derr
		}
		if prior != nil {
			pickupID = *prior
			replayed = true
			return nil
		}

		request := pickup.NewRequest(c.calculator, userID, details, now)
		if derr = tx.Pickups().Create(ctx, tx.DB(), request); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		entry, derr := ledger.NewEarnedEntry(userID, request.PointsAwarded(), request.Description(), request.ID(), now)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		if derr = tx.Ledger().Append(ctx, tx.DB(), entry); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		job, derr := notification.NewJob(notification.TopicPickupScheduled, notification.PickupScheduledPayload{
			UserID:        userID,
			PickupID:      request.ID(),
			WasteType:     request.Category().String(),
			Weight:        request.Weight().Kilograms(),
			PreferredDate: request.PreferredDate().String(),
			PointsAwarded: request.PointsAwarded(),
		}, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Notifications().Enqueue(ctx, tx.DB(), job); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		if derr = completeIdempotencyKey(ctx, tx, idem, request.ID(), now); derr != nil {
			return derr
		}
		pickupID = request.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: the committed row is the source of truth for the response
	view, err := c.pickups.GetPickup(ctx, userID, pickupID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	balance, err := c.points.GetBalance(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &SchedulePickupResult{
		Pickup:     view,
		Balance:    balance.Balance,
		IsReplayed: replayed,
	}, nil
}
