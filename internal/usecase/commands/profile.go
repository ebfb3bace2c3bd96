package commands

import (
	"context"

	reqdto "ecopoints/internal/handler/dto/request"
	"ecopoints/internal/infra"
	"ecopoints/internal/pkg/clock"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/usecase/queries"
	"ecopoints/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrProfileNotFound = queries.ErrProfileNotFound

type ProfileCommands interface {
	UpdateSettings(ctx context.Context, req reqdto.UpdateProfileRequest, userID uuid.UUID) (*queries.ProfileView, error)
}

type profileCommandsImpl struct {
	uow      shared.UnitOfWork
	profiles queries.ProfileQueries
	clock    clock.Clock
}

func NewProfileCommands(uow shared.UnitOfWork, profiles queries.ProfileQueries, clk clock.Clock) ProfileCommands {
	return &profileCommandsImpl{uow: uow, profiles: profiles, clock: clk}
}

// UpdateSettings writes only the fields that were sent with a value.
func (c *profileCommandsImpl) UpdateSettings(ctx context.Context, req reqdto.UpdateProfileRequest, userID uuid.UUID) (*queries.ProfileView, error) {
	settings, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if !settings.IsEmpty() {
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			derr := tx.Profiles().UpdateSettings(ctx, tx.DB(), userID, settings, c.clock.Now())
			if derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return errs.Mark(derr, ErrProfileNotFound)
				}
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return c.profiles.GetProfile(ctx, userID)
}
