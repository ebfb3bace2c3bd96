package components

import (
	"ecopoints/internal/domain/waste"
	"ecopoints/internal/pkg/clock"
	"ecopoints/internal/pkg/password"
	"ecopoints/internal/usecase"
	"ecopoints/internal/usecase/commands"
	"ecopoints/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	password.NewDefaultHasher,
	fx.Annotate(
		waste.NewDefaultMultiplierTable,
		fx.As(new(waste.RewardCalculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPickupCommands,
		commands.NewExchangeCommands,
		commands.NewProfileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewProfileQueries,
		queries.NewPickupQueries,
		queries.NewPointsQueries,
		queries.NewOrderQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
