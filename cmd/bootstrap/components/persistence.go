package components

import (
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/infra/readstore"
	"ecopoints/internal/infra/uow"
	"ecopoints/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Profile
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProfileReadQueries)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
		// Pickup
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PickupReadQueries)),
		),
		fx.Annotate(
			readstore.NewPickupReadStore,
			fx.As(new(queries.PickupReadStore)),
		),
		// Points ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PointsReadQueries)),
		),
		fx.Annotate(
			readstore.NewPointsReadStore,
			fx.As(new(queries.PointsReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

// Repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}
