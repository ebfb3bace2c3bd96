package components

import (
	"ecopoints/internal/handler"
	"ecopoints/internal/handler/api"
	"ecopoints/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPickupHandler,
		api.NewExchangeHandler,
		api.NewPointsHandler,
		api.NewProfileHandler,
		api.NewCatalogHandler,
		newHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Pickup   *api.PickupHandler
	Exchange *api.ExchangeHandler
	Points   *api.PointsHandler
	Profile  *api.ProfileHandler
	Catalog  *api.CatalogHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Pickup:   p.Pickup,
		Exchange: p.Exchange,
		Points:   p.Points,
		Profile:  p.Profile,
		Catalog:  p.Catalog,
	}
}
