package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ecopoints/internal/domain/user"
	"ecopoints/internal/handler/api"
	"ecopoints/internal/handler/middleware"
	"ecopoints/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth     *api.AuthHandler
	Pickup   *api.PickupHandler
	Exchange *api.ExchangeHandler
	Points   *api.PointsHandler
	Profile  *api.ProfileHandler
	Catalog  *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.List},
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Catalog.Get},
			{Method: http.MethodGet, Path: "/rewards/quote", Handler: h.Pickup.QuoteReward},
		})

		member := apiGroup.Group("")
		member.Use(authMiddleware.RequireAuth())
		{
			addRoutes(member, []route{
				{Method: http.MethodPost, Path: "/pickups", Handler: h.Pickup.Schedule},
				{Method: http.MethodGet, Path: "/pickups", Handler: h.Pickup.List},
				{Method: http.MethodGet, Path: "/pickups/:id", Handler: h.Pickup.Get},

				{Method: http.MethodGet, Path: "/exchanges/quote", Handler: h.Exchange.Quote},
				{Method: http.MethodPost, Path: "/exchanges", Handler: h.Exchange.Exchange},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Exchange.ListOrders},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Exchange.GetOrder},

				{Method: http.MethodGet, Path: "/points/balance", Handler: h.Points.Balance},
				{Method: http.MethodGet, Path: "/points/transactions", Handler: h.Points.Transactions},
				{
					Method:  http.MethodGet,
					Path:    "/users/:id/points/balance",
					Handler: h.Points.UserBalance,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleOperator)},
				},

				{Method: http.MethodGet, Path: "/profile", Handler: h.Profile.Get},
				{Method: http.MethodPut, Path: "/profile", Handler: h.Profile.Update},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
