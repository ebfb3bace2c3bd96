package bootstrap

import (
	"ecopoints/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigSections exposes the config slices that components depend on directly.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.IdempotencyConfig { return cfg.Idempotency },
	func(cfg config.Config) config.NotificationConfig { return cfg.Notification },
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)
