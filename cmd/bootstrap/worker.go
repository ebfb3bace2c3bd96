package bootstrap

import (
	"context"
	"log/slog"

	"ecopoints/internal/pkg/config"
	"ecopoints/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			worker.NewLogSender,
			fx.As(new(worker.Sender)),
		),
		worker.NewNotificationDispatcher,
	),
	fx.Invoke(startDispatcher),
)

func startDispatcher(lc fx.Lifecycle, d *worker.NotificationDispatcher, cfg config.NotificationConfig, logger *slog.Logger) {
	if !cfg.Enabled {
		logger.Info("notification dispatcher disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
}
