package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ecopoints/internal/domain/notification"
	"ecopoints/internal/pkg/clock"
	"ecopoints/internal/pkg/config"
	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/usecase/shared"
)

// Sender delivers a single notification job. A returned error puts the job
// back in the queue until its attempts run out.
type Sender interface {
	Send(ctx context.Context, job shared.NotificationJobRecord) error
}

// LogSender is the default Sender; it only writes the job to the log.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, job shared.NotificationJobRecord) error {
	s.logger.InfoContext(ctx, "notification sent",
		"job_id", job.ID.String(),
		"kind", job.Kind,
		"topic", job.Topic,
		"attempt", job.Attempts,
		"payload", string(job.Payload),
	)
	return nil
}

type NotificationDispatcher struct {
	uow    shared.UnitOfWork
	sender Sender
	clock  clock.Clock
	cfg    config.NotificationConfig
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewNotificationDispatcher(
	uow shared.UnitOfWork,
	sender Sender,
	clk clock.Clock,
	cfg config.NotificationConfig,
	logger *slog.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		uow:    uow,
		sender: sender,
		clock:  clk,
		cfg:    cfg,
		logger: logger,
	}
}

// Start launches the dispatch loop. Calling Start twice is a no-op.
func (d *NotificationDispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})

	go d.run(ctx, d.done)
}

// Stop cancels the loop and waits for the in-flight batch, or for ctx.
func (d *NotificationDispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *NotificationDispatcher) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	d.logger.Info("notification dispatcher started", "interval", d.cfg.Interval.String(), "batch_size", d.cfg.BatchSize)
	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notification dispatcher stopped")
			return
		case <-ticker.C:
			if _, err := d.RunOnce(ctx); err != nil && ctx.Err() == nil {
				d.logger.Error("notification batch failed", "error", err.Error())
			}
			if _, err := d.PurgeExpiredKeys(ctx); err != nil && ctx.Err() == nil {
				d.logger.Error("idempotency key purge failed", "error", err.Error())
			}
		}
	}
}

// RunOnce claims one batch of due jobs and delivers them. It returns the
// number of jobs marked sent.
func (d *NotificationDispatcher) RunOnce(ctx context.Context) (int, error) {
	now := d.clock.Now()

	var jobs []shared.NotificationJobRecord
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, d.cfg.BatchSize)
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "claim due notification jobs")
	}

	sent := 0
	for _, job := range jobs {
		if d.deliver(ctx, job) {
			sent++
		}
	}
	return sent, nil
}

func (d *NotificationDispatcher) deliver(ctx context.Context, job shared.NotificationJobRecord) bool {
	sendErr := d.sender.Send(ctx, job)

	status := notification.StatusSent
	var lastError *string
	var retryAt *time.Time
	if sendErr != nil {
		status = notification.NextStatus(job.Attempts, d.cfg.MaxAttempts)
		msg := sendErr.Error()
		lastError = &msg
		if status == notification.StatusQueued {
			at := d.clock.Now().Add(d.retryDelay(job.Attempts))
			retryAt = &at
		}
		d.logger.Warn("notification delivery failed",
			"job_id", job.ID.String(),
			"topic", job.Topic,
			"attempt", job.Attempts,
			"next_status", string(status),
			"error", msg,
		)
	}

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().UpdateStatus(ctx, tx.DB(), job.ID, status, lastError, retryAt)
	})
	if err != nil {
		d.logger.Error("failed to record notification status",
			"job_id", job.ID.String(),
			"status", string(status),
			"error", err.Error(),
		)
		return false
	}
	return sendErr == nil
}

// retryDelay grows linearly with the attempt count.
func (d *NotificationDispatcher) retryDelay(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	return time.Duration(attempts) * d.cfg.Interval
}

// PurgeExpiredKeys removes idempotency keys whose TTL is over.
func (d *NotificationDispatcher) PurgeExpiredKeys(ctx context.Context) (int64, error) {
	var deleted int64
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), d.clock.Now())
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "purge expired idempotency keys")
	}
	if deleted > 0 {
		d.logger.Info("purged expired idempotency keys", "count", deleted)
	}
	return deleted, nil
}
