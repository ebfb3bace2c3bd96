package repository

import (
	"context"
	"time"

	"ecopoints/internal/domain/notification"
	"ecopoints/internal/infra"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/pkg/pgconv"
	"ecopoints/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db pgquery.DBTX, arg pgquery.ClaimDueNotificationJobsParams) ([]pgquery.NotificationJob, error)
	UpdateNotificationJobStatus(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, tx pgquery.DBTX, job notification.Job) error {
	params := pgquery.CreateNotificationJobParams{
		Kind:    job.Kind,
		Topic:   string(job.Topic),
		Payload: job.Payload,
		RunAt:   pgconv.TimeToPgtype(job.RunAt),
		Status:  string(notification.StatusQueued),
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, tx pgquery.DBTX, now time.Time, limit int32) ([]shared.NotificationJobRecord, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, pgquery.ClaimDueNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJobRecord, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJobRecord{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateStatus(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, status notification.Status, lastError *string, retryAt *time.Time) error {
	params := pgquery.UpdateNotificationJobStatusParams{
		ID:        id,
		Status:    string(status),
		LastError: pgconv.StringPtrToPgtype(lastError),
		RunAt:     pgconv.TimePtrToPgtype(retryAt),
	}

	if err := r.queries.UpdateNotificationJobStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
