package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `-- name: CreateNotificationJob :exec
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
	Status  string
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt, arg.Status)
	return err
}

// Concurrent dispatchers skip each other's rows instead of waiting on them.
const claimDueNotificationJobs = `-- name: ClaimDueNotificationJobs :many
UPDATE notification_jobs
SET status = 'processing', attempts = attempts + 1, updated_at = $1
WHERE id IN (
    SELECT id FROM notification_jobs
    WHERE status = 'queued' AND run_at <= $1
    ORDER BY run_at
    LIMIT $2
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at`

type ClaimDueNotificationJobsParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []NotificationJob
	for rows.Next() {
		var j NotificationJob
		if err := rows.Scan(
			&j.ID,
			&j.Kind,
			&j.Topic,
			&j.Payload,
			&j.RunAt,
			&j.Attempts,
			&j.Status,
			&j.LastError,
			&j.CreatedAt,
			&j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	return items, rows.Err()
}

const updateNotificationJobStatus = `-- name: UpdateNotificationJobStatus :exec
UPDATE notification_jobs
SET status = $2, last_error = $3, run_at = COALESCE($4, run_at), updated_at = NOW()
WHERE id = $1`

type UpdateNotificationJobStatusParams struct {
	ID        uuid.UUID
	Status    string
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
}

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus, arg.ID, arg.Status, arg.LastError, arg.RunAt)
	return err
}
