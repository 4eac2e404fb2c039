package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// A second failure for the same (kind, reservation) bumps attempts instead of
// adding a row.
const upsertNotificationJob = `-- name: UpsertNotificationJob :exec
INSERT INTO notification_jobs (id, kind, reservation_id, payload, status, attempts, last_error, run_at)
VALUES ($1, $2, $3, $4, 'failed', 1, $5, $6)
ON CONFLICT (kind, reservation_id) DO UPDATE
SET payload    = EXCLUDED.payload,
    status     = 'failed',
    attempts   = notification_jobs.attempts + 1,
    last_error = EXCLUDED.last_error,
    run_at     = EXCLUDED.run_at,
    updated_at = now()
`

type UpsertNotificationJobParams struct {
	ID            uuid.UUID          `json:"id"`
	Kind          string             `json:"kind"`
	ReservationID int64              `json:"reservation_id"`
	Payload       []byte             `json:"payload"`
	LastError     pgtype.Text        `json:"last_error"`
	RunAt         pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) UpsertNotificationJob(ctx context.Context, db DBTX, arg UpsertNotificationJobParams) error {
	_, err := db.Exec(ctx, upsertNotificationJob,
		arg.ID,
		arg.Kind,
		arg.ReservationID,
		arg.Payload,
		arg.LastError,
		arg.RunAt,
	)
	return err
}

// Queuing resets the attempt budget; an existing row for the pair is reused.
const enqueueNotificationJob = `-- name: EnqueueNotificationJob :exec
INSERT INTO notification_jobs (id, kind, reservation_id, payload, status, attempts, run_at)
VALUES ($1, $2, $3, $4, 'queued', 0, $5)
ON CONFLICT (kind, reservation_id) DO UPDATE
SET payload    = EXCLUDED.payload,
    status     = 'queued',
    attempts   = 0,
    last_error = NULL,
    run_at     = EXCLUDED.run_at,
    updated_at = now()
`

type EnqueueNotificationJobParams struct {
	ID            uuid.UUID          `json:"id"`
	Kind          string             `json:"kind"`
	ReservationID int64              `json:"reservation_id"`
	Payload       []byte             `json:"payload"`
	RunAt         pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) EnqueueNotificationJob(ctx context.Context, db DBTX, arg EnqueueNotificationJobParams) error {
	_, err := db.Exec(ctx, enqueueNotificationJob,
		arg.ID,
		arg.Kind,
		arg.ReservationID,
		arg.Payload,
		arg.RunAt,
	)
	return err
}

const updateNotificationJobStatus = `-- name: UpdateNotificationJobStatus :execrows
UPDATE notification_jobs
SET status     = $2,
    last_error = $3,
    attempts   = CASE WHEN $2 = 'failed' THEN attempts + 1 ELSE attempts END,
    updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, id uuid.UUID, status string, lastError pgtype.Text) (int64, error) {
	result, err := db.Exec(ctx, updateNotificationJobStatus, id, status, lastError)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listPendingNotificationJobs = `-- name: ListPendingNotificationJobs :many
SELECT id, kind, reservation_id, payload, status, attempts, last_error, run_at, created_at, updated_at
FROM notification_jobs
WHERE status IN ('queued', 'failed') AND attempts < $1 AND run_at <= $2
ORDER BY run_at
LIMIT $3
`

func (q *Queries) ListPendingNotificationJobs(ctx context.Context, db DBTX, maxAttempts int32, now pgtype.Timestamptz, limit int32) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, listPendingNotificationJobs, maxAttempts, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NotificationJobs
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.ReservationID,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.RunAt,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
