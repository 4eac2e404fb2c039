package repository

import (
	"context"

	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/pkg/pgconv"
	"bookfair-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	jobStatusDone      = "done"
	jobStatusFailed    = "failed"
	jobStatusCancelled = "cancelled"
)

type NotificationWriteQueries interface {
	UpsertNotificationJob(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpsertNotificationJobParams) error
	EnqueueNotificationJob(ctx context.Context, db sqlstore.DBTX, arg sqlstore.EnqueueNotificationJobParams) error
	UpdateNotificationJobStatus(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, status string, lastError pgtype.Text) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlstore.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlstore.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) RecordFailure(ctx context.Context, job shared.FailedJob) error {
	err := r.queries.UpsertNotificationJob(ctx, r.db, sqlstore.UpsertNotificationJobParams{
		ID:            uuid.New(),
		Kind:          string(job.Kind),
		ReservationID: job.ReservationID,
		Payload:       job.Payload,
		LastError:     pgconv.StringToNullableText(job.LastError),
		RunAt:         pgconv.TimeToPgtype(job.RunAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record notification job", err)
	}
	return nil
}

func (r *NotificationRepository) Enqueue(ctx context.Context, job shared.QueuedJob) error {
	err := r.queries.EnqueueNotificationJob(ctx, r.db, sqlstore.EnqueueNotificationJobParams{
		ID:            uuid.New(),
		Kind:          string(job.Kind),
		ReservationID: job.ReservationID,
		Payload:       job.Payload,
		RunAt:         pgconv.TimeToPgtype(job.RunAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to queue notification job", err)
	}
	return nil
}

func (r *NotificationRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.UpdateNotificationJobStatus(ctx, r.db, id, jobStatusDone, pgtype.Text{})
	return expectOne("mark notification job done", n, err)
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	n, err := r.queries.UpdateNotificationJobStatus(ctx, r.db, id, jobStatusFailed, pgconv.StringToNullableText(lastError))
	return expectOne("mark notification job failed", n, err)
}

func (r *NotificationRepository) MarkCancelled(ctx context.Context, id uuid.UUID, reason string) error {
	n, err := r.queries.UpdateNotificationJobStatus(ctx, r.db, id, jobStatusCancelled, pgconv.StringToNullableText(reason))
	return expectOne("mark notification job cancelled", n, err)
}
