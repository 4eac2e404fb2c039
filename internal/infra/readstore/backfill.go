package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/pkg/pgconv"
	"bookfair-reservation/internal/usecase/queries"
	"bookfair-reservation/internal/usecase/shared"
)

type BackfillReadQueries interface {
	ListPendingNotificationJobs(ctx context.Context, db sqlstore.DBTX, maxAttempts int32, now pgtype.Timestamptz, limit int32) ([]sqlstore.NotificationJobs, error)
	ListReservationsMissingQR(ctx context.Context, db sqlstore.DBTX, before pgtype.Timestamptz, limit int32) ([]sqlstore.Reservations, error)
	FindReservationByID(ctx context.Context, db sqlstore.DBTX, id int64) (sqlstore.ReservationWithStallRow, error)
	ListDeletedUserIDs(ctx context.Context, db sqlstore.DBTX, before pgtype.Timestamptz, limit int32) ([]uuid.UUID, error)
}

type BackfillReadStore struct {
	queries BackfillReadQueries
	db      sqlstore.DBTX
}

func NewBackfillReadStore(queries BackfillReadQueries, db sqlstore.DBTX) *BackfillReadStore {
	return &BackfillReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BackfillReadStore) PendingJobs(ctx context.Context, maxAttempts int32, now time.Time, limit int32) ([]shared.PendingJob, error) {
	rows, err := r.queries.ListPendingNotificationJobs(ctx, r.db, maxAttempts, pgconv.TimeToPgtype(now), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending notification jobs", err)
	}

	jobs := make([]shared.PendingJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.PendingJob{
			ID:            row.ID,
			Kind:          shared.JobKind(row.Kind),
			ReservationID: row.ReservationID,
			Payload:       row.Payload,
			Attempts:      row.Attempts,
		})
	}
	return jobs, nil
}

// ReservationsMissingQR skips rows that disappear between the two reads.
func (r *BackfillReadStore) ReservationsMissingQR(ctx context.Context, before time.Time, limit int32) ([]queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsMissingQR(ctx, r.db, pgconv.TimeToPgtype(before), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations without QR code", err)
	}

	views := make([]queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		full, err := r.queries.FindReservationByID(ctx, r.db, row.ID)
		if err != nil {
			if pgconv.IsNoRows(err) {
				continue
			}
			return nil, infra.WrapRepoErr("failed to load reservation", err)
		}
		views = append(views, toReservationView(full))
	}
	return views, nil
}

func (r *BackfillReadStore) DeletedUserIDs(ctx context.Context, before time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListDeletedUserIDs(ctx, r.db, pgconv.TimeToPgtype(before), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deleted users", err)
	}
	return ids, nil
}
