package commands

import (
	"context"
	"time"

	"bookfair-reservation/internal/usecase/queries"
	"bookfair-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// QRStore renders entry passes to disk.
type QRStore interface {
	// Write renders payload into filename and returns the absolute path.
	Write(ctx context.Context, filename, payload string) (string, error)
	Path(filename string) string
}

// BackfillReadStore lists the work left behind by failed post-commit steps.
type BackfillReadStore interface {
	PendingJobs(ctx context.Context, maxAttempts int32, now time.Time, limit int32) ([]shared.PendingJob, error)
	ReservationsMissingQR(ctx context.Context, before time.Time, limit int32) ([]queries.ReservationView, error)
	DeletedUserIDs(ctx context.Context, before time.Time, limit int32) ([]uuid.UUID, error)
}

// ReservationReleaser frees everything a user holds.
type ReservationReleaser interface {
	ReleaseAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
