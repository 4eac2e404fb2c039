package shared

import (
	"context"
	"time"

	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Stalls() StallRepository
	Reservations() ReservationRepository
	MapLayouts() MapLayoutRepository
	Notifications() NotificationRepository
	DB() sqlstore.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error
	UpdateGenres(ctx context.Context, id uuid.UUID, genres string) error
	MarkDeleted(ctx context.Context, id uuid.UUID, at time.Time) error
	Purge(ctx context.Context, id uuid.UUID) error
	LockActive(ctx context.Context, id uuid.UUID) error
}

type StallRepository interface {
	// LockByID takes a row lock held until the transaction ends.
	LockByID(ctx context.Context, id int64) (*stall.Stall, error)
	SetReserved(ctx context.Context, id int64, reserved bool) error
	ReleaseMany(ctx context.Context, ids []int64) (int64, error)
	ResetAll(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	// UpsertByName never changes the reserved flag of an existing stall.
	UpsertByName(ctx context.Context, s *stall.Stall) (id int64, created bool, err error)
	UpdateGenres(ctx context.Context, id int64, genres string) error
}

type ReservationRepository interface {
	// LockOwner serializes reservation attempts of one user until commit.
	LockOwner(ctx context.Context, userID uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Create(ctx context.Context, r *reservation.Reservation) (int64, error)
	LockByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	Delete(ctx context.Context, id int64) error
	// DeleteByUser returns the stall ids the user held.
	DeleteByUser(ctx context.Context, userID uuid.UUID) ([]int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	AttachQRCode(ctx context.Context, id int64, filename string) error
	UserHoldsStall(ctx context.Context, userID uuid.UUID, stallID int64) (bool, error)
}

type MapLayoutRepository interface {
	Create(ctx context.Context, layoutJSON string, at time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type NotificationRepository interface {
	RecordFailure(ctx context.Context, job FailedJob) error
	Enqueue(ctx context.Context, job QueuedJob) error
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error
	MarkCancelled(ctx context.Context, id uuid.UUID, reason string) error
}
