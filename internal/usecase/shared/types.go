package shared

import (
	"time"

	"bookfair-reservation/internal/domain/user"

	"github.com/google/uuid"
)

// JobKind names a post-commit step that can be replayed by the backfill sweep.
type JobKind string

const (
	JobEmailRequested JobKind = "email_requested"
	JobEmailConfirmed JobKind = "email_confirmed"
	JobQRCode         JobKind = "qr"
)

// QueuedJob asks the sweep to run a step that has not failed yet. It shares
// the (Kind, ReservationID) key with FailedJob and starts a fresh attempt budget.
type QueuedJob struct {
	Kind          JobKind
	ReservationID int64
	Payload       []byte
	RunAt         time.Time
}

// FailedJob is keyed by (Kind, ReservationID); recording the same pair again
// bumps the attempt counter.
type FailedJob struct {
	Kind          JobKind
	ReservationID int64
	Payload       []byte
	LastError     string
	RunAt         time.Time
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role.IsAdmin()
}

type PendingJob struct {
	ID            uuid.UUID
	Kind          JobKind
	ReservationID int64
	Payload       []byte
	Attempts      int32
}
