package reservation

import (
	"errors"
	"fmt"
	"strings"

	"bookfair-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// DefaultMaxPerUser applies when no quota is configured.
const DefaultMaxPerUser = 3

var (
	ErrQuotaExceeded   = errs.NewKind("reservation quota exceeded", errs.ErrQuotaExceeded)
	ErrInvalidQuota    = errors.New("quota must be positive")
	ErrInvalidUserRef  = errors.New("user reference requires id and email")
	ErrInvalidStallRef = errs.NewKind("invalid stall id", errs.ErrValidation)
)

// UserRef is a point-in-time copy of the owner taken when the reservation is
// made. The email is not refreshed if the user later changes it.
type UserRef struct {
	ID    uuid.UUID
	Email string
}

func NewUserRef(id uuid.UUID, email string) (UserRef, error) {
	email = strings.TrimSpace(email)
	if id == uuid.Nil || email == "" {
		return UserRef{}, ErrInvalidUserRef
	}
	return UserRef{ID: id, Email: email}, nil
}

type Quota struct {
	max int
}

func NewQuota(max int) (Quota, error) {
	if max <= 0 {
		return Quota{}, ErrInvalidQuota
	}
	return Quota{max: max}, nil
}

func (q Quota) Max() int {
	return q.max
}

// Check fails once held reaches the cap.
func (q Quota) Check(held int64) error {
	if held >= int64(q.max) {
		return &QuotaError{Max: q.max}
	}
	return nil
}

type QuotaError struct {
	Max int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("Maximum %d stalls allowed per user", e.Max)
}

func (e *QuotaError) Is(target error) bool {
	return target == ErrQuotaExceeded || target == errs.ErrQuotaExceeded
}

// QRPayload is the text encoded into the entry pass.
func QRPayload(reservationID, stallID int64, email string) string {
	return fmt.Sprintf("Bookfair-%d-%d-%s", reservationID, stallID, email)
}

func QRFilename(reservationID int64) string {
	return fmt.Sprintf("qr_%d.png", reservationID)
}
