package reservation

import (
	"time"

	"bookfair-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotFound = errs.NewKind("Reservation not found", errs.ErrNotFound)

type Reservation struct {
	id             int64
	owner          UserRef
	stallID        int64
	createdAt      time.Time
	qrCodeFilename string
}

func NewReservation(owner UserRef, stallID int64, now time.Time) (*Reservation, error) {
	if owner.ID == uuid.Nil || owner.Email == "" {
		return nil, ErrInvalidUserRef
	}
	if stallID <= 0 {
		return nil, ErrInvalidStallRef
	}
	return &Reservation{
		owner:     owner,
		stallID:   stallID,
		createdAt: now,
	}, nil
}

func Reconstruct(id int64, owner UserRef, stallID int64, createdAt time.Time, qrCodeFilename string) *Reservation {
	return &Reservation{
		id:             id,
		owner:          owner,
		stallID:        stallID,
		createdAt:      createdAt,
		qrCodeFilename: qrCodeFilename,
	}
}

func (r *Reservation) ID() int64              { return r.id }
func (r *Reservation) Owner() UserRef         { return r.owner }
func (r *Reservation) StallID() int64         { return r.stallID }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) QRCodeFilename() string { return r.qrCodeFilename }
func (r *Reservation) HasQRCode() bool        { return r.qrCodeFilename != "" }

// AssignID is called once the row exists.
func (r *Reservation) AssignID(id int64) {
	r.id = id
}

func (r *Reservation) QRPayload() string {
	return QRPayload(r.id, r.stallID, r.owner.Email)
}

func (r *Reservation) AttachQRCode(filename string) {
	r.qrCodeFilename = filename
}
