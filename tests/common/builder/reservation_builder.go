//go:build unit || e2e

package builder

import (
	"time"

	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID             int64
	UserID         uuid.UUID
	UserEmail      string
	StallID        int64
	StallName      string
	StallSize      string
	StallGenres    string
	QRCodeFilename string
	CreatedAt      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        1,
		UserID:    uuid.New(),
		UserEmail: "test@example.com",
		StallID:   1,
		StallName: "A1",
		StallSize: "SMALL",
		CreatedAt: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithQRCode(filename string) *ReservationBuilder {
	r.QRCodeFilename = filename
	return r
}

func (r *ReservationBuilder) BuildInfra() sqlstore.ReservationWithStallRow {
	row := sqlstore.ReservationWithStallRow{
		ID:        r.ID,
		UserID:    r.UserID,
		UserEmail: r.UserEmail,
		StallID:   r.StallID,
		CreatedAt: pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		StallName: r.StallName,
		StallSize: r.StallSize,
	}
	if r.QRCodeFilename != "" {
		row.QrCodeFilename = pgtype.Text{String: r.QRCodeFilename, Valid: true}
	}
	if r.StallGenres != "" {
		row.StallGenres = pgtype.Text{String: r.StallGenres, Valid: true}
	}
	return row
}

func (r *ReservationBuilder) BuildView() queries.ReservationView {
	return queries.ReservationView{
		ID:             r.ID,
		UserID:         r.UserID,
		UserEmail:      r.UserEmail,
		StallID:        r.StallID,
		StallName:      r.StallName,
		StallSize:      r.StallSize,
		StallGenres:    r.StallGenres,
		QRCodeFilename: r.QRCodeFilename,
		CreatedAt:      r.CreatedAt,
	}
}
