package repository

import (
	"context"

	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	AcquireUserReservationLock(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) error
	CountReservationsByUser(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) (int64, error)
	CreateReservation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateReservationParams) (int64, error)
	LockReservationByID(ctx context.Context, db sqlstore.DBTX, id int64) (sqlstore.Reservations, error)
	DeleteReservation(ctx context.Context, db sqlstore.DBTX, id int64) (int64, error)
	DeleteReservationsByUser(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) ([]int64, error)
	DeleteAllReservations(ctx context.Context, db sqlstore.DBTX) (int64, error)
	UpdateReservationQRCode(ctx context.Context, db sqlstore.DBTX, id int64, filename string) (int64, error)
	UserHoldsStall(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID, stallID int64) (bool, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlstore.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlstore.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) LockOwner(ctx context.Context, userID uuid.UUID) error {
	if err := r.queries.AcquireUserReservationLock(ctx, r.db, userID); err != nil {
		return infra.WrapRepoErr("failed to lock reservations of user", err)
	}
	return nil
}

func (r *ReservationRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations of user", err)
	}
	return n, nil
}

// Create maps a second reservation for the same stall to DUPLICATE_KEY.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	id, err := r.queries.CreateReservation(ctx, r.db, sqlstore.CreateReservationParams{
		UserID:    res.Owner().ID,
		UserEmail: res.Owner().Email,
		StallID:   res.StallID(),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) LockByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.LockReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return reservation.Reconstruct(
		row.ID,
		reservation.UserRef{ID: row.UserID, Email: row.UserEmail},
		row.StallID,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.StringFromPgtype(row.QrCodeFilename),
	), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteReservation(ctx, r.db, id)
	return expectOne("delete reservation", n, err)
}

func (r *ReservationRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	stallIDs, err := r.queries.DeleteReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete reservations of user", err)
	}
	return stallIDs, nil
}

func (r *ReservationRepository) DeleteAll(ctx context.Context) (int64, error) {
	n, err := r.queries.DeleteAllReservations(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) AttachQRCode(ctx context.Context, id int64, filename string) error {
	n, err := r.queries.UpdateReservationQRCode(ctx, r.db, id, filename)
	return expectOne("attach QR code", n, err)
}

func (r *ReservationRepository) UserHoldsStall(ctx context.Context, userID uuid.UUID, stallID int64) (bool, error) {
	holds, err := r.queries.UserHoldsStall(ctx, r.db, userID, stallID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check stall holder", err)
	}
	return holds, nil
}
