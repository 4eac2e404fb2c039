package readstore

import (
	"context"

	"github.com/google/uuid"

	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/pkg/pgconv"
	"bookfair-reservation/internal/usecase/queries"
)

type ReservationReadQueries interface {
	FindReservationByID(ctx context.Context, db sqlstore.DBTX, id int64) (sqlstore.ReservationWithStallRow, error)
	ListReservationsByUser(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) ([]sqlstore.ReservationWithStallRow, error)
	ListAllReservations(ctx context.Context, db sqlstore.DBTX) ([]sqlstore.ReservationWithStallRow, error)
	CountReservations(ctx context.Context, db sqlstore.DBTX) (int64, error)
	CountReservationsPerUser(ctx context.Context, db sqlstore.DBTX) ([]sqlstore.CountReservationsPerUserRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlstore.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlstore.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.FindReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	view := toReservationView(row)
	return &view, nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations of user", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) ListAll(ctx context.Context) ([]queries.ReservationView, error) {
	rows, err := r.queries.ListAllReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return toReservationViews(rows), nil
}

func (r *ReservationReadStore) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountReservations(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return n, nil
}

func (r *ReservationReadStore) CountPerUser(ctx context.Context) (map[uuid.UUID]int64, error) {
	rows, err := r.queries.CountReservationsPerUser(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations per user", err)
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Reservations
	}
	return counts, nil
}

func toReservationViews(rows []sqlstore.ReservationWithStallRow) []queries.ReservationView {
	views := make([]queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReservationView(row))
	}
	return views
}

func toReservationView(row sqlstore.ReservationWithStallRow) queries.ReservationView {
	return queries.ReservationView{
		ID:             row.ID,
		UserID:         row.UserID,
		UserEmail:      row.UserEmail,
		StallID:        row.StallID,
		StallName:      row.StallName,
		StallSize:      row.StallSize,
		StallGenres:    pgconv.StringFromPgtype(row.StallGenres),
		QRCodeFilename: pgconv.StringFromPgtype(row.QrCodeFilename),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
