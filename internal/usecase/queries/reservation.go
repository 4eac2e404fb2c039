package queries

import (
	"context"

	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/infra"

	"github.com/google/uuid"
)

var ErrReservationNotFound = reservation.ErrNotFound

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	ListMine(ctx context.Context, email string) ([]ReservationView, error)
	ListAllAdmin(ctx context.Context) ([]AdminReservationView, error)
	Stats(ctx context.Context) (*ReservationStats, error)
	UserCounts(ctx context.Context) (map[string]int64, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationView, error)
	ListAll(ctx context.Context) ([]ReservationView, error)
	Count(ctx context.Context) (int64, error)
	CountPerUser(ctx context.Context) (map[uuid.UUID]int64, error)
}

type reservationQueriesImpl struct {
	readStore  ReservationReadStore
	stallStore StallReadStore
	users      UserReadStore
}

func NewReservationQueries(readStore ReservationReadStore, stallStore StallReadStore, users UserReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		readStore:  readStore,
		stallStore: stallStore,
		users:      users,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	r, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return r, nil
}

// ListMine lists the caller's reservations, oldest first.
func (q *reservationQueriesImpl) ListMine(ctx context.Context, email string) ([]ReservationView, error) {
	u, err := q.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return q.readStore.ListByUser(ctx, u.ID)
}

// ListAllAdmin lists every reservation, newest first, with usernames resolved
// from the directory in one pass.
func (q *reservationQueriesImpl) ListAllAdmin(ctx context.Context) ([]AdminReservationView, error) {
	items, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	users, err := q.users.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}

	out := make([]AdminReservationView, 0, len(items))
	for _, item := range items {
		out = append(out, AdminReservationView{
			ReservationView: item,
			Username:        names[item.UserID],
		})
	}
	return out, nil
}

func (q *reservationQueriesImpl) Stats(ctx context.Context) (*ReservationStats, error) {
	total, err := q.readStore.Count(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := q.stallStore.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &ReservationStats{
		TotalReservations: total,
		TotalStalls:       counts.Total,
		ReservedStalls:    counts.Reserved,
		AvailableStalls:   counts.Total - counts.Reserved,
	}, nil
}

func (q *reservationQueriesImpl) UserCounts(ctx context.Context) (map[string]int64, error) {
	perUser, err := q.readStore.CountPerUser(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(perUser))
	for id, n := range perUser {
		out[id.String()] = n
	}
	return out, nil
}
