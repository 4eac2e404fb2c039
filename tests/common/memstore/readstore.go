//go:build unit

package memstore

import (
	"context"
	"maps"
	"slices"
	"time"

	"bookfair-reservation/internal/usecase/queries"
	"bookfair-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// UserReadStore implements queries.UserReadStore over the store.
type UserReadStore struct{ s *Store }

func (s *Store) UserReadStore() *UserReadStore { return &UserReadStore{s} }

func userView(row UserRow) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		Role:      row.Role,
		Genres:    row.Genres,
		CreatedAt: row.CreatedAt,
	}
}

func (r *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("users.FindByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.st.users[id]
	if !ok || row.DeletedAt != nil {
		return nil, notFound()
	}
	return userView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, error) {
	view, _, err := r.FindCredentials(ctx, email)
	return view, err
}

func (r *UserReadStore) FindCredentials(_ context.Context, email string) (*queries.UserView, string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("users.FindByEmail"); err != nil {
		return nil, "", err
	}
	for _, row := range r.s.st.users {
		if row.Email == email && row.DeletedAt == nil {
			return userView(row), row.PasswordHash, nil
		}
	}
	return nil, "", notFound()
}

func (r *UserReadStore) List(_ context.Context) ([]queries.UserView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	views := make([]queries.UserView, 0, len(r.s.st.users))
	for _, row := range r.s.st.users {
		if row.DeletedAt == nil {
			views = append(views, *userView(row))
		}
	}
	slices.SortFunc(views, func(a, b queries.UserView) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return views, nil
}

func (r *UserReadStore) CountByRole(_ context.Context) (int64, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var total, admins int64
	for _, row := range r.s.st.users {
		if row.DeletedAt != nil {
			continue
		}
		total++
		if row.Role == "ADMIN" {
			admins++
		}
	}
	return total, admins, nil
}

// ReservationReadStore implements queries.ReservationReadStore over the store.
type ReservationReadStore struct{ s *Store }

func (s *Store) ReservationReadStore() *ReservationReadStore { return &ReservationReadStore{s} }

// reservationView joins the stall; ok is false when the stall is gone.
func (s *Store) reservationView(row ReservationRow) (queries.ReservationView, bool) {
	st, ok := s.st.stalls[row.StallID]
	if !ok {
		return queries.ReservationView{}, false
	}
	return queries.ReservationView{
		ID:             row.ID,
		UserID:         row.UserID,
		UserEmail:      row.UserEmail,
		StallID:        row.StallID,
		StallName:      st.Name,
		StallSize:      st.Size,
		StallGenres:    st.Genres,
		QRCodeFilename: row.QRCodeFilename,
		CreatedAt:      row.CreatedAt,
	}, true
}

func (s *Store) sortedReservations() []ReservationRow {
	rows := slices.Collect(maps.Values(s.st.reservations))
	slices.SortFunc(rows, func(a, b ReservationRow) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return int(a.ID - b.ID)
	})
	return rows
}

func (r *ReservationReadStore) FindByID(_ context.Context, id int64) (*queries.ReservationView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("reservations.FindByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.st.reservations[id]
	if !ok {
		return nil, notFound()
	}
	view, ok := r.s.reservationView(row)
	if !ok {
		return nil, notFound()
	}
	return &view, nil
}

func (r *ReservationReadStore) ListByUser(_ context.Context, userID uuid.UUID) ([]queries.ReservationView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var views []queries.ReservationView
	for _, row := range r.s.sortedReservations() {
		if row.UserID != userID {
			continue
		}
		if view, ok := r.s.reservationView(row); ok {
			views = append(views, view)
		}
	}
	return views, nil
}

func (r *ReservationReadStore) ListAll(_ context.Context) ([]queries.ReservationView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var views []queries.ReservationView
	for _, row := range r.s.sortedReservations() {
		if view, ok := r.s.reservationView(row); ok {
			views = append(views, view)
		}
	}
	slices.Reverse(views)
	return views, nil
}

func (r *ReservationReadStore) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.st.reservations)), nil
}

func (r *ReservationReadStore) CountPerUser(_ context.Context) (map[uuid.UUID]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[uuid.UUID]int64{}
	for _, row := range r.s.st.reservations {
		counts[row.UserID]++
	}
	return counts, nil
}

// BackfillReadStore implements commands.BackfillReadStore over the store.
type BackfillReadStore struct{ s *Store }

func (s *Store) BackfillReadStore() *BackfillReadStore { return &BackfillReadStore{s} }

func (r *BackfillReadStore) PendingJobs(_ context.Context, maxAttempts int32, now time.Time, limit int32) ([]shared.PendingJob, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := slices.Collect(maps.Values(r.s.st.jobs))
	slices.SortFunc(rows, func(a, b JobRow) int { return a.RunAt.Compare(b.RunAt) })

	var jobs []shared.PendingJob
	for _, row := range rows {
		if int32(len(jobs)) >= limit {
			break
		}
		if (row.Status != "queued" && row.Status != "failed") || row.Attempts >= maxAttempts || row.RunAt.After(now) {
			continue
		}
		jobs = append(jobs, shared.PendingJob{
			ID:            row.ID,
			Kind:          row.Kind,
			ReservationID: row.ReservationID,
			Payload:       row.Payload,
			Attempts:      row.Attempts,
		})
	}
	return jobs, nil
}

func (r *BackfillReadStore) ReservationsMissingQR(_ context.Context, before time.Time, limit int32) ([]queries.ReservationView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var views []queries.ReservationView
	for _, row := range r.s.sortedReservations() {
		if int32(len(views)) >= limit {
			break
		}
		if row.QRCodeFilename != "" || !row.CreatedAt.Before(before) {
			continue
		}
		if view, ok := r.s.reservationView(row); ok {
			views = append(views, view)
		}
	}
	return views, nil
}

func (r *BackfillReadStore) DeletedUserIDs(_ context.Context, before time.Time, limit int32) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []uuid.UUID
	for _, row := range r.s.st.users {
		if int32(len(ids)) >= limit {
			break
		}
		if row.DeletedAt != nil && row.DeletedAt.Before(before) {
			ids = append(ids, row.ID)
		}
	}
	return ids, nil
}
