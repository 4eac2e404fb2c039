//go:build unit

package memstore

import (
	"context"
	"slices"
	"time"

	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx runs with Store.mu held by Within.
type memTx struct {
	s *Store
}

func (t *memTx) Users() shared.UserRepository                 { return userRepo{t.s} }
func (t *memTx) Stalls() shared.StallRepository               { return stallRepo{t.s} }
func (t *memTx) Reservations() shared.ReservationRepository   { return reservationRepo{t.s} }
func (t *memTx) MapLayouts() shared.MapLayoutRepository       { return layoutRepo{t.s} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t.s} }
func (t *memTx) DB() sqlstore.DBTX                            { return nil }

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *user.User) (uuid.UUID, error) {
	if err := r.s.fail("users.Create"); err != nil {
		return uuid.Nil, err
	}
	for _, row := range r.s.st.users {
		if row.Email == u.Email().Value() {
			return uuid.Nil, duplicate()
		}
	}
	r.s.st.users[u.ID()] = UserRow{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Genres:       u.Genres(),
		CreatedAt:    u.CreatedAt(),
	}
	return u.ID(), nil
}

func (r userRepo) update(op string, id uuid.UUID, fn func(*UserRow)) error {
	if err := r.s.fail(op); err != nil {
		return err
	}
	row, ok := r.s.st.users[id]
	if !ok || row.DeletedAt != nil {
		return notFound()
	}
	fn(&row)
	r.s.st.users[id] = row
	return nil
}

func (r userRepo) UpdateRole(_ context.Context, id uuid.UUID, role user.Role) error {
	return r.update("users.UpdateRole", id, func(row *UserRow) { row.Role = role.String() })
}

func (r userRepo) UpdateGenres(_ context.Context, id uuid.UUID, genres string) error {
	return r.update("users.UpdateGenres", id, func(row *UserRow) { row.Genres = genres })
}

func (r userRepo) MarkDeleted(_ context.Context, id uuid.UUID, at time.Time) error {
	return r.update("users.MarkDeleted", id, func(row *UserRow) { row.DeletedAt = &at })
}

func (r userRepo) Purge(_ context.Context, id uuid.UUID) error {
	if err := r.s.fail("users.Purge"); err != nil {
		return err
	}
	row, ok := r.s.st.users[id]
	if !ok || row.DeletedAt == nil {
		return notFound()
	}
	delete(r.s.st.users, id)
	return nil
}

func (r userRepo) LockActive(_ context.Context, id uuid.UUID) error {
	if err := r.s.fail("users.LockActive"); err != nil {
		return err
	}
	row, ok := r.s.st.users[id]
	if !ok || row.DeletedAt != nil {
		return notFound()
	}
	return nil
}

type stallRepo struct{ s *Store }

func (r stallRepo) LockByID(_ context.Context, id int64) (*stall.Stall, error) {
	if err := r.s.fail("stalls.LockByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.st.stalls[id]
	if !ok {
		return nil, notFound()
	}
	return toStall(row), nil
}

func (r stallRepo) SetReserved(_ context.Context, id int64, reserved bool) error {
	if err := r.s.fail("stalls.SetReserved"); err != nil {
		return err
	}
	row, ok := r.s.st.stalls[id]
	if !ok {
		return notFound()
	}
	row.Reserved = reserved
	r.s.st.stalls[id] = row
	return nil
}

func (r stallRepo) ReleaseMany(_ context.Context, ids []int64) (int64, error) {
	if err := r.s.fail("stalls.ReleaseMany"); err != nil {
		return 0, err
	}
	var n int64
	for _, id := range ids {
		row, ok := r.s.st.stalls[id]
		if !ok {
			continue
		}
		row.Reserved = false
		r.s.st.stalls[id] = row
		n++
	}
	return n, nil
}

func (r stallRepo) ResetAll(_ context.Context) (int64, error) {
	if err := r.s.fail("stalls.ResetAll"); err != nil {
		return 0, err
	}
	var n int64
	for id, row := range r.s.st.stalls {
		if row.Reserved {
			row.Reserved = false
			r.s.st.stalls[id] = row
			n++
		}
	}
	return n, nil
}

func (r stallRepo) DeleteAll(_ context.Context) (int64, error) {
	if err := r.s.fail("stalls.DeleteAll"); err != nil {
		return 0, err
	}
	n := int64(len(r.s.st.stalls))
	clear(r.s.st.stalls)
	return n, nil
}

func (r stallRepo) UpsertByName(_ context.Context, st *stall.Stall) (int64, bool, error) {
	if err := r.s.fail("stalls.UpsertByName"); err != nil {
		return 0, false, err
	}
	for id, row := range r.s.st.stalls {
		if row.Name != st.Name() {
			continue
		}
		row.Size = st.Size().String()
		row.X, row.Y = st.X(), st.Y()
		if st.Genres() != "" {
			row.Genres = st.Genres()
		}
		r.s.st.stalls[id] = row
		return id, false, nil
	}
	row := StallRow{
		ID:     r.s.nextID(),
		Name:   st.Name(),
		Size:   st.Size().String(),
		X:      st.X(),
		Y:      st.Y(),
		Genres: st.Genres(),
	}
	r.s.st.stalls[row.ID] = row
	return row.ID, true, nil
}

func (r stallRepo) UpdateGenres(_ context.Context, id int64, genres string) error {
	if err := r.s.fail("stalls.UpdateGenres"); err != nil {
		return err
	}
	row, ok := r.s.st.stalls[id]
	if !ok {
		return notFound()
	}
	row.Genres = genres
	r.s.st.stalls[id] = row
	return nil
}

type reservationRepo struct{ s *Store }

// LockOwner only records the call; Within already serializes every transaction.
func (r reservationRepo) LockOwner(_ context.Context, _ uuid.UUID) error {
	return r.s.fail("reservations.LockOwner")
}

func (r reservationRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	if err := r.s.fail("reservations.CountByUser"); err != nil {
		return 0, err
	}
	var n int64
	for _, row := range r.s.st.reservations {
		if row.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	if err := r.s.fail("reservations.Create"); err != nil {
		return 0, err
	}
	for _, row := range r.s.st.reservations {
		if row.StallID == res.StallID() {
			return 0, duplicate()
		}
	}
	row := ReservationRow{
		ID:        r.s.nextID(),
		UserID:    res.Owner().ID,
		UserEmail: res.Owner().Email,
		StallID:   res.StallID(),
		CreatedAt: res.CreatedAt(),
	}
	r.s.st.reservations[row.ID] = row
	return row.ID, nil
}

func (r reservationRepo) LockByID(_ context.Context, id int64) (*reservation.Reservation, error) {
	if err := r.s.fail("reservations.LockByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.st.reservations[id]
	if !ok {
		return nil, notFound()
	}
	return toReservation(row), nil
}

func (r reservationRepo) Delete(_ context.Context, id int64) error {
	if err := r.s.fail("reservations.Delete"); err != nil {
		return err
	}
	if _, ok := r.s.st.reservations[id]; !ok {
		return notFound()
	}
	delete(r.s.st.reservations, id)
	return nil
}

func (r reservationRepo) DeleteByUser(_ context.Context, userID uuid.UUID) ([]int64, error) {
	if err := r.s.fail("reservations.DeleteByUser"); err != nil {
		return nil, err
	}
	var stallIDs []int64
	for id, row := range r.s.st.reservations {
		if row.UserID == userID {
			stallIDs = append(stallIDs, row.StallID)
			delete(r.s.st.reservations, id)
		}
	}
	slices.Sort(stallIDs)
	return stallIDs, nil
}

func (r reservationRepo) DeleteAll(_ context.Context) (int64, error) {
	if err := r.s.fail("reservations.DeleteAll"); err != nil {
		return 0, err
	}
	n := int64(len(r.s.st.reservations))
	clear(r.s.st.reservations)
	return n, nil
}

func (r reservationRepo) AttachQRCode(_ context.Context, id int64, filename string) error {
	if err := r.s.fail("reservations.AttachQRCode"); err != nil {
		return err
	}
	row, ok := r.s.st.reservations[id]
	if !ok {
		return notFound()
	}
	row.QRCodeFilename = filename
	r.s.st.reservations[id] = row
	return nil
}

func (r reservationRepo) UserHoldsStall(_ context.Context, userID uuid.UUID, stallID int64) (bool, error) {
	if err := r.s.fail("reservations.UserHoldsStall"); err != nil {
		return false, err
	}
	for _, row := range r.s.st.reservations {
		if row.UserID == userID && row.StallID == stallID {
			return true, nil
		}
	}
	return false, nil
}

type layoutRepo struct{ s *Store }

func (r layoutRepo) Create(_ context.Context, layoutJSON string, at time.Time) (int64, error) {
	if err := r.s.fail("mapLayouts.Create"); err != nil {
		return 0, err
	}
	row := LayoutRow{ID: r.s.nextID(), LayoutJSON: layoutJSON, CreatedAt: at}
	r.s.st.layouts[row.ID] = row
	return row.ID, nil
}

func (r layoutRepo) DeleteAll(_ context.Context) (int64, error) {
	if err := r.s.fail("mapLayouts.DeleteAll"); err != nil {
		return 0, err
	}
	n := int64(len(r.s.st.layouts))
	clear(r.s.st.layouts)
	return n, nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) RecordFailure(_ context.Context, job shared.FailedJob) error {
	if err := r.s.fail("notifications.RecordFailure"); err != nil {
		return err
	}
	for id, row := range r.s.st.jobs {
		if row.Kind == job.Kind && row.ReservationID == job.ReservationID {
			row.Payload = job.Payload
			row.Status = "failed"
			row.Attempts++
			row.LastError = job.LastError
			row.RunAt = job.RunAt
			r.s.st.jobs[id] = row
			return nil
		}
	}
	row := JobRow{
		ID:            uuid.New(),
		Kind:          job.Kind,
		ReservationID: job.ReservationID,
		Payload:       job.Payload,
		Status:        "failed",
		Attempts:      1,
		LastError:     job.LastError,
		RunAt:         job.RunAt,
	}
	r.s.st.jobs[row.ID] = row
	return nil
}

func (r notificationRepo) Enqueue(_ context.Context, job shared.QueuedJob) error {
	if err := r.s.fail("notifications.Enqueue"); err != nil {
		return err
	}
	for id, row := range r.s.st.jobs {
		if row.Kind == job.Kind && row.ReservationID == job.ReservationID {
			row.Payload = job.Payload
			row.Status = "queued"
			row.Attempts = 0
			row.LastError = ""
			row.RunAt = job.RunAt
			r.s.st.jobs[id] = row
			return nil
		}
	}
	row := JobRow{
		ID:            uuid.New(),
		Kind:          job.Kind,
		ReservationID: job.ReservationID,
		Payload:       job.Payload,
		Status:        "queued",
		RunAt:         job.RunAt,
	}
	r.s.st.jobs[row.ID] = row
	return nil
}

func (r notificationRepo) setStatus(id uuid.UUID, status, lastError string) error {
	row, ok := r.s.st.jobs[id]
	if !ok {
		return notFound()
	}
	row.Status = status
	row.LastError = lastError
	if status == "failed" {
		row.Attempts++
	}
	r.s.st.jobs[id] = row
	return nil
}

func (r notificationRepo) MarkDone(_ context.Context, id uuid.UUID) error {
	return r.setStatus(id, "done", "")
}

func (r notificationRepo) MarkFailed(_ context.Context, id uuid.UUID, lastError string) error {
	return r.setStatus(id, "failed", lastError)
}

func (r notificationRepo) MarkCancelled(_ context.Context, id uuid.UUID, reason string) error {
	return r.setStatus(id, "cancelled", reason)
}

// AddJob seeds a notification job row.
func (s *Store) AddJob(row JobRow) JobRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.Status == "" {
		row.Status = "failed"
	}
	s.st.jobs[row.ID] = row
	return row
}

// AddReservation seeds a reservation and marks its stall reserved.
func (s *Store) AddReservation(owner UserRow, stallID int64, createdAt time.Time, qr string) ReservationRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := ReservationRow{
		ID:             s.nextID(),
		UserID:         owner.ID,
		UserEmail:      owner.Email,
		StallID:        stallID,
		QRCodeFilename: qr,
		CreatedAt:      createdAt,
	}
	s.st.reservations[row.ID] = row
	st := s.st.stalls[stallID]
	st.Reserved = true
	s.st.stalls[stallID] = st
	return row
}
