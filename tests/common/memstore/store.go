//go:build unit

// Package memstore is an in-memory stand-in for the Postgres unit of work and
// read stores. Transactions are serialized and rolled back on error.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRow struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Genres       string
	DeletedAt    *time.Time
	CreatedAt    time.Time
}

type StallRow struct {
	ID       int64
	Name     string
	Size     string
	X, Y     int32
	Reserved bool
	Genres   string
}

type ReservationRow struct {
	ID             int64
	UserID         uuid.UUID
	UserEmail      string
	StallID        int64
	QRCodeFilename string
	CreatedAt      time.Time
}

type LayoutRow struct {
	ID         int64
	LayoutJSON string
	CreatedAt  time.Time
}

type JobRow struct {
	ID            uuid.UUID
	Kind          shared.JobKind
	ReservationID int64
	Payload       []byte
	Status        string
	Attempts      int32
	LastError     string
	RunAt         time.Time
}

type state struct {
	users        map[uuid.UUID]UserRow
	stalls       map[int64]StallRow
	reservations map[int64]ReservationRow
	layouts      map[int64]LayoutRow
	jobs         map[uuid.UUID]JobRow
	seq          int64
}

func (s state) clone() state {
	return state{
		users:        maps.Clone(s.users),
		stalls:       maps.Clone(s.stalls),
		reservations: maps.Clone(s.reservations),
		layouts:      maps.Clone(s.layouts),
		jobs:         maps.Clone(s.jobs),
		seq:          s.seq,
	}
}

type Store struct {
	mu       sync.Mutex
	st       state
	failures map[string]error
	commits  int
	ops      []string
	txLog    [][]string
}

func New() *Store {
	return &Store{
		st: state{
			users:        map[uuid.UUID]UserRow{},
			stalls:       map[int64]StallRow{},
			reservations: map[int64]ReservationRow{},
			layouts:      map[int64]LayoutRow{},
			jobs:         map[uuid.UUID]JobRow{},
		},
		failures: map[string]error{},
	}
}

// FailNext makes the next call of op (e.g. "reservations.Create") return err.
func (s *Store) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// fail records op in the running transaction and returns the error queued by
// FailNext, if any.
func (s *Store) fail(op string) error {
	s.ops = append(s.ops, op)
	if err, ok := s.failures[op]; ok {
		delete(s.failures, op)
		return err
	}
	return nil
}

func (s *Store) nextID() int64 {
	s.st.seq++
	return s.st.seq
}

func notFound() error {
	return infra.RepositoryError{Kind: infra.KindNotFound}
}

func duplicate() error {
	return infra.RepositoryError{Kind: infra.KindDuplicateKey}
}

// Within implements shared.UnitOfWork.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ops = nil
	defer func() { s.txLog = append(s.txLog, s.ops) }()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	s.commits++
	return nil
}

// Transactions returns the repository calls of every transaction run so far,
// in call order.
func (s *Store) Transactions() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.txLog))
	for i, ops := range s.txLog {
		out[i] = slices.Clone(ops)
	}
	return out
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error {
	return fn(ctx, nil)
}

// Seeding and inspection helpers. They take the lock themselves.

func (s *Store) AddUser(row UserRow) UserRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.Role == "" {
		row.Role = user.RoleUser.String()
	}
	s.st.users[row.ID] = row
	return row
}

func (s *Store) AddStall(name string, size stall.Size) StallRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := StallRow{ID: s.nextID(), Name: name, Size: size.String()}
	s.st.stalls[row.ID] = row
	return row
}

func (s *Store) User(id uuid.UUID) (UserRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.users[id]
	return row, ok
}

func (s *Store) Stall(id int64) (StallRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.stalls[id]
	return row, ok
}

func (s *Store) Reservations() []ReservationRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := slices.Collect(maps.Values(s.st.reservations))
	slices.SortFunc(rows, func(a, b ReservationRow) int { return int(a.ID - b.ID) })
	return rows
}

func (s *Store) Jobs() []JobRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := slices.Collect(maps.Values(s.st.jobs))
	slices.SortFunc(rows, func(a, b JobRow) int { return int(a.ReservationID - b.ReservationID) })
	return rows
}

func (s *Store) Layouts() []LayoutRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := slices.Collect(maps.Values(s.st.layouts))
	slices.SortFunc(rows, func(a, b LayoutRow) int { return int(a.ID - b.ID) })
	return rows
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// CheckConsistency reports stalls whose reserved flag disagrees with the
// reservation table.
func (s *Store) CheckConsistency() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := map[int64]int{}
	for _, r := range s.st.reservations {
		held[r.StallID]++
	}
	var broken []int64
	for id, st := range s.st.stalls {
		if st.Reserved != (held[id] == 1) || held[id] > 1 {
			broken = append(broken, id)
		}
	}
	slices.Sort(broken)
	return broken
}

func toReservation(row ReservationRow) *reservation.Reservation {
	return reservation.Reconstruct(row.ID, reservation.UserRef{ID: row.UserID, Email: row.UserEmail},
		row.StallID, row.CreatedAt, row.QRCodeFilename)
}

func toStall(row StallRow) *stall.Stall {
	return stall.Reconstruct(row.ID, row.Name, stall.Size(row.Size), row.X, row.Y, row.Reserved, row.Genres)
}

func (s *Store) StallByName(name string) (StallRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.st.stalls {
		if row.Name == name {
			return row, true
		}
	}
	return StallRow{}, false
}
