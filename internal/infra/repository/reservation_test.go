//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) AcquireUserReservationLock(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) error {
	return m.Called(ctx, db, userID).Error(0)
}

func (m *MockReservationWriteQueries) CountReservationsByUser(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) LockReservationByID(ctx context.Context, db sqlstore.DBTX, id int64) (sqlstore.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlstore.Reservations), args.Error(1)
}

func (m *MockReservationWriteQueries) DeleteReservation(ctx context.Context, db sqlstore.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) DeleteReservationsByUser(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) ([]int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReservationWriteQueries) DeleteAllReservations(ctx context.Context, db sqlstore.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservationQRCode(ctx context.Context, db sqlstore.DBTX, id int64, filename string) (int64, error) {
	args := m.Called(ctx, db, id, filename)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) UserHoldsStall(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID, stallID int64) (bool, error) {
	args := m.Called(ctx, db, userID, stallID)
	return args.Bool(0), args.Error(1)
}

func TestReservationRepository_Create(t *testing.T) {
	owner, err := reservation.NewUserRef(uuid.New(), "vendor@example.com")
	require.NoError(t, err)
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	res, err := reservation.NewReservation(owner, 4, now)
	require.NoError(t, err)

	params := sqlstore.CreateReservationParams{
		UserID:    owner.ID,
		UserEmail: owner.Email,
		StallID:   4,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}

	t.Run("success", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("CreateReservation", mock.Anything, mock.Anything, params).Return(int64(21), nil)

		id, err := NewReservationRepository(q, nil).Create(context.Background(), res)

		require.NoError(t, err)
		assert.Equal(t, int64(21), id)
		q.AssertExpectations(t)
	})

	t.Run("unique stall index maps to duplicate key", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("CreateReservation", mock.Anything, mock.Anything, params).
			Return(int64(0), &pgconn.PgError{Code: "23505", ConstraintName: "reservations_stall_id_key"})

		_, err := NewReservationRepository(q, nil).Create(context.Background(), res)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestReservationRepository_LockByID(t *testing.T) {
	userID := uuid.New()
	created := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	q := new(MockReservationWriteQueries)
	q.On("LockReservationByID", mock.Anything, mock.Anything, int64(8)).Return(sqlstore.Reservations{
		ID:             8,
		UserID:         userID,
		UserEmail:      "vendor@example.com",
		StallID:        2,
		QrCodeFilename: pgtype.Text{String: "qr_8.png", Valid: true},
		CreatedAt:      pgtype.Timestamptz{Time: created, Valid: true},
	}, nil)

	got, err := NewReservationRepository(q, nil).LockByID(context.Background(), 8)

	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ID())
	assert.Equal(t, userID, got.Owner().ID)
	assert.Equal(t, int64(2), got.StallID())
	assert.True(t, got.HasQRCode())
	assert.Equal(t, created, got.CreatedAt())
}

func TestReservationRepository_Delete(t *testing.T) {
	q := new(MockReservationWriteQueries)
	q.On("DeleteReservation", mock.Anything, mock.Anything, int64(8)).Return(int64(0), nil)

	err := NewReservationRepository(q, nil).Delete(context.Background(), 8)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
