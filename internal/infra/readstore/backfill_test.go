//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/usecase/shared"
	"bookfair-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBackfillReadQueries struct {
	mock.Mock
}

func (m *MockBackfillReadQueries) ListPendingNotificationJobs(ctx context.Context, db sqlstore.DBTX, maxAttempts int32, now pgtype.Timestamptz, limit int32) ([]sqlstore.NotificationJobs, error) {
	args := m.Called(ctx, db, maxAttempts, now, limit)
	return args.Get(0).([]sqlstore.NotificationJobs), args.Error(1)
}

func (m *MockBackfillReadQueries) ListReservationsMissingQR(ctx context.Context, db sqlstore.DBTX, before pgtype.Timestamptz, limit int32) ([]sqlstore.Reservations, error) {
	args := m.Called(ctx, db, before, limit)
	return args.Get(0).([]sqlstore.Reservations), args.Error(1)
}

func (m *MockBackfillReadQueries) FindReservationByID(ctx context.Context, db sqlstore.DBTX, id int64) (sqlstore.ReservationWithStallRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlstore.ReservationWithStallRow), args.Error(1)
}

func (m *MockBackfillReadQueries) ListDeletedUserIDs(ctx context.Context, db sqlstore.DBTX, before pgtype.Timestamptz, limit int32) ([]uuid.UUID, error) {
	args := m.Called(ctx, db, before, limit)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func TestPendingJobs(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	jobID := uuid.New()

	mockQueries := new(MockBackfillReadQueries)
	mockQueries.On("ListPendingNotificationJobs", mock.Anything, mock.Anything, int32(5), pgtype.Timestamptz{Time: now, Valid: true}, int32(10)).
		Return([]sqlstore.NotificationJobs{{ID: jobID, Kind: "qr", ReservationID: 7, Attempts: 2}}, nil)

	jobs, err := NewBackfillReadStore(mockQueries, nil).PendingJobs(context.Background(), 5, now, 10)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, shared.PendingJob{ID: jobID, Kind: shared.JobQRCode, ReservationID: 7, Attempts: 2}, jobs[0])
	mockQueries.AssertExpectations(t)
}

func TestReservationsMissingQR(t *testing.T) {
	before := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	kept := builder.NewReservationBuilder().BuildInfra()

	mockQueries := new(MockBackfillReadQueries)
	mockQueries.On("ListReservationsMissingQR", mock.Anything, mock.Anything, mock.Anything, int32(10)).
		Return([]sqlstore.Reservations{{ID: kept.ID}, {ID: 99}}, nil)
	mockQueries.On("FindReservationByID", mock.Anything, mock.Anything, kept.ID).Return(kept, nil)
	mockQueries.On("FindReservationByID", mock.Anything, mock.Anything, int64(99)).Return(sqlstore.ReservationWithStallRow{}, pgx.ErrNoRows)

	views, err := NewBackfillReadStore(mockQueries, nil).ReservationsMissingQR(context.Background(), before, 10)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, kept.StallName, views[0].StallName)
	mockQueries.AssertExpectations(t)
}

func TestDeletedUserIDs_DBFailure(t *testing.T) {
	mockQueries := new(MockBackfillReadQueries)
	mockQueries.On("ListDeletedUserIDs", mock.Anything, mock.Anything, mock.Anything, int32(10)).
		Return([]uuid.UUID(nil), assert.AnError)

	ids, err := NewBackfillReadStore(mockQueries, nil).DeletedUserIDs(context.Background(), time.Now(), 10)

	assert.Nil(t, ids)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
