//go:build unit

package repository

import (
	"context"
	"testing"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserRole(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, role string) (int64, error) {
	args := m.Called(ctx, db, id, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserGenres(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, genres pgtype.Text) (int64, error) {
	args := m.Called(ctx, db, id, genres)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserWriteQueries) MarkUserDeleted(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, deletedAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, id, deletedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserWriteQueries) PurgeUser(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserWriteQueries) LockActiveUser(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserRepository_LockActive(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		rows      int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "active user", rows: 1},
		{name: "deleted or missing user", rows: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserWriteQueries)
			q.On("LockActiveUser", mock.Anything, mock.Anything, id).Return(tt.rows, tt.mockError)

			err := NewUserRepository(q, nil).LockActive(context.Background(), id)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			q.AssertExpectations(t)
		})
	}
}

func TestUserRepository_UpdateRole(t *testing.T) {
	id := uuid.New()
	q := new(MockUserWriteQueries)
	q.On("UpdateUserRole", mock.Anything, mock.Anything, id, "ADMIN").Return(int64(0), nil)

	err := NewUserRepository(q, nil).UpdateRole(context.Background(), id, user.RoleAdmin)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
