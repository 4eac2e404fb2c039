package queries

import (
	"context"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/infra"

	"github.com/google/uuid"
)

var ErrUserNotFound = user.ErrNotFound

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	GetByEmail(ctx context.Context, email string) (*UserView, error)
	List(ctx context.Context) ([]UserView, error)
	Stats(ctx context.Context) (*UserStats, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, error)
	// FindCredentials returns the stored bcrypt hash next to the profile.
	FindCredentials(ctx context.Context, email string) (*UserView, string, error)
	List(ctx context.Context) ([]UserView, error)
	CountByRole(ctx context.Context) (total, admins int64, err error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (q *userQueriesImpl) GetByEmail(ctx context.Context, email string) (*UserView, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := q.readStore.FindByEmail(ctx, addr.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]UserView, error) {
	return q.readStore.List(ctx)
}

func (q *userQueriesImpl) Stats(ctx context.Context) (*UserStats, error) {
	total, admins, err := q.readStore.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	return &UserStats{
		TotalUsers:   total,
		AdminUsers:   admins,
		RegularUsers: total - admins,
	}, nil
}
