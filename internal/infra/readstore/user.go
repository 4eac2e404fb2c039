package readstore

import (
	"context"

	"github.com/google/uuid"

	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/pkg/pgconv"
	"bookfair-reservation/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Users, error)
	FindUserByEmail(ctx context.Context, db sqlstore.DBTX, email string) (sqlstore.Users, error)
	ListUsers(ctx context.Context, db sqlstore.DBTX) ([]sqlstore.Users, error)
	CountUsersByRole(ctx context.Context, db sqlstore.DBTX) (sqlstore.CountUsersByRoleRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlstore.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlstore.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, error) {
	view, _, err := r.FindCredentials(ctx, email)
	return view, err
}

func (r *UserReadStore) FindCredentials(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, *toUserView(row))
	}
	return views, nil
}

func (r *UserReadStore) CountByRole(ctx context.Context) (int64, int64, error) {
	row, err := r.queries.CountUsersByRole(ctx, r.db)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count users", err)
	}
	return row.Total, row.Admins, nil
}

func toUserView(row sqlstore.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		Role:      row.Role,
		Genres:    pgconv.StringFromPgtype(row.Genres),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
