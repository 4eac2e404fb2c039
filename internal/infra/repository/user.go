package repository

import (
	"context"
	"time"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateUserParams) (uuid.UUID, error)
	UpdateUserRole(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, role string) (int64, error)
	UpdateUserGenres(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, genres pgtype.Text) (int64, error)
	MarkUserDeleted(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, deletedAt pgtype.Timestamptz) (int64, error)
	PurgeUser(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (int64, error)
	LockActiveUser(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlstore.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlstore.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.CreateUser(ctx, r.db, sqlstore.CreateUserParams{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Genres:       pgconv.StringToNullableText(u.Genres()),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	n, err := r.queries.UpdateUserRole(ctx, r.db, id, role.String())
	return expectOne("update user role", n, err)
}

func (r *UserRepository) UpdateGenres(ctx context.Context, id uuid.UUID, genres string) error {
	n, err := r.queries.UpdateUserGenres(ctx, r.db, id, pgconv.StringToNullableText(genres))
	return expectOne("update user genres", n, err)
}

func (r *UserRepository) MarkDeleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := r.queries.MarkUserDeleted(ctx, r.db, id, pgconv.TimeToPgtype(at))
	return expectOne("mark user deleted", n, err)
}

func (r *UserRepository) Purge(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.PurgeUser(ctx, r.db, id)
	return expectOne("purge user", n, err)
}

// LockActive holds a share lock on the user row until the transaction ends,
// so the user cannot be marked deleted underneath it.
func (r *UserRepository) LockActive(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.LockActiveUser(ctx, r.db, id)
	return expectOne("lock active user", n, err)
}
