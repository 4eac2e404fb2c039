package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, username, email, password_hash, role, genres, deleted_at, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Username,
		&i.Email,
		&i.PasswordHash,
		&i.Role,
		&i.Genres,
		&i.DeletedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (id, username, email, password_hash, role, genres, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING id
`

type CreateUserParams struct {
	ID           uuid.UUID          `json:"id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	Genres       pgtype.Text        `json:"genres"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createUser,
		arg.ID,
		arg.Username,
		arg.Email,
		arg.PasswordHash,
		arg.Role,
		arg.Genres,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const findUserByID = `-- name: FindUserByID :one
SELECT ` + userColumns + `
FROM users
WHERE id = $1 AND deleted_at IS NULL
`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT ` + userColumns + `
FROM users
WHERE email = $1 AND deleted_at IS NULL
`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByEmail, email))
}

const listUsers = `-- name: ListUsers :many
SELECT ` + userColumns + `
FROM users
WHERE deleted_at IS NULL
ORDER BY created_at, id
`

func (q *Queries) ListUsers(ctx context.Context, db DBTX) ([]Users, error) {
	rows, err := db.Query(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Users
	for rows.Next() {
		i, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateUserRole = `-- name: UpdateUserRole :execrows
UPDATE users
SET role = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
`

func (q *Queries) UpdateUserRole(ctx context.Context, db DBTX, id uuid.UUID, role string) (int64, error) {
	result, err := db.Exec(ctx, updateUserRole, id, role)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateUserGenres = `-- name: UpdateUserGenres :execrows
UPDATE users
SET genres = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
`

func (q *Queries) UpdateUserGenres(ctx context.Context, db DBTX, id uuid.UUID, genres pgtype.Text) (int64, error) {
	result, err := db.Exec(ctx, updateUserGenres, id, genres)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const markUserDeleted = `-- name: MarkUserDeleted :execrows
UPDATE users
SET deleted_at = $2, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL
`

func (q *Queries) MarkUserDeleted(ctx context.Context, db DBTX, id uuid.UUID, deletedAt pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, markUserDeleted, id, deletedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const lockActiveUser = `-- name: LockActiveUser :execrows
SELECT id FROM users
WHERE id = $1 AND deleted_at IS NULL
FOR SHARE
`

func (q *Queries) LockActiveUser(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, lockActiveUser, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const purgeUser = `-- name: PurgeUser :execrows
DELETE FROM users
WHERE id = $1 AND deleted_at IS NOT NULL
`

func (q *Queries) PurgeUser(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, purgeUser, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listDeletedUserIDs = `-- name: ListDeletedUserIDs :many
SELECT id
FROM users
WHERE deleted_at IS NOT NULL AND deleted_at < $1
ORDER BY deleted_at
LIMIT $2
`

func (q *Queries) ListDeletedUserIDs(ctx context.Context, db DBTX, before pgtype.Timestamptz, limit int32) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listDeletedUserIDs, before, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countUsersByRole = `-- name: CountUsersByRole :one
SELECT
    count(*)                                  AS total,
    count(*) FILTER (WHERE role = 'ADMIN')    AS admins
FROM users
WHERE deleted_at IS NULL
`

type CountUsersByRoleRow struct {
	Total  int64 `json:"total"`
	Admins int64 `json:"admins"`
}

func (q *Queries) CountUsersByRole(ctx context.Context, db DBTX) (CountUsersByRoleRow, error) {
	row := db.QueryRow(ctx, countUsersByRole)
	var i CountUsersByRoleRow
	err := row.Scan(&i.Total, &i.Admins)
	return i, err
}
