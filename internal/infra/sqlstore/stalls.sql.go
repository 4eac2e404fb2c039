package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const stallColumns = `id, name, size, x, y, reserved, genres, created_at, updated_at`

func scanStall(row interface{ Scan(...any) error }) (Stalls, error) {
	var i Stalls
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Size,
		&i.X,
		&i.Y,
		&i.Reserved,
		&i.Genres,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectStalls(ctx context.Context, db DBTX, query string, args ...interface{}) ([]Stalls, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Stalls
	for rows.Next() {
		i, err := scanStall(rows)
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

// The reserved flag is only written on insert; updates leave it to the allocator.
const upsertStallByName = `-- name: UpsertStallByName :one
INSERT INTO stalls (name, size, x, y, genres)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE
SET size       = EXCLUDED.size,
    x          = EXCLUDED.x,
    y          = EXCLUDED.y,
    genres     = COALESCE(EXCLUDED.genres, stalls.genres),
    updated_at = now()
RETURNING id, (xmax = 0) AS inserted
`

type UpsertStallByNameParams struct {
	Name   string      `json:"name"`
	Size   string      `json:"size"`
	X      int32       `json:"x"`
	Y      int32       `json:"y"`
	Genres pgtype.Text `json:"genres"`
}

type UpsertStallByNameRow struct {
	ID       int64 `json:"id"`
	Inserted bool  `json:"inserted"`
}

func (q *Queries) UpsertStallByName(ctx context.Context, db DBTX, arg UpsertStallByNameParams) (UpsertStallByNameRow, error) {
	row := db.QueryRow(ctx, upsertStallByName,
		arg.Name,
		arg.Size,
		arg.X,
		arg.Y,
		arg.Genres,
	)
	var i UpsertStallByNameRow
	err := row.Scan(&i.ID, &i.Inserted)
	return i, err
}

const findStallByID = `-- name: FindStallByID :one
SELECT ` + stallColumns + `
FROM stalls
WHERE id = $1
`

func (q *Queries) FindStallByID(ctx context.Context, db DBTX, id int64) (Stalls, error) {
	return scanStall(db.QueryRow(ctx, findStallByID, id))
}

const lockStallByID = `-- name: LockStallByID :one
SELECT ` + stallColumns + `
FROM stalls
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockStallByID(ctx context.Context, db DBTX, id int64) (Stalls, error) {
	return scanStall(db.QueryRow(ctx, lockStallByID, id))
}

const listStalls = `-- name: ListStalls :many
SELECT ` + stallColumns + `
FROM stalls
ORDER BY id
`

func (q *Queries) ListStalls(ctx context.Context, db DBTX) ([]Stalls, error) {
	return collectStalls(ctx, db, listStalls)
}

const listAvailableStalls = `-- name: ListAvailableStalls :many
SELECT ` + stallColumns + `
FROM stalls
WHERE reserved = FALSE
ORDER BY id
`

func (q *Queries) ListAvailableStalls(ctx context.Context, db DBTX) ([]Stalls, error) {
	return collectStalls(ctx, db, listAvailableStalls)
}

const setStallReserved = `-- name: SetStallReserved :execrows
UPDATE stalls
SET reserved = $2, updated_at = now()
WHERE id = $1
`

func (q *Queries) SetStallReserved(ctx context.Context, db DBTX, id int64, reserved bool) (int64, error) {
	result, err := db.Exec(ctx, setStallReserved, id, reserved)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const releaseStalls = `-- name: ReleaseStalls :execrows
UPDATE stalls
SET reserved = FALSE, updated_at = now()
WHERE id = ANY($1::bigint[])
`

func (q *Queries) ReleaseStalls(ctx context.Context, db DBTX, ids []int64) (int64, error) {
	result, err := db.Exec(ctx, releaseStalls, ids)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const resetAllStalls = `-- name: ResetAllStalls :execrows
UPDATE stalls
SET reserved = FALSE, updated_at = now()
WHERE reserved = TRUE
`

func (q *Queries) ResetAllStalls(ctx context.Context, db DBTX) (int64, error) {
	result, err := db.Exec(ctx, resetAllStalls)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteAllStalls = `-- name: DeleteAllStalls :execrows
DELETE FROM stalls
`

func (q *Queries) DeleteAllStalls(ctx context.Context, db DBTX) (int64, error) {
	result, err := db.Exec(ctx, deleteAllStalls)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countStalls = `-- name: CountStalls :one
SELECT
    count(*)                             AS total,
    count(*) FILTER (WHERE reserved)     AS reserved
FROM stalls
`

type CountStallsRow struct {
	Total    int64 `json:"total"`
	Reserved int64 `json:"reserved"`
}

func (q *Queries) CountStalls(ctx context.Context, db DBTX) (CountStallsRow, error) {
	row := db.QueryRow(ctx, countStalls)
	var i CountStallsRow
	err := row.Scan(&i.Total, &i.Reserved)
	return i, err
}

const updateStallGenres = `-- name: UpdateStallGenres :execrows
UPDATE stalls
SET genres = $2, updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdateStallGenres(ctx context.Context, db DBTX, id int64, genres pgtype.Text) (int64, error) {
	result, err := db.Exec(ctx, updateStallGenres, id, genres)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
