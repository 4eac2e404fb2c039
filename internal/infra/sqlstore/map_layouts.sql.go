package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createMapLayout = `-- name: CreateMapLayout :one
INSERT INTO map_layouts (layout_json, created_at, updated_at)
VALUES ($1, $2, $2)
RETURNING id
`

func (q *Queries) CreateMapLayout(ctx context.Context, db DBTX, layoutJSON string, createdAt pgtype.Timestamptz) (int64, error) {
	row := db.QueryRow(ctx, createMapLayout, layoutJSON, createdAt)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const findLatestMapLayout = `-- name: FindLatestMapLayout :one
SELECT id, layout_json, created_at, updated_at
FROM map_layouts
ORDER BY created_at DESC, id DESC
LIMIT 1
`

func (q *Queries) FindLatestMapLayout(ctx context.Context, db DBTX) (MapLayouts, error) {
	row := db.QueryRow(ctx, findLatestMapLayout)
	var i MapLayouts
	err := row.Scan(
		&i.ID,
		&i.LayoutJson,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteAllMapLayouts = `-- name: DeleteAllMapLayouts :execrows
DELETE FROM map_layouts
`

func (q *Queries) DeleteAllMapLayouts(ctx context.Context, db DBTX) (int64, error) {
	result, err := db.Exec(ctx, deleteAllMapLayouts)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
