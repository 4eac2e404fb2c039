package repository

import (
	"context"
	"time"

	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type MapLayoutWriteQueries interface {
	CreateMapLayout(ctx context.Context, db sqlstore.DBTX, layoutJSON string, createdAt pgtype.Timestamptz) (int64, error)
	DeleteAllMapLayouts(ctx context.Context, db sqlstore.DBTX) (int64, error)
}

type MapLayoutRepository struct {
	queries MapLayoutWriteQueries
	db      sqlstore.DBTX
}

func NewMapLayoutRepository(queries MapLayoutWriteQueries, db sqlstore.DBTX) *MapLayoutRepository {
	return &MapLayoutRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MapLayoutRepository) Create(ctx context.Context, layoutJSON string, at time.Time) (int64, error) {
	id, err := r.queries.CreateMapLayout(ctx, r.db, layoutJSON, pgconv.TimeToPgtype(at))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create map layout", err)
	}
	return id, nil
}

func (r *MapLayoutRepository) DeleteAll(ctx context.Context) (int64, error) {
	n, err := r.queries.DeleteAllMapLayouts(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete map layouts", err)
	}
	return n, nil
}
