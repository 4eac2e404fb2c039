package readstore

import (
	"context"

	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/pkg/pgconv"
	"bookfair-reservation/internal/usecase/queries"
)

type MapLayoutReadQueries interface {
	FindLatestMapLayout(ctx context.Context, db sqlstore.DBTX) (sqlstore.MapLayouts, error)
}

type MapLayoutReadStore struct {
	queries MapLayoutReadQueries
	db      sqlstore.DBTX
}

func NewMapLayoutReadStore(queries MapLayoutReadQueries, db sqlstore.DBTX) *MapLayoutReadStore {
	return &MapLayoutReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MapLayoutReadStore) FindLatest(ctx context.Context) (*queries.MapLayoutView, error) {
	row, err := r.queries.FindLatestMapLayout(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("map layout not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest map layout", err)
	}
	return &queries.MapLayoutView{
		ID:         row.ID,
		LayoutJSON: row.LayoutJson,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
