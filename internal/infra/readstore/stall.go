package readstore

import (
	"context"

	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/pkg/pgconv"
	"bookfair-reservation/internal/usecase/queries"
)

type StallReadQueries interface {
	FindStallByID(ctx context.Context, db sqlstore.DBTX, id int64) (sqlstore.Stalls, error)
	ListStalls(ctx context.Context, db sqlstore.DBTX) ([]sqlstore.Stalls, error)
	ListAvailableStalls(ctx context.Context, db sqlstore.DBTX) ([]sqlstore.Stalls, error)
	CountStalls(ctx context.Context, db sqlstore.DBTX) (sqlstore.CountStallsRow, error)
}

type StallReadStore struct {
	queries StallReadQueries
	db      sqlstore.DBTX
}

func NewStallReadStore(queries StallReadQueries, db sqlstore.DBTX) *StallReadStore {
	return &StallReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StallReadStore) FindByID(ctx context.Context, id int64) (*queries.StallView, error) {
	row, err := r.queries.FindStallByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stall not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find stall", err)
	}
	view := toStallView(row)
	return &view, nil
}

func (r *StallReadStore) List(ctx context.Context) ([]queries.StallView, error) {
	rows, err := r.queries.ListStalls(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stalls", err)
	}
	return toStallViews(rows), nil
}

func (r *StallReadStore) ListAvailable(ctx context.Context) ([]queries.StallView, error) {
	rows, err := r.queries.ListAvailableStalls(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available stalls", err)
	}
	return toStallViews(rows), nil
}

func (r *StallReadStore) Counts(ctx context.Context) (*queries.StallCounts, error) {
	row, err := r.queries.CountStalls(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count stalls", err)
	}
	return &queries.StallCounts{Total: row.Total, Reserved: row.Reserved}, nil
}

func toStallViews(rows []sqlstore.Stalls) []queries.StallView {
	views := make([]queries.StallView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toStallView(row))
	}
	return views
}

func toStallView(row sqlstore.Stalls) queries.StallView {
	return queries.StallView{
		ID:       row.ID,
		Name:     row.Name,
		Size:     row.Size,
		X:        row.X,
		Y:        row.Y,
		Reserved: row.Reserved,
		Genres:   pgconv.StringFromPgtype(row.Genres),
	}
}
