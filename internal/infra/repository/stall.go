package repository

import (
	"context"

	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type StallWriteQueries interface {
	LockStallByID(ctx context.Context, db sqlstore.DBTX, id int64) (sqlstore.Stalls, error)
	SetStallReserved(ctx context.Context, db sqlstore.DBTX, id int64, reserved bool) (int64, error)
	ReleaseStalls(ctx context.Context, db sqlstore.DBTX, ids []int64) (int64, error)
	ResetAllStalls(ctx context.Context, db sqlstore.DBTX) (int64, error)
	DeleteAllStalls(ctx context.Context, db sqlstore.DBTX) (int64, error)
	UpsertStallByName(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpsertStallByNameParams) (sqlstore.UpsertStallByNameRow, error)
	UpdateStallGenres(ctx context.Context, db sqlstore.DBTX, id int64, genres pgtype.Text) (int64, error)
}

type StallRepository struct {
	queries StallWriteQueries
	db      sqlstore.DBTX
}

func NewStallRepository(queries StallWriteQueries, db sqlstore.DBTX) *StallRepository {
	return &StallRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StallRepository) LockByID(ctx context.Context, id int64) (*stall.Stall, error) {
	row, err := r.queries.LockStallByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock stall", err)
	}
	return toStallEntity(row), nil
}

func (r *StallRepository) SetReserved(ctx context.Context, id int64, reserved bool) error {
	n, err := r.queries.SetStallReserved(ctx, r.db, id, reserved)
	return expectOne("set stall reserved flag", n, err)
}

func (r *StallRepository) ReleaseMany(ctx context.Context, ids []int64) (int64, error) {
	n, err := r.queries.ReleaseStalls(ctx, r.db, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release stalls", err)
	}
	return n, nil
}

func (r *StallRepository) ResetAll(ctx context.Context) (int64, error) {
	n, err := r.queries.ResetAllStalls(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reset stalls", err)
	}
	return n, nil
}

func (r *StallRepository) DeleteAll(ctx context.Context) (int64, error) {
	n, err := r.queries.DeleteAllStalls(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete stalls", err)
	}
	return n, nil
}

func (r *StallRepository) UpsertByName(ctx context.Context, s *stall.Stall) (int64, bool, error) {
	row, err := r.queries.UpsertStallByName(ctx, r.db, sqlstore.UpsertStallByNameParams{
		Name:   s.Name(),
		Size:   s.Size().String(),
		X:      s.X(),
		Y:      s.Y(),
		Genres: pgconv.StringToNullableText(s.Genres()),
	})
	if err != nil {
		return 0, false, infra.WrapRepoErr("failed to upsert stall", err)
	}
	return row.ID, row.Inserted, nil
}

func (r *StallRepository) UpdateGenres(ctx context.Context, id int64, genres string) error {
	n, err := r.queries.UpdateStallGenres(ctx, r.db, id, pgconv.StringToNullableText(genres))
	return expectOne("update stall genres", n, err)
}

func toStallEntity(row sqlstore.Stalls) *stall.Stall {
	return stall.Reconstruct(
		row.ID,
		row.Name,
		stall.Size(row.Size),
		row.X,
		row.Y,
		row.Reserved,
		pgconv.StringFromPgtype(row.Genres),
	)
}
