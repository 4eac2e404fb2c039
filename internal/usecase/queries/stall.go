package queries

import (
	"context"

	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/infra"
)

var ErrStallNotFound = stall.ErrNotFound

type StallQueries interface {
	GetByID(ctx context.Context, id int64) (*StallView, error)
	ListAll(ctx context.Context) ([]StallView, error)
	ListAvailable(ctx context.Context) ([]StallView, error)
}

type StallReadStore interface {
	FindByID(ctx context.Context, id int64) (*StallView, error)
	List(ctx context.Context) ([]StallView, error)
	ListAvailable(ctx context.Context) ([]StallView, error)
	Counts(ctx context.Context) (*StallCounts, error)
}

type stallQueriesImpl struct {
	readStore StallReadStore
}

func NewStallQueries(readStore StallReadStore) StallQueries {
	return &stallQueriesImpl{
		readStore: readStore,
	}
}

func (q *stallQueriesImpl) GetByID(ctx context.Context, id int64) (*StallView, error) {
	s, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStallNotFound
		}
		return nil, err
	}
	return s, nil
}

func (q *stallQueriesImpl) ListAll(ctx context.Context) ([]StallView, error) {
	return q.readStore.List(ctx)
}

func (q *stallQueriesImpl) ListAvailable(ctx context.Context) ([]StallView, error) {
	return q.readStore.ListAvailable(ctx)
}
