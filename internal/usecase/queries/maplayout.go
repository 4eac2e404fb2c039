package queries

import (
	"context"

	"bookfair-reservation/internal/domain/maplayout"
	"bookfair-reservation/internal/infra"
)

type MapLayoutQueries interface {
	// GetLatest returns the most recent layout document, or an empty one.
	GetLatest(ctx context.Context) (string, error)
}

type MapLayoutReadStore interface {
	FindLatest(ctx context.Context) (*MapLayoutView, error)
}

type mapLayoutQueriesImpl struct {
	readStore MapLayoutReadStore
}

func NewMapLayoutQueries(readStore MapLayoutReadStore) MapLayoutQueries {
	return &mapLayoutQueriesImpl{
		readStore: readStore,
	}
}

func (q *mapLayoutQueriesImpl) GetLatest(ctx context.Context) (string, error) {
	layout, err := q.readStore.FindLatest(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return maplayout.EmptyLayout, nil
		}
		return "", err
	}
	return layout.LayoutJSON, nil
}
