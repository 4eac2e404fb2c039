package components

import (
	"bookfair-reservation/internal/infra/readstore"
	"bookfair-reservation/internal/infra/sqlstore"
	"bookfair-reservation/internal/infra/uow"
	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Repositories are bound per transaction inside the unit of work; only the
// pool-bound read stores are wired here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			func(q *sqlstore.Queries, db sqlstore.DBTX) *readstore.UserReadStore {
				return readstore.NewUserReadStore(q, db)
			},
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			func(q *sqlstore.Queries, db sqlstore.DBTX) *readstore.StallReadStore {
				return readstore.NewStallReadStore(q, db)
			},
			fx.As(new(queries.StallReadStore)),
		),
		fx.Annotate(
			func(q *sqlstore.Queries, db sqlstore.DBTX) *readstore.MapLayoutReadStore {
				return readstore.NewMapLayoutReadStore(q, db)
			},
			fx.As(new(queries.MapLayoutReadStore)),
		),
		fx.Annotate(
			func(q *sqlstore.Queries, db sqlstore.DBTX) *readstore.ReservationReadStore {
				return readstore.NewReservationReadStore(q, db)
			},
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			func(q *sqlstore.Queries, db sqlstore.DBTX) *readstore.BackfillReadStore {
				return readstore.NewBackfillReadStore(q, db)
			},
			fx.As(new(commands.BackfillReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlstore.Queries {
	return sqlstore.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlstore.DBTX {
	return pool
}
