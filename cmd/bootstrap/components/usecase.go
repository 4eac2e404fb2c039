package components

import (
	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/pkg/clock"
	"bookfair-reservation/internal/pkg/config"
	"bookfair-reservation/internal/pkg/metrics"
	"bookfair-reservation/internal/pkg/password"
	"bookfair-reservation/internal/usecase"
	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/internal/usecase/notify"
	"bookfair-reservation/internal/usecase/queries"
	"bookfair-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		password.NewBcryptHasher,
		fx.As(new(password.Hasher)),
	),
	func(cfg config.Config) (reservation.Quota, error) {
		return reservation.NewQuota(cfg.Reservation.MaxPerUser)
	},
	func(mailer notify.Mailer, cfg config.Config) notify.Dispatcher {
		return notify.NewDispatcher(mailer, cfg.Reservation.MaxPerUser)
	},
	func(cfg config.Config) commands.BackfillOptions {
		return commands.BackfillOptions{
			GracePeriod: cfg.Backfill.GracePeriod,
			BatchSize:   cfg.Backfill.BatchSize,
			MaxAttempts: cfg.Backfill.MaxAttempts,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewStallCommands,
		commands.NewMapLayoutCommands,
		commands.NewReservationCommands,
		commands.NewBackfillCommands,
		newSideEffects,
		// user deletion frees stalls through the allocator
		func(r commands.ReservationCommands) commands.ReservationReleaser { return r },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewStallQueries,
		queries.NewMapLayoutQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newSideEffects(
	uow shared.UnitOfWork,
	notifier notify.Dispatcher,
	qr commands.QRStore,
	cfg config.Config,
	clk clock.Clock,
	m *metrics.Metrics,
) *commands.SideEffects {
	return commands.NewSideEffects(uow, notifier, qr, cfg.Reservation.SideEffectTimeout, clk, m)
}
