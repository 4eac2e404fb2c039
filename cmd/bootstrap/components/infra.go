package components

import (
	"context"
	"log/slog"

	"bookfair-reservation/internal/infra/mailer"
	"bookfair-reservation/internal/infra/qr"
	"bookfair-reservation/internal/pkg/clock"
	"bookfair-reservation/internal/pkg/config"
	"bookfair-reservation/internal/pkg/metrics"
	"bookfair-reservation/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const metricsNamespace = "bookfair"

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewRegistry,
		NewMetrics,
		NewRedisClient,
		mailer.New,
		fx.Annotate(
			qr.NewFileStore,
			fx.As(new(commands.QRStore)),
		),
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.New(reg, metricsNamespace)
}

// NewRedisClient returns nil when no address is configured; the rate limiter
// then lets every request through.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		slog.Info("redis not configured, rate limiting disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("redis unreachable, rate limiter fails open", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}
