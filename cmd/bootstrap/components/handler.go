package components

import (
	"bookfair-reservation/internal/handler"
	"bookfair-reservation/internal/handler/api"
	"bookfair-reservation/internal/handler/middleware"
	"bookfair-reservation/internal/pkg/clock"
	"bookfair-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		api.NewEmailHandler,
		middleware.NewAuthMiddleware,
		func(rdb *redis.Client, cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(rdb, cfg.RateLimit, clk)
		},
	),
	fx.Invoke(handler.NewRouter),
)
