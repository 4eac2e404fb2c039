package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"bookfair-reservation/internal/gateway"
	"bookfair-reservation/internal/handler/middleware"
	"bookfair-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func newEngine(cfg config.GatewayConfig, logger *middleware.Logger, gw *gateway.Gateway) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.CustomRecovery(),
		middleware.NewCORSMiddleware(cfg.CORS),
		logger.LoggingMiddleware(),
	)
	gw.Register(engine)
	return engine
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.GatewayConfig) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("🚀 ゲートウェイを起動します",
				"address", srv.Addr,
				"core", cfg.CoreURL,
				"email", cfg.EmailURL)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("ゲートウェイの起動に失敗しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("🛑 ゲートウェイを停止します")
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadGatewayConfig,
			func(cfg config.GatewayConfig) *middleware.Logger { return middleware.NewLogger(cfg.Log) },
			gateway.New,
			newEngine,
		),
		fx.Invoke(startServer),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("ゲートウェイの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("ゲートウェイの停止に失敗しました", "error", err)
	}
}
