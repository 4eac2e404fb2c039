package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"bookfair-reservation/internal/pkg/config"
	"bookfair-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var BackfillModule = fx.Module("backfill",
	fx.Invoke(startBackfill),
)

// startBackfill runs the sweep on a ticker until shutdown. A zero interval
// disables it.
func startBackfill(lc fx.Lifecycle, cfg config.Config, backfill commands.BackfillCommands) {
	interval := cfg.Backfill.Interval
	if interval <= 0 {
		slog.Info("backfill sweep disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if _, err := backfill.Sweep(ctx); err != nil && ctx.Err() == nil {
							slog.Error("backfill sweep failed", "error", err.Error())
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
