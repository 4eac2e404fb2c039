package commands

import (
	"context"
	"log/slog"

	"bookfair-reservation/internal/domain/maplayout"
	"bookfair-reservation/internal/pkg/clock"
	"bookfair-reservation/internal/usecase/shared"
)

type SaveLayoutResult struct {
	ID            int64
	HallsCount    int
	TotalStalls   int
	CreatedStalls int
	UpdatedStalls int
	ErrorStalls   int
}

type MapLayoutCommands interface {
	// Save stores the document as the newest layout and upserts its stalls by
	// name. Malformed stall entries are skipped and counted.
	Save(ctx context.Context, raw []byte) (*SaveLayoutResult, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type mapLayoutCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMapLayoutCommands(uow shared.UnitOfWork, clk clock.Clock) MapLayoutCommands {
	return &mapLayoutCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (c *mapLayoutCommandsImpl) Save(ctx context.Context, raw []byte) (*SaveLayoutResult, error) {
	layout, err := maplayout.Parse(raw)
	if err != nil {
		return nil, err
	}

	for _, entryErr := range layout.Errors {
		slog.Warn("skipping stall entry", "hall", entryErr.Hall, "index", entryErr.Index, "error", entryErr.Err.Error())
	}

	result := SaveLayoutResult{
		HallsCount:  layout.HallsCount,
		TotalStalls: layout.TotalStalls,
		ErrorStalls: len(layout.Errors),
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// reset counters in case the transaction is retried
		result.CreatedStalls, result.UpdatedStalls = 0, 0

		id, err := tx.MapLayouts().Create(ctx, layout.Raw, c.clock.Now())
		if err != nil {
			return err
		}
		result.ID = id

		for _, entry := range layout.Stalls {
			_, created, err := tx.Stalls().UpsertByName(ctx, entry.Stall)
			if err != nil {
				return err
			}
			if created {
				result.CreatedStalls++
			} else {
				result.UpdatedStalls++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("map layout saved",
		"id", result.ID,
		"halls", result.HallsCount,
		"stalls", result.TotalStalls,
		"created", result.CreatedStalls,
		"updated", result.UpdatedStalls,
		"errors", result.ErrorStalls)
	return &result, nil
}

func (c *mapLayoutCommandsImpl) DeleteAll(ctx context.Context) (int64, error) {
	var deleted int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.MapLayouts().DeleteAll(ctx)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	return deleted, err
}
