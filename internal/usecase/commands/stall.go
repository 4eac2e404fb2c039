package commands

import (
	"context"

	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/usecase/shared"
)

type UpsertStallResult struct {
	ID      int64
	Created bool
}

type DeleteStallsResult struct {
	DeletedStalls       int64
	DeletedReservations int64
}

type StallCommands interface {
	UpsertByName(ctx context.Context, s *stall.Stall) (*UpsertStallResult, error)
	// DeleteAll removes every stall together with the reservations on them.
	DeleteAll(ctx context.Context) (*DeleteStallsResult, error)
}

type stallCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewStallCommands(uow shared.UnitOfWork) StallCommands {
	return &stallCommandsImpl{uow: uow}
}

func (c *stallCommandsImpl) UpsertByName(ctx context.Context, s *stall.Stall) (*UpsertStallResult, error) {
	var result UpsertStallResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, created, err := tx.Stalls().UpsertByName(ctx, s)
		if err != nil {
			return err
		}
		result = UpsertStallResult{ID: id, Created: created}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *stallCommandsImpl) DeleteAll(ctx context.Context) (*DeleteStallsResult, error) {
	var result DeleteStallsResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reservations, err := tx.Reservations().DeleteAll(ctx)
		if err != nil {
			return err
		}
		stalls, err := tx.Stalls().DeleteAll(ctx)
		if err != nil {
			return err
		}
		result = DeleteStallsResult{DeletedStalls: stalls, DeletedReservations: reservations}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
