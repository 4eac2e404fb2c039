package commands

import (
	"context"
	"log/slog"
	"strings"

	"bookfair-reservation/internal/domain/genre"
	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/pkg/clock"
	"bookfair-reservation/internal/pkg/errs"
	"bookfair-reservation/internal/usecase/queries"
	"bookfair-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = user.ErrNotFound
	ErrEmailMismatch = errs.NewKind("Email mismatch", errs.ErrValidation)
)

type UserCommands interface {
	UpdateGenres(ctx context.Context, caller shared.Caller, targetEmail, genres string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (*queries.UserView, error)
	// Delete hides the user immediately, then releases their stalls and purges
	// the row. If a later phase fails the backfill sweep finishes it.
	Delete(ctx context.Context, id uuid.UUID) error
	// FinishDelete runs the phases after the user has been marked deleted.
	FinishDelete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	releaser  ReservationReleaser
	clock     clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, releaser ReservationReleaser, clk clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:       uow,
		readStore: readStore,
		releaser:  releaser,
		clock:     clk,
	}
}

func (u *userCommandsImpl) UpdateGenres(ctx context.Context, caller shared.Caller, targetEmail, genres string) error {
	target := strings.ToLower(strings.TrimSpace(targetEmail))
	if !caller.IsAdmin() && target != strings.ToLower(caller.Email) {
		return ErrEmailMismatch
	}

	view, err := u.readStore.FindByEmail(ctx, target)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().UpdateGenres(ctx, view.ID, genre.Normalize(genres)); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})
}

func (u *userCommandsImpl) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*queries.UserView, error) {
	newRole, err := user.NewRole(role)
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().UpdateRole(ctx, id, newRole); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (u *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().MarkDeleted(ctx, id, u.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := u.FinishDelete(context.WithoutCancel(ctx), id); err != nil {
		slog.Warn("user marked deleted; purge left to backfill", "user_id", id.String(), "error", err.Error())
	}
	return nil
}

func (u *userCommandsImpl) FinishDelete(ctx context.Context, id uuid.UUID) error {
	released, err := u.releaser.ReleaseAllForUser(ctx, id)
	if err != nil {
		return errs.Wrap(err, "release reservations")
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Purge(ctx, id); err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "purge user")
	}

	slog.Info("user deleted", "user_id", id.String(), "released_reservations", released)
	return nil
}
