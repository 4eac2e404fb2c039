package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bookfair-reservation/internal/domain/genre"
	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/pkg/clock"
	"bookfair-reservation/internal/pkg/errs"
	"bookfair-reservation/internal/pkg/metrics"
	"bookfair-reservation/internal/usecase/queries"
	"bookfair-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStallNotFound        = stall.ErrNotFound
	ErrStallAlreadyReserved = stall.ErrAlreadyReserved
	ErrQuotaExceeded        = reservation.ErrQuotaExceeded
	ErrReservationNotFound  = reservation.ErrNotFound
	ErrNotStallHolder       = errs.NewKind("You can only update genres for stalls you have reserved", errs.ErrForbidden)
)

type ReserveResult struct {
	ReservationID  int64
	StallID        int64
	StallName      string
	QRCodeFilename string
}

type ClearResult struct {
	DeletedReservations int64
	ResetStalls         int64
	DeletedMapLayouts   int64
}

type ReservationCommands interface {
	// Reserve books stallID for the user behind callerEmail. At most one
	// reservation exists per stall and a user never holds more than the quota.
	Reserve(ctx context.Context, callerEmail string, stallID int64) (*ReserveResult, error)
	Release(ctx context.Context, reservationID int64) error
	ReleaseAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ClearReservations(ctx context.Context) (*ClearResult, error)
	ClearAllData(ctx context.Context) (*ClearResult, error)
	UpdateStallGenres(ctx context.Context, callerEmail string, stallID int64, genres string) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	users   queries.UserReadStore
	quota   reservation.Quota
	clock   clock.Clock
	effects *SideEffects
	metrics *metrics.Metrics
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	users queries.UserReadStore,
	quota reservation.Quota,
	clk clock.Clock,
	effects *SideEffects,
	m *metrics.Metrics,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		users:   users,
		quota:   quota,
		clock:   clk,
		effects: effects,
		metrics: m,
	}
}

func (r *reservationCommandsImpl) Reserve(ctx context.Context, callerEmail string, stallID int64) (*ReserveResult, error) {
	if stallID <= 0 {
		return nil, reservation.ErrInvalidStallRef
	}

	caller, err := r.resolveUser(ctx, callerEmail)
	if err != nil {
		r.metrics.ReservationOutcome(outcomeOf(err))
		return nil, err
	}

	owner, err := reservation.NewUserRef(caller.ID, caller.Email)
	if err != nil {
		return nil, err
	}

	var (
		created *reservation.Reservation
		target  *stall.Stall
	)
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().LockOwner(ctx, owner.ID); err != nil {
			return err
		}
		// The user may have been marked deleted since the lookup above.
		if err := tx.Users().LockActive(ctx, owner.ID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		held, err := tx.Reservations().CountByUser(ctx, owner.ID)
		if err != nil {
			return err
		}
		if err := r.quota.Check(held); err != nil {
			return err
		}

		s, err := tx.Stalls().LockByID(ctx, stallID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrStallNotFound
			}
			return err
		}
		if err := s.Reserve(); err != nil {
			return err
		}
		if err := tx.Stalls().SetReserved(ctx, s.ID(), true); err != nil {
			return err
		}

		res, err := reservation.NewReservation(owner, s.ID(), r.clock.Now())
		if err != nil {
			return err
		}
		id, err := tx.Reservations().Create(ctx, res)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrStallAlreadyReserved
			}
			return err
		}
		res.AssignID(id)

		created, target = res, s
		return nil
	})
	if err != nil {
		r.metrics.ReservationOutcome(outcomeOf(err))
		return nil, err
	}
	r.metrics.ReservationOutcome("reserved")

	slog.Info("stall reserved",
		"reservation_id", created.ID(),
		"stall_id", target.ID(),
		"user_id", owner.ID.String())

	filename := r.effects.AfterReserve(ctx, EffectInput{
		ReservationID: created.ID(),
		StallID:       target.ID(),
		StallName:     target.Name(),
		StallSize:     target.Size().String(),
		Email:         owner.Email,
		Username:      caller.Username,
		CreatedAt:     created.CreatedAt(),
	})

	return &ReserveResult{
		ReservationID:  created.ID(),
		StallID:        target.ID(),
		StallName:      target.Name(),
		QRCodeFilename: filename,
	}, nil
}

func (r *reservationCommandsImpl) Release(ctx context.Context, reservationID int64) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().LockByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if err := tx.Reservations().Delete(ctx, res.ID()); err != nil {
			return err
		}
		if err := tx.Stalls().SetReserved(ctx, res.StallID(), false); err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		return nil
	})
}

func (r *reservationCommandsImpl) ReleaseAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var released int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().LockOwner(ctx, userID); err != nil {
			return err
		}
		stallIDs, err := tx.Reservations().DeleteByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(stallIDs) > 0 {
			if _, err := tx.Stalls().ReleaseMany(ctx, stallIDs); err != nil {
				return err
			}
		}
		released = int64(len(stallIDs))
		return nil
	})
	return released, err
}

func (r *reservationCommandsImpl) ClearReservations(ctx context.Context) (*ClearResult, error) {
	var result ClearResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return r.clearReservations(ctx, tx, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reservationCommandsImpl) ClearAllData(ctx context.Context) (*ClearResult, error) {
	var result ClearResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := r.clearReservations(ctx, tx, &result); err != nil {
			return err
		}
		layouts, err := tx.MapLayouts().DeleteAll(ctx)
		if err != nil {
			return err
		}
		result.DeletedMapLayouts = layouts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *reservationCommandsImpl) clearReservations(ctx context.Context, tx shared.Tx, result *ClearResult) error {
	deleted, err := tx.Reservations().DeleteAll(ctx)
	if err != nil {
		return err
	}
	reset, err := tx.Stalls().ResetAll(ctx)
	if err != nil {
		return err
	}
	result.DeletedReservations = deleted
	result.ResetStalls = reset
	return nil
}

func (r *reservationCommandsImpl) UpdateStallGenres(ctx context.Context, callerEmail string, stallID int64, genres string) error {
	caller, err := r.resolveUser(ctx, callerEmail)
	if err != nil {
		return err
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		holds, err := tx.Reservations().UserHoldsStall(ctx, caller.ID, stallID)
		if err != nil {
			return err
		}
		if !holds {
			return ErrNotStallHolder
		}
		if err := tx.Stalls().UpdateGenres(ctx, stallID, genre.Normalize(genres)); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrStallNotFound
			}
			return err
		}
		return nil
	})
}

func (r *reservationCommandsImpl) resolveUser(ctx context.Context, email string) (*queries.UserView, error) {
	u, err := r.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrQuotaExceeded):
		return "quota_exceeded"
	case errors.Is(err, ErrStallAlreadyReserved):
		return "already_reserved"
	case errors.Is(err, ErrStallNotFound):
		return "stall_not_found"
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	default:
		return "error"
	}
}
