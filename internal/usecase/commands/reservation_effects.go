package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/infra"
	"bookfair-reservation/internal/pkg/clock"
	"bookfair-reservation/internal/pkg/errs"
	"bookfair-reservation/internal/pkg/metrics"
	"bookfair-reservation/internal/usecase/notify"
	"bookfair-reservation/internal/usecase/shared"
)

var ErrUnknownJobKind = errs.New("unknown notification job kind")

// EffectInput carries everything the post-commit steps need. It is stored as
// the payload of a failed job so the sweep can replay the step.
type EffectInput struct {
	ReservationID  int64     `json:"reservationId"`
	StallID        int64     `json:"stallId"`
	StallName      string    `json:"stallName"`
	StallSize      string    `json:"stallSize"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	CreatedAt      time.Time `json:"createdAt"`
	QRCodeFilename string    `json:"qrCodeFilename,omitempty"`
}

// SideEffects runs the steps that follow a committed reservation. None of
// them can undo the reservation; a failure is logged, counted and recorded as
// a notification job.
type SideEffects struct {
	uow      shared.UnitOfWork
	notifier notify.Dispatcher
	qr       QRStore
	timeout  time.Duration
	clock    clock.Clock
	metrics  *metrics.Metrics
}

func NewSideEffects(
	uow shared.UnitOfWork,
	notifier notify.Dispatcher,
	qr QRStore,
	timeout time.Duration,
	clk clock.Clock,
	m *metrics.Metrics,
) *SideEffects {
	return &SideEffects{
		uow:      uow,
		notifier: notifier,
		qr:       qr,
		timeout:  timeout,
		clock:    clk,
		metrics:  m,
	}
}

// AfterReserve sends the request email, issues the QR code and sends the
// confirmation, in that order. It returns the QR filename, or "" when the QR
// step failed.
func (e *SideEffects) AfterReserve(ctx context.Context, in EffectInput) string {
	ctx = context.WithoutCancel(ctx)

	e.run(ctx, shared.JobEmailRequested, in)
	if err := e.run(ctx, shared.JobQRCode, in); err == nil {
		in.QRCodeFilename = reservation.QRFilename(in.ReservationID)
	}
	e.run(ctx, shared.JobEmailConfirmed, in)

	return in.QRCodeFilename
}

// Replay runs one step again without recording a new failure.
func (e *SideEffects) Replay(ctx context.Context, kind shared.JobKind, in EffectInput) error {
	stepCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.perform(stepCtx, kind, in)
}

// IssueQRCode writes the pass for a reservation and stores its filename.
func (e *SideEffects) IssueQRCode(ctx context.Context, in EffectInput) (string, error) {
	filename := reservation.QRFilename(in.ReservationID)
	payload := reservation.QRPayload(in.ReservationID, in.StallID, in.Email)

	if _, err := e.qr.Write(ctx, filename, payload); err != nil {
		return "", err
	}

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().AttachQRCode(ctx, in.ReservationID, filename); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return filename, nil
}

func (e *SideEffects) run(ctx context.Context, kind shared.JobKind, in EffectInput) error {
	stepCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	err := e.perform(stepCtx, kind, in)
	e.metrics.SideEffect(string(kind), err)
	if err == nil {
		return nil
	}

	slog.Warn("reservation side effect failed",
		"reservation_id", in.ReservationID,
		"step", string(kind),
		"error", err.Error())
	e.recordFailure(ctx, kind, in, err)
	return err
}

func (e *SideEffects) perform(ctx context.Context, kind shared.JobKind, in EffectInput) error {
	switch kind {
	case shared.JobEmailRequested:
		return e.notifier.ReservationRequested(ctx, e.email(in))
	case shared.JobQRCode:
		_, err := e.IssueQRCode(ctx, in)
		return err
	case shared.JobEmailConfirmed:
		return e.notifier.ReservationConfirmed(ctx, e.email(in))
	default:
		return ErrUnknownJobKind
	}
}

func (e *SideEffects) email(in EffectInput) notify.ReservationEmail {
	msg := notify.ReservationEmail{
		Email:         in.Email,
		Username:      in.Username,
		StallName:     in.StallName,
		StallSize:     in.StallSize,
		ReservationID: in.ReservationID,
		CreatedAt:     in.CreatedAt,
	}
	if in.QRCodeFilename != "" {
		msg.QRCodePath = e.qr.Path(in.QRCodeFilename)
	}
	return msg
}

// QueueConfirmation schedules the confirmation email for the sweep, used once a
// QR code was issued after the original confirmation went out without it.
func (e *SideEffects) QueueConfirmation(ctx context.Context, in EffectInput) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errs.Wrap(err, "encode confirmation payload")
	}
	return e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Enqueue(ctx, shared.QueuedJob{
			Kind:          shared.JobEmailConfirmed,
			ReservationID: in.ReservationID,
			Payload:       payload,
			RunAt:         e.clock.Now(),
		})
	})
}

func (e *SideEffects) recordFailure(ctx context.Context, kind shared.JobKind, in EffectInput, cause error) {
	payload, err := json.Marshal(in)
	if err != nil {
		slog.Error("failed to encode side effect payload", "reservation_id", in.ReservationID, "error", err.Error())
		return
	}

	recordCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	err = e.uow.Within(recordCtx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().RecordFailure(ctx, shared.FailedJob{
			Kind:          kind,
			ReservationID: in.ReservationID,
			Payload:       payload,
			LastError:     cause.Error(),
			RunAt:         e.clock.Now(),
		})
	})
	if err != nil {
		slog.Error("failed to record side effect job",
			"reservation_id", in.ReservationID,
			"step", string(kind),
			"error", err.Error())
	}
}
