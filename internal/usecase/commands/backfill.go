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
	"bookfair-reservation/internal/usecase/queries"
	"bookfair-reservation/internal/usecase/shared"
)

type BackfillOptions struct {
	// GracePeriod keeps the sweep away from reservations whose inline side
	// effects may still be running.
	GracePeriod time.Duration
	BatchSize   int32
	MaxAttempts int32
}

type SweepReport struct {
	QRCodesIssued int
	// ConfirmationsQueued counts confirmation emails queued after a late QR code.
	ConfirmationsQueued int
	JobsDone      int
	JobsFailed    int
	JobsCancelled int
	UsersPurged   int
}

type BackfillCommands interface {
	Sweep(ctx context.Context) (*SweepReport, error)
}

type backfillCommandsImpl struct {
	reads        BackfillReadStore
	reservations queries.ReservationReadStore
	users        queries.UserReadStore
	effects      *SideEffects
	purger       UserCommands
	uow          shared.UnitOfWork
	clock        clock.Clock
	metrics      *metrics.Metrics
	opts         BackfillOptions
}

func NewBackfillCommands(
	reads BackfillReadStore,
	reservations queries.ReservationReadStore,
	users queries.UserReadStore,
	effects *SideEffects,
	purger UserCommands,
	uow shared.UnitOfWork,
	clk clock.Clock,
	m *metrics.Metrics,
	opts BackfillOptions,
) BackfillCommands {
	return &backfillCommandsImpl{
		reads:        reads,
		reservations: reservations,
		users:        users,
		effects:      effects,
		purger:       purger,
		uow:          uow,
		clock:        clk,
		metrics:      m,
		opts:         opts,
	}
}

// Sweep issues missing QR codes, replays failed notification jobs and
// finishes interrupted user deletions. Individual item failures are counted,
// not returned.
func (b *backfillCommandsImpl) Sweep(ctx context.Context) (*SweepReport, error) {
	var report SweepReport
	cutoff := b.clock.Now().Add(-b.opts.GracePeriod)

	if err := b.issueMissingQRCodes(ctx, cutoff, &report); err != nil {
		return &report, err
	}
	if err := b.replayJobs(ctx, &report); err != nil {
		return &report, err
	}
	if err := b.purgeDeletedUsers(ctx, cutoff, &report); err != nil {
		return &report, err
	}

	if report != (SweepReport{}) {
		slog.Info("backfill sweep finished",
			"qr_codes", report.QRCodesIssued,
			"jobs_done", report.JobsDone,
			"jobs_failed", report.JobsFailed,
			"jobs_cancelled", report.JobsCancelled,
			"confirmations_queued", report.ConfirmationsQueued,
			"users_purged", report.UsersPurged)
	}
	return &report, nil
}

func (b *backfillCommandsImpl) issueMissingQRCodes(ctx context.Context, cutoff time.Time, report *SweepReport) error {
	missing, err := b.reads.ReservationsMissingQR(ctx, cutoff, b.opts.BatchSize)
	if err != nil {
		return errs.Wrap(err, "list reservations without QR code")
	}

	for _, r := range missing {
		in := b.effectInput(ctx, r)
		filename, err := b.effects.IssueQRCode(ctx, in)
		b.metrics.BackfillItem("qr", err)
		if err != nil {
			slog.Warn("backfill QR code failed", "reservation_id", r.ID, "error", err.Error())
			continue
		}
		report.QRCodesIssued++

		in.QRCodeFilename = filename
		b.queueConfirmation(ctx, in, report)
	}
	return nil
}

// queueConfirmation re-sends the confirmation with the late QR code attached.
// The job is picked up by replayJobs, in this sweep or the next one.
func (b *backfillCommandsImpl) queueConfirmation(ctx context.Context, in EffectInput, report *SweepReport) {
	if err := b.effects.QueueConfirmation(ctx, in); err != nil {
		slog.Error("failed to queue confirmation email", "reservation_id", in.ReservationID, "error", err.Error())
		return
	}
	report.ConfirmationsQueued++
}

func (b *backfillCommandsImpl) replayJobs(ctx context.Context, report *SweepReport) error {
	jobs, err := b.reads.PendingJobs(ctx, b.opts.MaxAttempts, b.clock.Now(), b.opts.BatchSize)
	if err != nil {
		return errs.Wrap(err, "list pending notification jobs")
	}

	for _, job := range jobs {
		current, err := b.reservations.FindByID(ctx, job.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				b.finishJob(ctx, job, func(ctx context.Context, repo shared.NotificationRepository) error {
					return repo.MarkCancelled(ctx, job.ID, "reservation no longer exists")
				})
				report.JobsCancelled++
				continue
			}
			slog.Warn("backfill job lookup failed", "job_id", job.ID.String(), "error", err.Error())
			continue
		}

		if job.Kind == shared.JobQRCode && current.QRCodeFilename != "" {
			b.finishJob(ctx, job, func(ctx context.Context, repo shared.NotificationRepository) error {
				return repo.MarkDone(ctx, job.ID)
			})
			report.JobsDone++
			continue
		}

		in := b.effectInput(ctx, *current)
		var stored EffectInput
		if err := json.Unmarshal(job.Payload, &stored); err == nil && stored.Username != "" {
			in.Username = stored.Username
		}

		runErr := b.effects.Replay(ctx, job.Kind, in)
		b.metrics.BackfillItem(string(job.Kind), runErr)
		if runErr != nil {
			slog.Warn("backfill job failed", "job_id", job.ID.String(), "step", string(job.Kind), "error", runErr.Error())
			b.finishJob(ctx, job, func(ctx context.Context, repo shared.NotificationRepository) error {
				return repo.MarkFailed(ctx, job.ID, runErr.Error())
			})
			report.JobsFailed++
			continue
		}

		b.finishJob(ctx, job, func(ctx context.Context, repo shared.NotificationRepository) error {
			return repo.MarkDone(ctx, job.ID)
		})
		report.JobsDone++

		if job.Kind == shared.JobQRCode {
			in.QRCodeFilename = reservation.QRFilename(in.ReservationID)
			b.queueConfirmation(ctx, in, report)
		}
	}
	return nil
}

func (b *backfillCommandsImpl) purgeDeletedUsers(ctx context.Context, cutoff time.Time, report *SweepReport) error {
	ids, err := b.reads.DeletedUserIDs(ctx, cutoff, b.opts.BatchSize)
	if err != nil {
		return errs.Wrap(err, "list deleted users")
	}

	for _, id := range ids {
		err := b.purger.FinishDelete(ctx, id)
		b.metrics.BackfillItem("user_purge", err)
		if err != nil {
			slog.Warn("backfill user purge failed", "user_id", id.String(), "error", err.Error())
			continue
		}
		report.UsersPurged++
	}
	return nil
}

func (b *backfillCommandsImpl) finishJob(ctx context.Context, job shared.PendingJob, fn func(ctx context.Context, repo shared.NotificationRepository) error) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, tx.Notifications())
	})
	if err != nil {
		slog.Error("failed to update notification job", "job_id", job.ID.String(), "error", err.Error())
	}
}

// effectInput rebuilds the step input from the stored reservation. The
// username falls back to the email when the owner is gone.
func (b *backfillCommandsImpl) effectInput(ctx context.Context, r queries.ReservationView) EffectInput {
	username := r.UserEmail
	if u, err := b.users.FindByID(ctx, r.UserID); err == nil {
		username = u.Username
	}
	return EffectInput{
		ReservationID:  r.ID,
		StallID:        r.StallID,
		StallName:      r.StallName,
		StallSize:      r.StallSize,
		Email:          r.UserEmail,
		Username:       username,
		CreatedAt:      r.CreatedAt,
		QRCodeFilename: r.QRCodeFilename,
	}
}
