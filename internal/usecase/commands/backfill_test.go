//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/internal/usecase/notify"
	"bookfair-reservation/internal/usecase/shared"
	"bookfair-reservation/tests/common/memstore"
	commandsmock "bookfair-reservation/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var backfillOpts = commands.BackfillOptions{
	GracePeriod: 30 * time.Second,
	BatchSize:   10,
	MaxAttempts: 3,
}

func newBackfill(f *fixture) commands.BackfillCommands {
	users := commands.NewUserCommands(f.store, f.store.UserReadStore(), f.cmds, f.clock)
	return commands.NewBackfillCommands(
		f.store.BackfillReadStore(),
		f.store.ReservationReadStore(),
		f.store.UserReadStore(),
		f.effects,
		users,
		f.store,
		f.clock,
		f.metrics,
		backfillOpts,
	)
}

func findJob(t *testing.T, store *memstore.Store, id uuid.UUID) memstore.JobRow {
	t.Helper()
	for _, job := range store.Jobs() {
		if job.ID == id {
			return job
		}
	}
	t.Fatalf("job %v not found", id)
	return memstore.JobRow{}
}

func TestBackfillCommands_IssueMissingQRCodes(t *testing.T) {
	ctx := context.Background()

	t.Run("猶予期間を過ぎたQR未発行の予約だけ発行する", func(t *testing.T) {
		f := newFixture(t)
		u := f.addUser("reader@example.com")
		old := f.store.AddReservation(u, f.store.AddStall("A01", stall.SizeSmall).ID, fixedNow.Add(-time.Hour), "")
		fresh := f.store.AddReservation(u, f.store.AddStall("A02", stall.SizeSmall).ID, fixedNow.Add(-time.Second), "")
		f.store.AddReservation(u, f.store.AddStall("A03", stall.SizeSmall).ID, fixedNow.Add(-time.Hour), "qr_done.png")

		f.qr.EXPECT().Write(gomock.Any(), "qr_"+itoa(old.ID)+".png", gomock.Any()).Return(qrDir+"/x.png", nil)
		f.qr.EXPECT().Path(gomock.Any()).DoAndReturn(func(filename string) string { return qrDir + "/" + filename })
		f.notifier.EXPECT().ReservationConfirmed(gomock.Any(), gomock.Any()).Return(nil)

		report, err := newBackfill(f).Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.QRCodesIssued)
		assert.Equal(t, 1, report.ConfirmationsQueued)

		for _, row := range f.store.Reservations() {
			switch row.ID {
			case old.ID:
				assert.Equal(t, "qr_"+itoa(old.ID)+".png", row.QRCodeFilename)
			case fresh.ID:
				assert.Empty(t, row.QRCodeFilename)
			}
		}
	})

	t.Run("QR発行の失敗は次回に持ち越す", func(t *testing.T) {
		f := newFixture(t)
		u := f.addUser("reader@example.com")
		f.store.AddReservation(u, f.store.AddStall("A01", stall.SizeSmall).ID, fixedNow.Add(-time.Hour), "")
		f.qr.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

		report, err := newBackfill(f).Sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, report.QRCodesIssued)
		assert.Zero(t, report.ConfirmationsQueued)
		assert.Empty(t, f.store.Reservations()[0].QRCodeFilename)
		assert.Empty(t, f.store.Jobs())
	})

	t.Run("遅れて発行したQRコードを添えて確認メールを再送する", func(t *testing.T) {
		f := newFixture(t)
		u := f.addUser("reader@example.com")
		res := f.store.AddReservation(u, f.store.AddStall("A01", stall.SizeSmall).ID, fixedNow.Add(-time.Hour), "")
		filename := "qr_" + itoa(res.ID) + ".png"

		f.qr.EXPECT().Write(gomock.Any(), filename, gomock.Any()).Return(qrDir+"/"+filename, nil)
		f.qr.EXPECT().Path(filename).Return(qrDir + "/" + filename)
		f.notifier.EXPECT().ReservationConfirmed(gomock.Any(), gomock.Cond(func(in notify.ReservationEmail) bool {
			return in.ReservationID == res.ID && in.Username == u.Username && in.QRCodePath == qrDir+"/"+filename
		})).Return(nil).Times(1)
		backfill := newBackfill(f)

		report, err := backfill.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.ConfirmationsQueued)
		assert.Equal(t, 1, report.JobsDone)

		jobs := f.store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, shared.JobEmailConfirmed, jobs[0].Kind)
		assert.Equal(t, "done", jobs[0].Status)

		again, err := backfill.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, commands.SweepReport{}, *again)
	})

	t.Run("再送に失敗した確認メールは次回の対象になる", func(t *testing.T) {
		f := newFixture(t)
		u := f.addUser("reader@example.com")
		f.store.AddReservation(u, f.store.AddStall("A01", stall.SizeSmall).ID, fixedNow.Add(-time.Hour), "")

		f.qr.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(qrDir+"/x.png", nil)
		f.qr.EXPECT().Path(gomock.Any()).DoAndReturn(func(filename string) string { return qrDir + "/" + filename }).AnyTimes()
		gomock.InOrder(
			f.notifier.EXPECT().ReservationConfirmed(gomock.Any(), gomock.Any()).Return(notify.ErrSendFailed),
			f.notifier.EXPECT().ReservationConfirmed(gomock.Any(), gomock.Any()).Return(nil),
		)
		backfill := newBackfill(f)

		first, err := backfill.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first.JobsFailed)

		second, err := backfill.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, second.JobsDone)
		assert.Zero(t, second.QRCodesIssued)

		jobs := f.store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, "done", jobs[0].Status)
		assert.Equal(t, int32(1), jobs[0].Attempts)
	})
}

func TestBackfillCommands_ReplayJobs(t *testing.T) {
	ctx := context.Background()
	runAt := fixedNow.Add(-time.Minute)

	t.Run("失敗したメールを保存済みのユーザー名で再送する", func(t *testing.T) {
		f := newFixture(t)
		u := f.addUser("reader@example.com")
		res := f.store.AddReservation(u, f.store.AddStall("A01", stall.SizeSmall).ID, fixedNow.Add(-time.Hour), "qr_1.png")
		payload, err := json.Marshal(commands.EffectInput{ReservationID: res.ID, Username: "Stored Name"})
		require.NoError(t, err)
		job := f.store.AddJob(memstore.JobRow{Kind: shared.JobEmailConfirmed, ReservationID: res.ID, Payload: payload, Attempts: 1, RunAt: runAt})

		f.qr.EXPECT().Path("qr_1.png").Return(qrDir + "/qr_1.png")
		f.notifier.EXPECT().ReservationConfirmed(gomock.Any(), gomock.Cond(func(in notify.ReservationEmail) bool {
			return in.Username == "Stored Name" && in.StallName == "A01" && in.QRCodePath == qrDir+"/qr_1.png"
		})).Return(nil)

		report, err := newBackfill(f).Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.JobsDone)
		assert.Equal(t, "done", findJob(t, f.store, job.ID).Status)
	})

	t.Run("QRジョブは発行済みなら書き込まずに完了する", func(t *testing.T) {
		f := newFixture(t)
		u := f.addUser("reader@example.com")
		res := f.store.AddReservation(u, f.store.AddStall("A01", stall.SizeSmall).ID, fixedNow.Add(-time.Hour), "")
		job := f.store.AddJob(memstore.JobRow{Kind: shared.JobQRCode, ReservationID: res.ID, Attempts: 1, RunAt: runAt})

		f.qr.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(qrDir+"/x.png", nil).Times(1)
		f.qr.EXPECT().Path(gomock.Any()).DoAndReturn(func(filename string) string { return qrDir + "/" + filename })
		f.notifier.EXPECT().ReservationConfirmed(gomock.Any(), gomock.Any()).Return(nil)

		report, err := newBackfill(f).Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.QRCodesIssued)
		assert.Equal(t, 1, report.ConfirmationsQueued)
		// the QR job and the queued confirmation
		assert.Equal(t, 2, report.JobsDone)
		assert.Equal(t, "done", findJob(t, f.store, job.ID).Status)
	})

	t.Run("予約が消えたジョブは取り消す", func(t *testing.T) {
		f := newFixture(t)
		job := f.store.AddJob(memstore.JobRow{Kind: shared.JobEmailRequested, ReservationID: 4242, Attempts: 1, RunAt: runAt})

		report, err := newBackfill(f).Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.JobsCancelled)

		got := findJob(t, f.store, job.ID)
		assert.Equal(t, "cancelled", got.Status)
		assert.Equal(t, "reservation no longer exists", got.LastError)
	})

	t.Run("再送の失敗は試行回数を増やし上限で打ち切る", func(t *testing.T) {
		f := newFixture(t)
		u := f.addUser("reader@example.com")
		res := f.store.AddReservation(u, f.store.AddStall("A01", stall.SizeSmall).ID, fixedNow.Add(-time.Hour), "qr_1.png")
		job := f.store.AddJob(memstore.JobRow{Kind: shared.JobEmailRequested, ReservationID: res.ID, Attempts: 1, RunAt: runAt})

		f.qr.EXPECT().Path("qr_1.png").Return(qrDir + "/qr_1.png").AnyTimes()
		f.notifier.EXPECT().ReservationRequested(gomock.Any(), gomock.Cond(func(in notify.ReservationEmail) bool {
			return in.ReservationID == res.ID && in.QRCodePath == qrDir+"/qr_1.png"
		})).Return(notify.ErrSendFailed).Times(2)
		backfill := newBackfill(f)

		var failed []int
		for range 3 {
			report, err := backfill.Sweep(ctx)
			require.NoError(t, err)
			failed = append(failed, report.JobsFailed)
		}

		assert.Equal(t, []int{1, 1, 0}, failed)
		got := findJob(t, f.store, job.ID)
		assert.Equal(t, "failed", got.Status)
		assert.Equal(t, backfillOpts.MaxAttempts, got.Attempts)
		assert.Equal(t, notify.ErrSendFailed.Error(), got.LastError)
	})

	t.Run("実行時刻前のジョブは対象外", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddJob(memstore.JobRow{Kind: shared.JobEmailRequested, ReservationID: 1, Attempts: 1, RunAt: fixedNow.Add(time.Hour)})

		report, err := newBackfill(f).Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, commands.SweepReport{}, *report)
	})
}

func TestBackfillCommands_PurgeDeletedUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("削除途中のユーザーの予約を解放して消去する", func(t *testing.T) {
		f := newFixture(t)
		u := f.addUser("leaver@example.com")
		s := f.store.AddStall("A01", stall.SizeSmall)
		f.store.AddReservation(u, s.ID, fixedNow.Add(-time.Hour), "qr.png")

		releaser := commandsmock.NewMockReservationReleaser(gomock.NewController(t))
		releaser.EXPECT().ReleaseAllForUser(gomock.Any(), u.ID).Return(int64(0), errors.New("connection reset"))
		require.NoError(t, commands.NewUserCommands(f.store, f.store.UserReadStore(), releaser, f.clock).Delete(ctx, u.ID))

		f.clock.Add(time.Minute)
		report, err := newBackfill(f).Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.UsersPurged)

		_, exists := f.store.User(u.ID)
		assert.False(t, exists)
		assert.Empty(t, f.store.Reservations())
		assert.Empty(t, f.store.CheckConsistency())
	})

	t.Run("猶予期間内の削除は待つ", func(t *testing.T) {
		f := newFixture(t)
		deletedAt := fixedNow.Add(-time.Second)
		u := f.store.AddUser(memstore.UserRow{Email: "recent@example.com", DeletedAt: &deletedAt})

		report, err := newBackfill(f).Sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, report.UsersPurged)
		_, exists := f.store.User(u.ID)
		assert.True(t, exists)
	})
}

func TestBackfillCommands_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	reads := commandsmock.NewMockBackfillReadStore(ctrl)
	reads.EXPECT().ReservationsMissingQR(gomock.Any(), fixedNow.Add(-backfillOpts.GracePeriod), backfillOpts.BatchSize).
		Return(nil, errors.New("connection refused"))

	backfill := commands.NewBackfillCommands(reads, f.store.ReservationReadStore(), f.store.UserReadStore(),
		f.effects, commands.NewUserCommands(f.store, f.store.UserReadStore(), f.cmds, f.clock),
		f.store, f.clock, f.metrics, backfillOpts)

	_, err := backfill.Sweep(context.Background())
	assert.ErrorContains(t, err, "list reservations without QR code")
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
