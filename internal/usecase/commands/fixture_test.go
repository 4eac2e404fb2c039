//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/pkg/clock"
	"bookfair-reservation/internal/pkg/metrics"
	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/tests/common/memstore"
	commandsmock "bookfair-reservation/tests/mock/commands"
	notifymock "bookfair-reservation/tests/mock/notify"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)

const qrDir = "/var/bookfair/qr"

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	metrics  *metrics.Metrics
	qr       *commandsmock.MockQRStore
	notifier *notifymock.MockDispatcher
	effects  *commands.SideEffects
	cmds     commands.ReservationCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:    memstore.New(),
		clock:    clock.NewMockClock(fixedNow),
		metrics:  metrics.NewIsolated(),
		qr:       commandsmock.NewMockQRStore(ctrl),
		notifier: notifymock.NewMockDispatcher(ctrl),
	}

	quota, err := reservation.NewQuota(reservation.DefaultMaxPerUser)
	require.NoError(t, err)

	f.effects = commands.NewSideEffects(f.store, f.notifier, f.qr, time.Second, f.clock, f.metrics)
	f.cmds = commands.NewReservationCommands(f.store, f.store.UserReadStore(), quota, f.clock, f.effects, f.metrics)
	return f
}

// effectsSucceed lets every post-commit step pass.
func (f *fixture) effectsSucceed() {
	f.notifier.EXPECT().ReservationRequested(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().ReservationConfirmed(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.qr.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filename, _ string) (string, error) {
			return qrDir + "/" + filename, nil
		}).AnyTimes()
	f.qr.EXPECT().Path(gomock.Any()).
		DoAndReturn(func(filename string) string { return qrDir + "/" + filename }).AnyTimes()
}

func (f *fixture) addUser(email string) memstore.UserRow {
	return f.store.AddUser(memstore.UserRow{
		Username:  "user-" + email,
		Email:     email,
		CreatedAt: fixedNow,
	})
}
