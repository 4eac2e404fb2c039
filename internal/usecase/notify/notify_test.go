//go:build unit

package notify_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bookfair-reservation/internal/usecase/notify"
	notifymock "bookfair-reservation/tests/mock/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatcher_Welcome(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 上限数を含むウェルカムメール", func(t *testing.T) {
		mailer := notifymock.NewMockMailer(gomock.NewController(t))
		var sent notify.Message
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg notify.Message) error {
			sent = msg
			return nil
		})

		err := notify.NewDispatcher(mailer, 3).Welcome(ctx, notify.WelcomeEmail{Email: "reader@example.com", Username: "Reader & Co"})
		require.NoError(t, err)

		assert.Equal(t, "reader@example.com", sent.To)
		assert.Equal(t, "Reader & Co", sent.ToName)
		assert.Equal(t, "Welcome to Colombo International Bookfair", sent.Subject)
		assert.Contains(t, sent.Text, "You can reserve up to 3 stalls")
		assert.Contains(t, sent.HTML, "Reader &amp; Co")
		assert.Contains(t, sent.Text, "Dear Reader & Co,")
		assert.Empty(t, sent.Attachments)
	})

	t.Run("異常系: 宛先なし", func(t *testing.T) {
		mailer := notifymock.NewMockMailer(gomock.NewController(t))

		err := notify.NewDispatcher(mailer, 3).Welcome(ctx, notify.WelcomeEmail{Email: "  "})
		assert.ErrorIs(t, err, notify.ErrRecipientRequired)
	})

	t.Run("異常系: 送信失敗", func(t *testing.T) {
		mailer := notifymock.NewMockMailer(gomock.NewController(t))
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("429 too many requests"))

		err := notify.NewDispatcher(mailer, 3).Welcome(ctx, notify.WelcomeEmail{Email: "reader@example.com"})
		assert.ErrorIs(t, err, notify.ErrSendFailed)
		assert.ErrorContains(t, err, "429 too many requests")
	})
}

func TestDispatcher_Reservation(t *testing.T) {
	ctx := context.Background()
	in := notify.ReservationEmail{
		Email:         "reader@example.com",
		Username:      "Reader",
		StallName:     "A01",
		StallSize:     "MEDIUM",
		ReservationID: 42,
		CreatedAt:     time.Date(2025, 9, 20, 10, 30, 0, 0, time.UTC),
	}

	t.Run("予約受付メール", func(t *testing.T) {
		mailer := notifymock.NewMockMailer(gomock.NewController(t))
		mailer.EXPECT().Send(gomock.Any(), gomock.Cond(func(msg notify.Message) bool {
			return msg.Subject == "Reservation Request Received - Colombo International Bookfair"
		})).DoAndReturn(func(_ context.Context, msg notify.Message) error {
			assert.Contains(t, msg.Text, "Reservation ID: 42")
			assert.Contains(t, msg.Text, "Stall: A01 (MEDIUM)")
			assert.Contains(t, msg.Text, "2025-09-20 10:30:00")
			return nil
		})

		require.NoError(t, notify.NewDispatcher(mailer, 3).ReservationRequested(ctx, in))
	})

	t.Run("確定メールはQRコードを添付する", func(t *testing.T) {
		qrPath := filepath.Join(t.TempDir(), "qr_42.png")
		require.NoError(t, os.WriteFile(qrPath, []byte("png"), 0o600))

		mailer := notifymock.NewMockMailer(gomock.NewController(t))
		mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg notify.Message) error {
			assert.Equal(t, "Reservation Confirmation - Colombo International Bookfair", msg.Subject)
			assert.Equal(t, []notify.Attachment{{Filename: "qr-code.png", Path: qrPath}}, msg.Attachments)
			return nil
		})

		withQR := in
		withQR.QRCodePath = qrPath
		require.NoError(t, notify.NewDispatcher(mailer, 3).ReservationConfirmed(ctx, withQR))
	})

	t.Run("QRコードのファイルがなければ添付せずに送る", func(t *testing.T) {
		mailer := notifymock.NewMockMailer(gomock.NewController(t))
		mailer.EXPECT().Send(gomock.Any(), gomock.Cond(func(msg notify.Message) bool {
			return len(msg.Attachments) == 0
		})).Return(nil)

		missing := in
		missing.QRCodePath = filepath.Join(t.TempDir(), "missing.png")
		require.NoError(t, notify.NewDispatcher(mailer, 3).ReservationConfirmed(ctx, missing))
	})
}
