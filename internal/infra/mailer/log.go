package mailer

import (
	"context"
	"log/slog"

	"bookfair-reservation/internal/pkg/config"
	"bookfair-reservation/internal/usecase/notify"
)

// LogMailer stands in when no MailerSend credentials are configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) Send(_ context.Context, msg notify.Message) error {
	attachments := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		attachments = append(attachments, a.Filename)
	}
	slog.Info("email delivery disabled, message logged",
		"to", msg.To,
		"subject", msg.Subject,
		"attachments", attachments)
	return nil
}

func New(cfg config.MailConfig) notify.Mailer {
	if !cfg.Enabled() {
		slog.Warn("MAILERSEND_API_KEY or MAIL_FROM_EMAIL missing, emails will only be logged")
		return NewLogMailer()
	}
	return NewMailerSendMailer(cfg)
}
