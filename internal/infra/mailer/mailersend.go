package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mailersend/mailersend-go"

	"bookfair-reservation/internal/pkg/config"
	"bookfair-reservation/internal/pkg/errs"
	"bookfair-reservation/internal/usecase/notify"
)

var errRejected = errs.New("mailersend rejected message")

type MailerSendMailer struct {
	client *mailersend.Mailersend
	from   mailersend.From
	cfg    config.MailConfig
}

func NewMailerSendMailer(cfg config.MailConfig) *MailerSendMailer {
	return &MailerSendMailer{
		client: mailersend.NewMailersend(cfg.APIKey),
		from: mailersend.From{
			Name:  cfg.FromName,
			Email: cfg.FromEmail,
		},
		cfg: cfg,
	}
}

func (m *MailerSendMailer) Send(ctx context.Context, msg notify.Message) error {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(m.from)
	message.SetRecipients([]mailersend.Recipient{{Name: msg.ToName, Email: msg.To}})
	message.SetSubject(msg.Subject)
	if strings.TrimSpace(msg.Text) != "" {
		message.SetText(msg.Text)
	}
	if strings.TrimSpace(msg.HTML) != "" {
		message.SetHTML(msg.HTML)
	}

	for _, a := range msg.Attachments {
		content, err := os.ReadFile(a.Path)
		if err != nil {
			return errs.Wrap(err, "read attachment "+a.Filename)
		}
		message.AddAttachment(mailersend.Attachment{
			Filename: a.Filename,
			Content:  base64.StdEncoding.EncodeToString(content),
		})
	}

	res, err := m.client.Email.Send(ctx, message)
	if err != nil {
		return errs.Wrap(err, "mailersend request")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return errs.Wrap(errRejected, fmt.Sprintf("status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body))))
	}

	slog.Debug("mailersend accepted message", "to", msg.To, "message_id", res.Header.Get("X-Message-Id"))
	return nil
}
