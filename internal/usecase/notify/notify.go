package notify

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"bookfair-reservation/internal/pkg/errs"
)

var (
	ErrRecipientRequired = errs.NewKind("recipient email is required", errs.ErrValidation)
	ErrSendFailed        = errs.NewKind("failed to send email", errs.ErrUpstreamUnavailable)
	ErrRenderFailed      = errs.New("failed to render email")
)

type Attachment struct {
	Filename string
	Path     string
}

type Message struct {
	To          string
	ToName      string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Mailer delivers a rendered message. Implementations live in infra/mailer.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type WelcomeEmail struct {
	Email    string
	Username string
}

type ReservationEmail struct {
	Email         string
	Username      string
	StallName     string
	StallSize     string
	ReservationID int64
	CreatedAt     time.Time
	// QRCodePath is absolute; the confirmation attaches it when the file exists.
	QRCodePath string
}

type Dispatcher interface {
	Welcome(ctx context.Context, in WelcomeEmail) error
	ReservationRequested(ctx context.Context, in ReservationEmail) error
	ReservationConfirmed(ctx context.Context, in ReservationEmail) error
}

type dispatcherImpl struct {
	mailer   Mailer
	maxStall int
}

// NewDispatcher renders the bookfair templates and hands them to mailer.
// maxStalls is quoted in the welcome email.
func NewDispatcher(mailer Mailer, maxStalls int) Dispatcher {
	return &dispatcherImpl{
		mailer:   mailer,
		maxStall: maxStalls,
	}
}

func (d *dispatcherImpl) Welcome(ctx context.Context, in WelcomeEmail) error {
	if strings.TrimSpace(in.Email) == "" {
		return ErrRecipientRequired
	}

	html, text, err := render(welcomeTemplate, welcomeData{
		Username:  in.Username,
		Email:     in.Email,
		MaxStalls: d.maxStall,
	})
	if err != nil {
		return err
	}

	return d.send(ctx, Message{
		To:      in.Email,
		ToName:  in.Username,
		Subject: "Welcome to Colombo International Bookfair",
		HTML:    html,
		Text:    text,
	})
}

func (d *dispatcherImpl) ReservationRequested(ctx context.Context, in ReservationEmail) error {
	if strings.TrimSpace(in.Email) == "" {
		return ErrRecipientRequired
	}

	html, text, err := render(requestTemplate, newReservationData(in))
	if err != nil {
		return err
	}

	return d.send(ctx, Message{
		To:      in.Email,
		ToName:  in.Username,
		Subject: "Reservation Request Received - Colombo International Bookfair",
		HTML:    html,
		Text:    text,
	})
}

func (d *dispatcherImpl) ReservationConfirmed(ctx context.Context, in ReservationEmail) error {
	if strings.TrimSpace(in.Email) == "" {
		return ErrRecipientRequired
	}

	html, text, err := render(confirmationTemplate, newReservationData(in))
	if err != nil {
		return err
	}

	msg := Message{
		To:      in.Email,
		ToName:  in.Username,
		Subject: "Reservation Confirmation - Colombo International Bookfair",
		HTML:    html,
		Text:    text,
	}

	if in.QRCodePath != "" {
		if _, statErr := os.Stat(in.QRCodePath); statErr == nil {
			msg.Attachments = append(msg.Attachments, Attachment{Filename: "qr-code.png", Path: in.QRCodePath})
		} else {
			slog.Warn("QR code file not found", "path", in.QRCodePath, "reservation_id", in.ReservationID)
		}
	}

	return d.send(ctx, msg)
}

func (d *dispatcherImpl) send(ctx context.Context, msg Message) error {
	if err := d.mailer.Send(ctx, msg); err != nil {
		return errs.Mark(errs.Wrap(err, "send "+msg.Subject), ErrSendFailed)
	}
	slog.Info("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
