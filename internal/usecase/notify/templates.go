package notify

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"bookfair-reservation/internal/pkg/errs"
)

type emailTemplate struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func mustTemplate(name, html, text string) emailTemplate {
	return emailTemplate{
		html: htmltemplate.Must(htmltemplate.New(name).Parse(html)),
		text: texttemplate.Must(texttemplate.New(name).Parse(text)),
	}
}

func render(t emailTemplate, data any) (string, string, error) {
	var html, text bytes.Buffer
	if err := t.html.Execute(&html, data); err != nil {
		return "", "", errs.Mark(err, ErrRenderFailed)
	}
	if err := t.text.Execute(&text, data); err != nil {
		return "", "", errs.Mark(err, ErrRenderFailed)
	}
	return html.String(), strings.TrimSpace(text.String()), nil
}

type welcomeData struct {
	Username  string
	Email     string
	MaxStalls int
}

type reservationData struct {
	Username      string
	StallName     string
	StallSize     string
	ReservationID int64
	CreatedAt     string
}

func newReservationData(in ReservationEmail) reservationData {
	createdAt := ""
	if !in.CreatedAt.IsZero() {
		createdAt = in.CreatedAt.Format("2006-01-02 15:04:05")
	}
	return reservationData{
		Username:      in.Username,
		StallName:     in.StallName,
		StallSize:     in.StallSize,
		ReservationID: in.ReservationID,
		CreatedAt:     createdAt,
	}
}

const layoutOpen = `<html><body style="font-family: Arial, sans-serif; padding: 20px; background-color: #f5f5f5;">
<div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1);">`

const layoutClose = `<p>Best regards,<br><strong>Colombo International Bookfair Team</strong></p>
</div></body></html>`

var welcomeTemplate = mustTemplate("welcome", layoutOpen+`
<h2 style="color: #0070f3; text-align: center;">Welcome to Colombo International Bookfair!</h2>
<p>Dear {{.Username}},</p>
<p>Thank you for registering with the Colombo International Bookfair reservation system. We're excited to have you join us!</p>
<h3 style="color: #333;">Your Account Details:</h3>
<ul style="line-height: 1.8;">
<li><strong>Email:</strong> {{.Email}}</li>
<li><strong>Business Name:</strong> {{.Username}}</li>
</ul>
<p>You can now:</p>
<ul style="line-height: 1.8;">
<li>Browse available stalls on the interactive map</li>
<li>Reserve up to {{.MaxStalls}} stalls for the bookfair</li>
<li>Manage your reservations through your dashboard</li>
</ul>
<p style="margin-top: 30px; padding-top: 20px; border-top: 2px solid #eee;">If you have any questions, please don't hesitate to contact us.</p>
<p>We look forward to seeing you at the bookfair!</p>
`+layoutClose, `
Dear {{.Username}},

Thank you for registering with the Colombo International Bookfair reservation system.
Email: {{.Email}}
You can reserve up to {{.MaxStalls}} stalls for the bookfair.

Colombo International Bookfair Team
`)

var requestTemplate = mustTemplate("reservation-request", layoutOpen+`
<h2 style="color: #0070f3; text-align: center;">Reservation Request Received</h2>
<p>Dear {{.Username}},</p>
<p>We have received your reservation request for the Colombo International Bookfair.</p>
<h3 style="color: #333;">Reservation Details:</h3>
<ul style="line-height: 1.8;">
<li><strong>Reservation ID:</strong> {{.ReservationID}}</li>
<li><strong>Stall Name:</strong> {{.StallName}}</li>
<li><strong>Stall Size:</strong> {{.StallSize}}</li>
<li><strong>Request Date:</strong> {{.CreatedAt}}</li>
</ul>
<p style="background-color: #fff3cd; padding: 15px; border-left: 4px solid #ffc107; border-radius: 4px;">Your reservation is being processed. You will receive a confirmation email shortly with your QR code.</p>
<p style="margin-top: 30px; padding-top: 20px; border-top: 2px solid #eee;">If you have any questions, please contact us.</p>
`+layoutClose, `
Dear {{.Username}},

We have received your reservation request.
Reservation ID: {{.ReservationID}}
Stall: {{.StallName}} ({{.StallSize}})
Request Date: {{.CreatedAt}}

You will receive a confirmation email shortly with your QR code.
`)

var confirmationTemplate = mustTemplate("reservation-confirmation", layoutOpen+`
<h2 style="color: #4caf50; text-align: center;">Reservation Confirmed!</h2>
<p>Dear {{.Username}},</p>
<p>Your stall reservation for the Colombo International Bookfair has been <strong style="color: #4caf50;">confirmed</strong>.</p>
<h3 style="color: #333;">Reservation Details:</h3>
<ul style="line-height: 1.8;">
<li><strong>Reservation ID:</strong> {{.ReservationID}}</li>
<li><strong>Stall Name:</strong> {{.StallName}}</li>
<li><strong>Stall Size:</strong> {{.StallSize}}</li>
<li><strong>Reservation Date:</strong> {{.CreatedAt}}</li>
</ul>
<p style="background-color: #d4edda; padding: 15px; border-left: 4px solid #4caf50; border-radius: 4px;"><strong>Important:</strong> Your unique QR code is attached to this email. Please download and save it as it will be required for entry to the exhibition premises.</p>
<p>Please arrive at the venue with your QR code ready for scanning.</p>
<p style="margin-top: 30px; padding-top: 20px; border-top: 2px solid #eee;">We look forward to seeing you at the bookfair!</p>
`+layoutClose, `
Dear {{.Username}},

Your stall reservation has been confirmed.
Reservation ID: {{.ReservationID}}
Stall: {{.StallName}} ({{.StallSize}})
Reservation Date: {{.CreatedAt}}

Your QR code is attached. Bring it to the venue for entry.
`)
