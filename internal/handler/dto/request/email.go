package request

import (
	"time"

	"bookfair-reservation/internal/usecase/notify"
)

type WelcomeEmailRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username"`
}

func (r *WelcomeEmailRequest) ToNotification() notify.WelcomeEmail {
	return notify.WelcomeEmail{Email: r.Email, Username: r.Username}
}

// ReservationEmailRequest names the QR code by filename; the handler resolves
// it inside the QR directory.
type ReservationEmailRequest struct {
	Email          string    `json:"email" binding:"required"`
	Username       string    `json:"username"`
	StallName      string    `json:"stallName"`
	StallSize      string    `json:"stallSize"`
	ReservationID  int64     `json:"reservationId"`
	CreatedAt      time.Time `json:"createdAt"`
	QRCodeFilename string    `json:"qrCodeFilename"`
}

func (r *ReservationEmailRequest) ToNotification(qrPath string) notify.ReservationEmail {
	return notify.ReservationEmail{
		Email:         r.Email,
		Username:      r.Username,
		StallName:     r.StallName,
		StallSize:     r.StallSize,
		ReservationID: r.ReservationID,
		CreatedAt:     r.CreatedAt,
		QRCodePath:    qrPath,
	}
}
