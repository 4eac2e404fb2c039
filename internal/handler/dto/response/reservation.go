package response

import (
	"time"

	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type StallResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Size     string `json:"size"`
	X        int32  `json:"x"`
	Y        int32  `json:"y"`
	Reserved bool   `json:"reserved"`
	Genres   string `json:"genres"`
}

type ReserveResponse struct {
	Message        string `json:"message"`
	ReservationID  int64  `json:"reservationId"`
	StallID        int64  `json:"stallId"`
	StallName      string `json:"stallName"`
	QRCodeFilename string `json:"qrCodeFilename"`
}

type ReservationResponse struct {
	ID             int64     `json:"id"`
	StallID        int64     `json:"stallId"`
	StallName      string    `json:"stallName"`
	StallSize      string    `json:"stallSize"`
	StallGenres    string    `json:"stallGenres"`
	UserEmail      string    `json:"userEmail"`
	QRCodeFilename string    `json:"qrCodeFilename"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AdminReservationResponse struct {
	ID             int64     `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Username       string    `json:"username"`
	UserEmail      string    `json:"userEmail"`
	StallID        int64     `json:"stallId"`
	StallName      string    `json:"stallName"`
	StallSize      string    `json:"stallSize"`
	StallGenres    string    `json:"stallGenres"`
	QRCodeFilename string    `json:"qrCodeFilename"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AdminReservationListResponse struct {
	Reservations []AdminReservationResponse `json:"reservations"`
	Total        int                        `json:"total"`
}

func FromStallViews(vs []queries.StallView) []StallResponse {
	out := copyInto[[]StallResponse](vs)
	if out == nil {
		return []StallResponse{}
	}
	return out
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	out := copyInto[ReserveResponse](r)
	out.Message = "Reservation confirmed successfully"
	return &out
}

func FromReservationViews(vs []queries.ReservationView) []ReservationResponse {
	out := copyInto[[]ReservationResponse](vs)
	if out == nil {
		return []ReservationResponse{}
	}
	return out
}

func FromAdminReservationViews(vs []queries.AdminReservationView) *AdminReservationListResponse {
	items := copyInto[[]AdminReservationResponse](vs)
	if items == nil {
		items = []AdminReservationResponse{}
	}
	return &AdminReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
