package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView is the public profile; the password hash never leaves the read store
// except through FindCredentials.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Genres    string    `json:"genres"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	AdminUsers   int64 `json:"adminUsers"`
	RegularUsers int64 `json:"regularUsers"`
}

type StallView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Size     string `json:"size"`
	X        int32  `json:"x"`
	Y        int32  `json:"y"`
	Reserved bool   `json:"reserved"`
	Genres   string `json:"genres"`
}

type StallCounts struct {
	Total    int64
	Reserved int64
}

type MapLayoutView struct {
	ID         int64     `json:"id"`
	LayoutJSON string    `json:"layoutJson"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ReservationView struct {
	ID             int64     `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	UserEmail      string    `json:"userEmail"`
	StallID        int64     `json:"stallId"`
	StallName      string    `json:"stallName"`
	StallSize      string    `json:"stallSize"`
	StallGenres    string    `json:"stallGenres"`
	QRCodeFilename string    `json:"qrCodeFilename"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AdminReservationView adds the owner's current username. It is empty when the
// owner no longer exists.
type AdminReservationView struct {
	ReservationView
	Username string `json:"username"`
}

type ReservationStats struct {
	TotalReservations int64 `json:"totalReservations"`
	TotalStalls       int64 `json:"totalStalls"`
	ReservedStalls    int64 `json:"reservedStalls"`
	AvailableStalls   int64 `json:"availableStalls"`
}
