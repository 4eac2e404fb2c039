package sqlstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID          `json:"id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	Genres       pgtype.Text        `json:"genres"`
	DeletedAt    pgtype.Timestamptz `json:"deleted_at"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Stalls struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Size      string             `json:"size"`
	X         int32              `json:"x"`
	Y         int32              `json:"y"`
	Reserved  bool               `json:"reserved"`
	Genres    pgtype.Text        `json:"genres"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Reservations struct {
	ID             int64              `json:"id"`
	UserID         uuid.UUID          `json:"user_id"`
	UserEmail      string             `json:"user_email"`
	StallID        int64              `json:"stall_id"`
	QrCodeFilename pgtype.Text        `json:"qr_code_filename"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

type MapLayouts struct {
	ID         int64              `json:"id"`
	LayoutJson string             `json:"layout_json"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type NotificationJobs struct {
	ID            uuid.UUID          `json:"id"`
	Kind          string             `json:"kind"`
	ReservationID int64              `json:"reservation_id"`
	Payload       []byte             `json:"payload"`
	Status        string             `json:"status"`
	Attempts      int32              `json:"attempts"`
	LastError     pgtype.Text        `json:"last_error"`
	RunAt         pgtype.Timestamptz `json:"run_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}
