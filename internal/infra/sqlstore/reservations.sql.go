package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, user_id, user_email, stall_id, qr_code_filename, created_at`

func scanReservation(row interface{ Scan(...any) error }) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.UserEmail,
		&i.StallID,
		&i.QrCodeFilename,
		&i.CreatedAt,
	)
	return i, err
}

// Held until the surrounding transaction ends.
const acquireUserReservationLock = `-- name: AcquireUserReservationLock :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

func (q *Queries) AcquireUserReservationLock(ctx context.Context, db DBTX, userID uuid.UUID) error {
	_, err := db.Exec(ctx, acquireUserReservationLock, userID.String())
	return err
}

const countReservationsByUser = `-- name: CountReservationsByUser :one
SELECT count(*)
FROM reservations
WHERE user_id = $1
`

func (q *Queries) CountReservationsByUser(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countReservationsByUser, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (user_id, user_email, stall_id, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateReservationParams struct {
	UserID    uuid.UUID          `json:"user_id"`
	UserEmail string             `json:"user_email"`
	StallID   int64              `json:"stall_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (int64, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.UserID,
		arg.UserEmail,
		arg.StallID,
		arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateReservationQRCode = `-- name: UpdateReservationQRCode :execrows
UPDATE reservations
SET qr_code_filename = $2
WHERE id = $1
`

func (q *Queries) UpdateReservationQRCode(ctx context.Context, db DBTX, id int64, filename string) (int64, error) {
	result, err := db.Exec(ctx, updateReservationQRCode, id, filename)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const reservationWithStallSelect = `SELECT
    r.id, r.user_id, r.user_email, r.stall_id, r.qr_code_filename, r.created_at,
    s.name, s.size, s.genres
FROM reservations r
JOIN stalls s ON s.id = r.stall_id
`

type ReservationWithStallRow struct {
	ID             int64              `json:"id"`
	UserID         uuid.UUID          `json:"user_id"`
	UserEmail      string             `json:"user_email"`
	StallID        int64              `json:"stall_id"`
	QrCodeFilename pgtype.Text        `json:"qr_code_filename"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	StallName      string             `json:"stall_name"`
	StallSize      string             `json:"stall_size"`
	StallGenres    pgtype.Text        `json:"stall_genres"`
}

func scanReservationWithStall(row interface{ Scan(...any) error }) (ReservationWithStallRow, error) {
	var i ReservationWithStallRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.UserEmail,
		&i.StallID,
		&i.QrCodeFilename,
		&i.CreatedAt,
		&i.StallName,
		&i.StallSize,
		&i.StallGenres,
	)
	return i, err
}

func collectReservationsWithStall(ctx context.Context, db DBTX, query string, args ...interface{}) ([]ReservationWithStallRow, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReservationWithStallRow
	for rows.Next() {
		i, err := scanReservationWithStall(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findReservationByID = `-- name: FindReservationByID :one
` + reservationWithStallSelect + `WHERE r.id = $1
`

func (q *Queries) FindReservationByID(ctx context.Context, db DBTX, id int64) (ReservationWithStallRow, error) {
	return scanReservationWithStall(db.QueryRow(ctx, findReservationByID, id))
}

const lockReservationByID = `-- name: LockReservationByID :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = $1
FOR UPDATE
`

func (q *Queries) LockReservationByID(ctx context.Context, db DBTX, id int64) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, lockReservationByID, id))
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations
WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteReservationsByUser = `-- name: DeleteReservationsByUser :many
DELETE FROM reservations
WHERE user_id = $1
RETURNING stall_id
`

func (q *Queries) DeleteReservationsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]int64, error) {
	rows, err := db.Query(ctx, deleteReservationsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int64
	for rows.Next() {
		var stallID int64
		if err := rows.Scan(&stallID); err != nil {
			return nil, err
		}
		items = append(items, stallID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteAllReservations = `-- name: DeleteAllReservations :execrows
DELETE FROM reservations
`

func (q *Queries) DeleteAllReservations(ctx context.Context, db DBTX) (int64, error) {
	result, err := db.Exec(ctx, deleteAllReservations)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listReservationsByUser = `-- name: ListReservationsByUser :many
` + reservationWithStallSelect + `WHERE r.user_id = $1
ORDER BY r.created_at, r.id
`

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]ReservationWithStallRow, error) {
	return collectReservationsWithStall(ctx, db, listReservationsByUser, userID)
}

const listAllReservations = `-- name: ListAllReservations :many
` + reservationWithStallSelect + `ORDER BY r.created_at DESC, r.id DESC
`

func (q *Queries) ListAllReservations(ctx context.Context, db DBTX) ([]ReservationWithStallRow, error) {
	return collectReservationsWithStall(ctx, db, listAllReservations)
}

const countReservations = `-- name: CountReservations :one
SELECT count(*)
FROM reservations
`

func (q *Queries) CountReservations(ctx context.Context, db DBTX) (int64, error) {
	row := db.QueryRow(ctx, countReservations)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countReservationsPerUser = `-- name: CountReservationsPerUser :many
SELECT user_id, count(*) AS reservations
FROM reservations
GROUP BY user_id
`

type CountReservationsPerUserRow struct {
	UserID       uuid.UUID `json:"user_id"`
	Reservations int64     `json:"reservations"`
}

func (q *Queries) CountReservationsPerUser(ctx context.Context, db DBTX) ([]CountReservationsPerUserRow, error) {
	rows, err := db.Query(ctx, countReservationsPerUser)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CountReservationsPerUserRow
	for rows.Next() {
		var i CountReservationsPerUserRow
		if err := rows.Scan(&i.UserID, &i.Reservations); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listReservationsMissingQR = `-- name: ListReservationsMissingQR :many
SELECT ` + reservationColumns + `
FROM reservations
WHERE qr_code_filename IS NULL AND created_at < $1
ORDER BY created_at
LIMIT $2
`

func (q *Queries) ListReservationsMissingQR(ctx context.Context, db DBTX, before pgtype.Timestamptz, limit int32) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsMissingQR, before, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reservations
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const userHoldsStall = `-- name: UserHoldsStall :one
SELECT EXISTS (
    SELECT 1 FROM reservations WHERE user_id = $1 AND stall_id = $2
)
`

func (q *Queries) UserHoldsStall(ctx context.Context, db DBTX, userID uuid.UUID, stallID int64) (bool, error) {
	row := db.QueryRow(ctx, userHoldsStall, userID, stallID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
