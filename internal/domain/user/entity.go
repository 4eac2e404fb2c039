package user

import (
	"strings"
	"time"

	"bookfair-reservation/internal/domain/genre"
	"bookfair-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotFound = errs.NewKind("User not found", errs.ErrNotFound)

type User struct {
	id           uuid.UUID
	username     string
	email        Email
	passwordHash string
	role         Role
	genres       string
	createdAt    time.Time
}

func NewUser(username string, email Email, passwordHash string, role Role, genres string, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		genres:       genre.Normalize(genres),
		createdAt:    now,
	}, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Genres() string       { return u.genres }
func (u *User) CreatedAt() time.Time { return u.createdAt }
