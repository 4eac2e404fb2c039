package user

import (
	"regexp"
	"strings"

	"bookfair-reservation/internal/pkg/errs"
)

var (
	ErrInvalidEmail     = errs.NewKind("invalid email format", errs.ErrValidation)
	ErrInvalidRole      = errs.NewKind("Invalid role. Must be USER or ADMIN", errs.ErrValidation)
	ErrPasswordTooWeak  = errs.NewKind("password must be at least 8 characters long", errs.ErrValidation)
	ErrUsernameRequired = errs.NewKind("username is required", errs.ErrValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is always lower-case so lookups and the unique index agree.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

var ErrInvalidCredentials = errs.NewKind("Invalid email or password", errs.ErrUnauthorized)

type Credentials struct {
	email    Email
	password string
}

// NewCredentials does not apply the password policy; a login with a short
// password simply fails to match.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{email: email, password: passwordStr}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
