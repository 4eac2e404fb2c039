//go:build unit || e2e

package builder

import (
	reqdto "bookfair-reservation/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Email    string
	Password string
	Genres   string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "vendor",
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithGenres(genres string) *AuthBuilder {
	a.Genres = genres
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: a.Username,
		Email:    a.Email,
		Password: a.Password,
		Genres:   a.Genres,
	}
}
