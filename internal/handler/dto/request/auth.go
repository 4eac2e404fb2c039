package request

import (
	"strings"

	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

// RegisterRequest leaves the email and password rules to the domain so the
// client gets the specific validation message.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Genres   string `json:"genres"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Username: strings.TrimSpace(r.Username),
		Email:    r.Email,
		Password: r.Password,
		Genres:   r.Genres,
	}
}
