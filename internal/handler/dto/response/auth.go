package response

import (
	"bookfair-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Genres   string    `json:"genres"`
}

type LoginResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	out := copyInto[UserResponse](v)
	return &out
}

func FromUserViews(vs []queries.UserView) []UserResponse {
	out := copyInto[[]UserResponse](vs)
	if out == nil {
		return []UserResponse{}
	}
	return out
}
