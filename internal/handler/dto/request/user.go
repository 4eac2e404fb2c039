package request

type UpdateGenresRequest struct {
	Email  string `json:"email" binding:"required"`
	Genres string `json:"genres"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
