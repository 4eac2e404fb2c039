package request

type ReserveRequest struct {
	StallID int64 `json:"stallId" binding:"required"`
}

type StallGenresRequest struct {
	Genres string `json:"genres"`
}
