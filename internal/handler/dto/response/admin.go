package response

import (
	"fmt"

	"bookfair-reservation/internal/usecase/commands"
)

type SaveLayoutResponse struct {
	Message       string `json:"message"`
	ID            int64  `json:"id"`
	HallsCount    int    `json:"hallsCount"`
	TotalStalls   int    `json:"totalStalls"`
	CreatedStalls int    `json:"createdStalls"`
	UpdatedStalls int    `json:"updatedStalls"`
	ErrorStalls   int    `json:"errorStalls,omitempty"`
	Warning       string `json:"warning,omitempty"`
}

type ClearResponse struct {
	Message             string `json:"message"`
	DeletedReservations int64  `json:"deletedReservations"`
	ResetStalls         int64  `json:"resetStalls"`
	DeletedMapLayouts   *int64 `json:"deletedMapLayouts,omitempty"`
}

type DeleteStallsResponse struct {
	Message             string `json:"message"`
	DeletedStalls       int64  `json:"deletedStalls"`
	DeletedReservations int64  `json:"deletedReservations"`
	Note                string `json:"note"`
}

type RoleUpdatedResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

type StatsResponse struct {
	TotalUsers        int64 `json:"totalUsers"`
	AdminUsers        int64 `json:"adminUsers"`
	RegularUsers      int64 `json:"regularUsers"`
	TotalReservations int64 `json:"totalReservations"`
	TotalStalls       int64 `json:"totalStalls"`
	ReservedStalls    int64 `json:"reservedStalls"`
	AvailableStalls   int64 `json:"availableStalls"`
}

func FromSaveLayoutResult(r *commands.SaveLayoutResult) *SaveLayoutResponse {
	out := copyInto[SaveLayoutResponse](r)
	out.Message = "Map layout saved successfully"
	if r.ErrorStalls > 0 {
		out.Warning = fmt.Sprintf("%d stalls failed to save", r.ErrorStalls)
	}
	return &out
}

func FromClearResult(r *commands.ClearResult, message string, withLayouts bool) *ClearResponse {
	out := &ClearResponse{
		Message:             message,
		DeletedReservations: r.DeletedReservations,
		ResetStalls:         r.ResetStalls,
	}
	if withLayouts {
		n := r.DeletedMapLayouts
		out.DeletedMapLayouts = &n
	}
	return out
}

func FromDeleteStallsResult(r *commands.DeleteStallsResult) *DeleteStallsResponse {
	out := copyInto[DeleteStallsResponse](r)
	out.Message = "All stalls and reservations deleted successfully"
	out.Note = "Stalls will be created automatically when you save a map layout."
	return &out
}
