package api

import (
	"net/http"
	"strconv"

	reqdto "bookfair-reservation/internal/handler/dto/request"
	resdto "bookfair-reservation/internal/handler/dto/response"
	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	layoutCmds      commands.MapLayoutCommands
	stallCmds       commands.StallCommands
	reservationCmds commands.ReservationCommands
	userCmds        commands.UserCommands
	layouts         queries.MapLayoutQueries
	reservations    queries.ReservationQueries
	users           queries.UserQueries
}

func NewAdminHandler(
	layoutCmds commands.MapLayoutCommands,
	stallCmds commands.StallCommands,
	reservationCmds commands.ReservationCommands,
	userCmds commands.UserCommands,
	layouts queries.MapLayoutQueries,
	reservations queries.ReservationQueries,
	users queries.UserQueries,
) *AdminHandler {
	return &AdminHandler{
		layoutCmds:      layoutCmds,
		stallCmds:       stallCmds,
		reservationCmds: reservationCmds,
		userCmds:        userCmds,
		layouts:         layouts,
		reservations:    reservations,
		users:           users,
	}
}

// @Summary Latest map layout
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /admin/map-layout [get]
func (h *AdminHandler) GetMapLayout(c *gin.Context) {
	layout, err := h.layouts.GetLatest(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load map layout")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(layout))
}

// @Summary Save map layout
// @Description Stores the document and creates or updates its stalls by name
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object true "Layout document with halls"
// @Success 200 {object} resdto.SaveLayoutResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/map-layout [post]
func (h *AdminHandler) SaveMapLayout(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.layoutCmds.Save(c.Request.Context(), raw)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to save map layout")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaveLayoutResult(result))
}

// @Summary Delete all map layouts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /admin/map-layouts [delete]
func (h *AdminHandler) DeleteMapLayouts(c *gin.Context) {
	deleted, err := h.layoutCmds.DeleteAll(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to delete map layouts")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":           "All map layouts deleted successfully",
		"deletedMapLayouts": deleted,
	})
}

// @Summary All reservations
// @Description Newest first, with the owner's username
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AdminReservationListResponse
// @Router /admin/reservations [get]
func (h *AdminHandler) Reservations(c *gin.Context) {
	items, err := h.reservations.ListAllAdmin(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminReservationViews(items))
}

// @Summary Cancel reservation
// @Description Deletes the reservation and frees its stall
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id} [delete]
func (h *AdminHandler) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}

	if err := h.reservationCmds.Release(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Reservation deleted successfully"})
}

// @Summary Clear reservations
// @Description Deletes every reservation and marks every stall available
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ClearResponse
// @Router /admin/clear-reservations [delete]
func (h *AdminHandler) ClearReservations(c *gin.Context) {
	result, err := h.reservationCmds.ClearReservations(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to clear reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromClearResult(result, "All reservations cleared successfully", false))
}

// @Summary Clear all data
// @Description Clears reservations and map layouts; stalls and users stay
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ClearResponse
// @Router /admin/clear-all-data [delete]
func (h *AdminHandler) ClearAllData(c *gin.Context) {
	result, err := h.reservationCmds.ClearAllData(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to clear data")
		return
	}
	c.JSON(http.StatusOK, resdto.FromClearResult(result, "All data cleared successfully", true))
}

// @Summary Delete all stalls
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.DeleteStallsResponse
// @Router /admin/delete-all-stalls [delete]
func (h *AdminHandler) DeleteAllStalls(c *gin.Context) {
	result, err := h.stallCmds.DeleteAll(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to delete stalls")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeleteStallsResult(result))
}

// @Summary Reservation counters
// @Description Unauthenticated; intended for internal dashboards
// @Tags admin
// @Produce json
// @Success 200 {object} queries.ReservationStats
// @Router /admin/stats-internal [get]
func (h *AdminHandler) StatsInternal(c *gin.Context) {
	stats, err := h.reservations.Stats(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Reservations per user
// @Description Unauthenticated; keyed by user id
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /admin/user-counts-internal [get]
func (h *AdminHandler) UserCountsInternal(c *gin.Context) {
	counts, err := h.reservations.UserCounts(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load counts")
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary List users
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /admin/users [get]
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load users")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(users))
}

// @Summary Change user role
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateRoleRequest true "New role"
// @Success 200 {object} resdto.RoleUpdatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}

	var req reqdto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid role. Must be USER or ADMIN")
		return
	}

	view, err := h.userCmds.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to update role")
		return
	}
	c.JSON(http.StatusOK, resdto.RoleUpdatedResponse{
		Message: "User role updated successfully",
		User:    resdto.FromUserView(view),
	})
}

// @Summary Delete user
// @Description Deletes the user and frees every stall they held
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}

	if err := h.userCmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "User and their reservations deleted successfully"})
}

// @Summary Platform stats
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	userStats, err := h.users.Stats(ctx)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load stats")
		return
	}
	reservationStats, err := h.reservations.Stats(ctx)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load stats")
		return
	}

	c.JSON(http.StatusOK, resdto.StatsResponse{
		TotalUsers:        userStats.TotalUsers,
		AdminUsers:        userStats.AdminUsers,
		RegularUsers:      userStats.RegularUsers,
		TotalReservations: reservationStats.TotalReservations,
		TotalStalls:       reservationStats.TotalStalls,
		ReservedStalls:    reservationStats.ReservedStalls,
		AvailableStalls:   reservationStats.AvailableStalls,
	})
}
