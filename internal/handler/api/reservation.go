package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "bookfair-reservation/internal/handler/dto/request"
	resdto "bookfair-reservation/internal/handler/dto/response"
	"bookfair-reservation/internal/handler/middleware"
	"bookfair-reservation/internal/pkg/errs"
	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds    commands.ReservationCommands
	q       queries.ReservationQueries
	stalls  queries.StallQueries
	layouts queries.MapLayoutQueries
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	q queries.ReservationQueries,
	stalls queries.StallQueries,
	layouts queries.MapLayoutQueries,
) *ReservationHandler {
	return &ReservationHandler{
		cmds:    cmds,
		q:       q,
		stalls:  stalls,
		layouts: layouts,
	}
}

// @Summary Available stalls
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.StallResponse
// @Router /reservations/available [get]
func (h *ReservationHandler) Available(c *gin.Context) {
	stalls, err := h.stalls.ListAvailable(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load stalls")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStallViews(stalls))
}

// @Summary All stalls
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.StallResponse
// @Router /reservations/all [get]
func (h *ReservationHandler) All(c *gin.Context) {
	stalls, err := h.stalls.ListAll(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load stalls")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStallViews(stalls))
}

// @Summary Latest map layout
// @Description Returns the stored document verbatim, or an empty layout
// @Tags reservations
// @Produce json
// @Success 200 {object} map[string]any
// @Router /reservations/map-layout [get]
func (h *ReservationHandler) MapLayout(c *gin.Context) {
	layout, err := h.layouts.GetLatest(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load map layout")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(layout))
}

// @Summary Reserve a stall
// @Description Books a stall for the caller. A vendor holds at most the configured number of stalls.
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ReserveRequest true "Stall to reserve"
// @Success 200 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /reservations/reserve [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), email, req.StallID)
	if err != nil {
		status := statusOf(err)
		// reserve reports conflicts as 400
		if errors.Is(err, errs.ErrConflict) {
			status = http.StatusBadRequest
		}
		abortWithStatus(c, status, err, "Reservation failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserveResult(result))
}

// @Summary My reservations
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations/my-reservations [get]
func (h *ReservationHandler) MyReservations(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	items, err := h.q.ListMine(c.Request.Context(), email)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(items))
}

// @Summary Update stall genres
// @Description Only the vendor holding the stall may change its genres
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Stall ID"
// @Param request body reqdto.StallGenresRequest true "Genres"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/stalls/{id}/genres [post]
func (h *ReservationHandler) UpdateStallGenres(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	stallID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}

	var req reqdto.StallGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.cmds.UpdateStallGenres(c.Request.Context(), email, stallID, req.Genres); err != nil {
		abortWithUseCaseError(c, err, "Failed to update genres")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Stall genres updated successfully"})
}
