package api

import (
	"net/http"

	reqdto "bookfair-reservation/internal/handler/dto/request"
	resdto "bookfair-reservation/internal/handler/dto/response"
	"bookfair-reservation/internal/handler/middleware"
	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Own profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /user/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	view, err := h.q.GetByEmail(c.Request.Context(), email)
	if err != nil {
		abortWithUseCaseError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Update literary genres
// @Description Vendors update their own genres; admins may update anyone
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateGenresRequest true "Genres"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /user/genres [post]
func (h *UserHandler) UpdateGenres(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req reqdto.UpdateGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.cmds.UpdateGenres(c.Request.Context(), caller, req.Email, req.Genres); err != nil {
		abortWithUseCaseError(c, err, "Failed to update genres")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Genres updated"})
}

// @Summary Get user by id
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /user/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Get user by email
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /user/email/{email} [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	view, err := h.q.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithUseCaseError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
