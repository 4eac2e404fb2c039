package api

import (
	"errors"
	"log/slog"
	"net/http"

	"bookfair-reservation/internal/domain/maplayout"
	"bookfair-reservation/internal/domain/reservation"
	"bookfair-reservation/internal/domain/stall"
	"bookfair-reservation/internal/domain/user"
	"bookfair-reservation/internal/handler/httperr"
	"bookfair-reservation/internal/pkg/errs"
	"bookfair-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// publicErrors carry messages that are safe to show to clients. The first
// match wins, so more specific sentinels come first.
var publicErrors = []error{
	user.ErrInvalidCredentials,
	user.ErrNotFound,
	user.ErrInvalidEmail,
	user.ErrInvalidRole,
	user.ErrPasswordTooWeak,
	user.ErrUsernameRequired,
	commands.ErrEmailAlreadyExists,
	commands.ErrEmailMismatch,
	commands.ErrNotStallHolder,
	stall.ErrNotFound,
	stall.ErrAlreadyReserved,
	stall.ErrNameRequired,
	stall.ErrInvalidSize,
	reservation.ErrNotFound,
	reservation.ErrInvalidStallRef,
	maplayout.ErrHallsRequired,
	maplayout.ErrNoStalls,
}

func publicMessage(err error) (string, bool) {
	var quotaErr *reservation.QuotaError
	if errors.As(err, &quotaErr) {
		return quotaErr.Error(), true
	}
	for _, sentinel := range publicErrors {
		if errors.Is(err, sentinel) {
			return sentinel.Error(), true
		}
	}
	return "", false
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrQuotaExceeded), errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// abortWithUseCaseError maps a use case failure onto a status and a client
// message. fallback is used for classified errors without a public message.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	abortWithStatus(c, statusOf(err), err, fallback)
}

func abortWithStatus(c *gin.Context, status int, err error, fallback string) {
	msg, ok := publicMessage(err)
	switch {
	case status == http.StatusInternalServerError:
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 5))
		msg = "Internal server error"
	case !ok:
		msg = fallback
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}

var errUnauthenticated = errs.NewKind("caller identity missing", errs.ErrUnauthorized)

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
