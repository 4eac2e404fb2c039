package api

import (
	"net/http"

	reqdto "bookfair-reservation/internal/handler/dto/request"
	resdto "bookfair-reservation/internal/handler/dto/response"
	"bookfair-reservation/internal/handler/httperr"
	"bookfair-reservation/internal/usecase/commands"
	"bookfair-reservation/internal/usecase/notify"

	"github.com/gin-gonic/gin"
)

// EmailHandler exposes the notification templates to other services. Every
// delivery failure is a 500.
type EmailHandler struct {
	notifier notify.Dispatcher
	qr       commands.QRStore
}

func NewEmailHandler(notifier notify.Dispatcher, qr commands.QRStore) *EmailHandler {
	return &EmailHandler{notifier: notifier, qr: qr}
}

// @Summary Send welcome email
// @Tags email
// @Accept json
// @Produce json
// @Param request body reqdto.WelcomeEmailRequest true "Recipient"
// @Success 200 {object} resdto.MessageResponse
// @Failure 500 {object} httperr.Response
// @Router /email/welcome [post]
func (h *EmailHandler) Welcome(c *gin.Context) {
	var req reqdto.WelcomeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.notifier.Welcome(c.Request.Context(), req.ToNotification()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send welcome email", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Welcome email sent successfully"})
}

// @Summary Send reservation request email
// @Tags email
// @Accept json
// @Produce json
// @Param request body reqdto.ReservationEmailRequest true "Reservation"
// @Success 200 {object} resdto.MessageResponse
// @Failure 500 {object} httperr.Response
// @Router /email/reservation-request [post]
func (h *EmailHandler) ReservationRequest(c *gin.Context) {
	var req reqdto.ReservationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.notifier.ReservationRequested(c.Request.Context(), req.ToNotification("")); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send reservation request email", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Reservation request email sent successfully"})
}

// @Summary Send reservation confirmation email
// @Description Attaches the QR code when qrCodeFilename names an existing pass
// @Tags email
// @Accept json
// @Produce json
// @Param request body reqdto.ReservationEmailRequest true "Reservation"
// @Success 200 {object} resdto.MessageResponse
// @Failure 500 {object} httperr.Response
// @Router /email/reservation-confirmation [post]
func (h *EmailHandler) ReservationConfirmation(c *gin.Context) {
	var req reqdto.ReservationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	var qrPath string
	if req.QRCodeFilename != "" {
		qrPath = h.qr.Path(req.QRCodeFilename)
	}

	if err := h.notifier.ReservationConfirmed(c.Request.Context(), req.ToNotification(qrPath)); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send confirmation email", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Reservation confirmation email sent successfully"})
}
