package api

import (
	"errors"
	"net/http"

	reqdto "easebooking/internal/handler/dto/request"
	resdto "easebooking/internal/handler/dto/response"
	"easebooking/internal/handler/httperr"
	"easebooking/internal/handler/middleware"
	"easebooking/internal/pkg/config"
	"easebooking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errMissingSession = errors.New("session missing from context")

type CheckoutHandler struct {
	payments  commands.PaymentCommands
	cookieCfg config.CookieConfig
}

func NewCheckoutHandler(payments commands.PaymentCommands, cfg config.Config) *CheckoutHandler {
	return &CheckoutHandler{payments: payments, cookieCfg: cfg.Cookie}
}

// @Summary Checkout callback
// @Description Verify a completed checkout and confirm its booking
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutCallbackRequest true "Provider callback values"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /checkout/callback [post]
func (h *CheckoutHandler) Callback(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	var req reqdto.CheckoutCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := h.payments.ConfirmPayment(c.Request.Context(), sess, commands.ConfirmPaymentRequest{
		BookingID: req.BookingID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{
		Status:  "confirmed",
		Message: "Payment verified, booking confirmed",
	})
}

// @Summary Dismiss checkout
// @Description Record that the visitor closed the checkout UI without paying
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutDismissRequest true "Dismissed booking"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /checkout/dismiss [post]
func (h *CheckoutHandler) Dismiss(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	var req reqdto.CheckoutDismissRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.payments.DismissCheckout(c.Request.Context(), sess, req.BookingID); err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{
		Status:  "dismissed",
		Message: "Checkout closed, booking left unpaid",
	})
}

// @Summary Checkout attempt state
// @Description Report where a booking's checkout attempt stands
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.AttemptStateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/attempts/{bookingId} [get]
func (h *CheckoutHandler) AttemptState(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	bookingID, err := parseID(c.Param("bookingId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	state, err := h.payments.AttemptState(c.Request.Context(), sess, bookingID)
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AttemptStateResponse{
		BookingID: bookingID,
		State:     string(state),
	})
}
