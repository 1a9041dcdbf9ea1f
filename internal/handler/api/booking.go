package api

import (
	"net/http"

	reqdto "easebooking/internal/handler/dto/request"
	resdto "easebooking/internal/handler/dto/response"
	"easebooking/internal/handler/httperr"
	"easebooking/internal/handler/middleware"
	"easebooking/internal/pkg/config"
	"easebooking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	payments  commands.PaymentCommands
	cookieCfg config.CookieConfig
}

func NewBookingHandler(payments commands.PaymentCommands, cfg config.Config) *BookingHandler {
	return &BookingHandler{payments: payments, cookieCfg: cfg.Cookie}
}

// @Summary Create booking
// @Description Create a booking and open a checkout session for it
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.payments.StartAttempt(c.Request.Context(), sess, commands.StartAttemptRequest{
		PlaceID:   req.PlaceID,
		VisitDate: req.VisitDate,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStartAttempt(result))
}
