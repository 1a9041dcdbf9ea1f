package api

import (
	"net/http"

	"easebooking/internal/handler/httperr"
	"easebooking/internal/handler/middleware"
	"easebooking/internal/pkg/config"
	"easebooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	bookings  queries.BookingQueries
	stats     queries.StatsQueries
	cookieCfg config.CookieConfig
}

func NewDashboardHandler(bookings queries.BookingQueries, stats queries.StatsQueries, cfg config.Config) *DashboardHandler {
	return &DashboardHandler{bookings: bookings, stats: stats, cookieCfg: cfg.Cookie}
}

// @Summary Visitor dashboard
// @Description List the caller's bookings split into upcoming and past
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.VisitorDashboardView
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /dashboard/visitor [get]
func (h *DashboardHandler) Visitor(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	view, err := h.bookings.VisitorDashboard(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Owner dashboard
// @Description Aggregate bookings and revenue across the caller's places
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.OwnerDashboardView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /dashboard/owner [get]
func (h *DashboardHandler) Owner(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	view, err := h.stats.OwnerDashboard(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
