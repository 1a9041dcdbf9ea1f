package api

import (
	"net/http"
	"strconv"

	reqdto "easebooking/internal/handler/dto/request"
	resdto "easebooking/internal/handler/dto/response"
	"easebooking/internal/handler/httperr"
	"easebooking/internal/handler/middleware"
	"easebooking/internal/pkg/config"
	"easebooking/internal/usecase/commands"
	"easebooking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PlaceHandler struct {
	places    queries.PlaceQueries
	bookings  queries.BookingQueries
	commands  commands.PlaceCommands
	cookieCfg config.CookieConfig
}

func NewPlaceHandler(places queries.PlaceQueries, bookings queries.BookingQueries, cmds commands.PlaceCommands, cfg config.Config) *PlaceHandler {
	return &PlaceHandler{places: places, bookings: bookings, commands: cmds, cookieCfg: cfg.Cookie}
}

// @Summary List places
// @Description List all bookable places
// @Tags places
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.PlaceSummaryView
// @Failure 401 {object} map[string]string
// @Router /places [get]
func (h *PlaceHandler) List(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	views, err := h.places.List(c.Request.Context(), sess)
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get place
// @Description Get one place with its gallery and reviews
// @Tags places
// @Produce json
// @Security BearerAuth
// @Param id path int true "Place ID"
// @Success 200 {object} queries.PlaceDetailView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /places/{id} [get]
func (h *PlaceHandler) Get(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	placeID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.places.Get(c.Request.Context(), sess, placeID)
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List place bookings
// @Description List a place's bookings for its owner's management table
// @Tags places
// @Produce json
// @Security BearerAuth
// @Param id path int true "Place ID"
// @Success 200 {array} queries.PlaceBookingRow
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /places/{id}/bookings [get]
func (h *PlaceHandler) Bookings(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	placeID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	rows, err := h.places.PlaceBookings(c.Request.Context(), sess, placeID)
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Review eligibility
// @Description Tell whether the caller may review a place yet
// @Tags places
// @Produce json
// @Security BearerAuth
// @Param id path int true "Place ID"
// @Success 200 {object} queries.EligibilityView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /places/{id}/review-eligibility [get]
func (h *PlaceHandler) ReviewEligibility(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	placeID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.bookings.ReviewEligibility(c.Request.Context(), sess, placeID)
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create place
// @Description Publish a new listing for the calling owner
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertPlaceRequest true "Listing form"
// @Success 201 {object} resdto.PlaceCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /places [post]
func (h *PlaceHandler) Create(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	var req reqdto.UpsertPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	placeID, err := h.commands.CreatePlace(c.Request.Context(), sess, toUpsertRequest(req))
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.PlaceCreatedResponse{PlaceID: placeID})
}

// @Summary Update place
// @Description Overwrite a listing's editable fields
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Place ID"
// @Param request body reqdto.UpsertPlaceRequest true "Listing form"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /places/{id} [put]
func (h *PlaceHandler) Update(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	placeID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpsertPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.commands.UpdatePlace(c.Request.Context(), sess, placeID, toUpsertRequest(req)); err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{
		Status:  "updated",
		Message: "Place saved",
	})
}

func toUpsertRequest(req reqdto.UpsertPlaceRequest) commands.UpsertPlaceRequest {
	return commands.UpsertPlaceRequest{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Timings:     req.Timings,
		PriceMinor:  req.Price,
		ImageURL:    req.ImageURL,
		MapsURL:     req.MapsURL,
	}
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
