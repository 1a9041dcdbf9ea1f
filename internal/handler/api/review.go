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

type ReviewHandler struct {
	reviews   commands.ReviewCommands
	cookieCfg config.CookieConfig
}

func NewReviewHandler(reviews commands.ReviewCommands, cfg config.Config) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, cookieCfg: cfg.Cookie}
}

// @Summary Create review
// @Description Submit a rating for a place the caller has visited
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.StatusResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingSession, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := h.reviews.CreateReview(c.Request.Context(), sess, commands.CreateReviewRequest{
		PlaceID: req.PlaceID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(c, h.cookieCfg, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.StatusResponse{
		Status:  "created",
		Message: "Review submitted",
	})
}
