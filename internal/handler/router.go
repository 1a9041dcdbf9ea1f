package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"easebooking/internal/domain/user"
	"easebooking/internal/handler/api"
	"easebooking/internal/handler/middleware"
	"easebooking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	checkoutHandler *api.CheckoutHandler,
	dashboardHandler *api.DashboardHandler,
	placeHandler *api.PlaceHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, checkoutHandler, dashboardHandler, placeHandler, reviewHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	checkoutHandler *api.CheckoutHandler,
	dashboardHandler *api.DashboardHandler,
	placeHandler *api.PlaceHandler,
	reviewHandler *api.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		places := apiGroup.Group("/places")
		{
			addRoutes(places, []route{
				{Method: http.MethodGet, Path: "", Handler: placeHandler.List},
				{Method: http.MethodPost, Path: "", Handler: placeHandler.Create,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
				{Method: http.MethodGet, Path: "/:id", Handler: placeHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: placeHandler.Update,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
				{Method: http.MethodGet, Path: "/:id/review-eligibility", Handler: placeHandler.ReviewEligibility,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleVisitor)}},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: placeHandler.Bookings,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}},
			})
		}

		visitor := apiGroup.Group("")
		visitor.Use(authMiddleware.RequireRole(user.RoleVisitor))
		{
			addRoutes(visitor, []route{
				{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Create},
				{Method: http.MethodPost, Path: "/checkout/callback", Handler: checkoutHandler.Callback},
				{Method: http.MethodPost, Path: "/checkout/dismiss", Handler: checkoutHandler.Dismiss},
				{Method: http.MethodGet, Path: "/checkout/attempts/:bookingId", Handler: checkoutHandler.AttemptState},
				{Method: http.MethodGet, Path: "/dashboard/visitor", Handler: dashboardHandler.Visitor},
				{Method: http.MethodPost, Path: "/reviews", Handler: reviewHandler.Create},
			})
		}

		owner := apiGroup.Group("")
		owner.Use(authMiddleware.RequireRole(user.RoleOwner))
		{
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/dashboard/owner", Handler: dashboardHandler.Owner},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
