package components

import (
	"easebooking/internal/handler"
	"easebooking/internal/handler/api"
	"easebooking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCheckoutHandler,
		api.NewDashboardHandler,
		api.NewPlaceHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
