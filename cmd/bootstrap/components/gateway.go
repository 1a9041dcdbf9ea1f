package components

import (
	"easebooking/internal/infra/backend"
	"easebooking/internal/infra/checkout"
	"easebooking/internal/pkg/config"
	"easebooking/internal/usecase/commands"
	"easebooking/internal/usecase/queries"

	"go.uber.org/fx"
)

// GatewayModule wires the outbound collaborators: the booking backend
// REST client and the checkout provider gateway.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.BackendConfig { return cfg.Backend },
		func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
		fx.Annotate(
			backend.NewClient,
			fx.As(new(commands.BookingGateway)),
			fx.As(new(commands.ReviewGateway)),
			fx.As(new(commands.PlaceGateway)),
			fx.As(new(commands.BookingReader)),
			fx.As(new(queries.BookingReader)),
			fx.As(new(queries.PlaceReader)),
		),
		checkout.NewGateway,
		checkout.NewCompletions,
	),
)
