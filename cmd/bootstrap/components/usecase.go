package components

import (
	"easebooking/internal/pkg/clock"
	"easebooking/internal/usecase/commands"
	"easebooking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPaymentCommands,
		commands.NewPlaceCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingStore,
		queries.NewBookingQueries,
		queries.NewPlaceQueries,
		queries.NewStatsQueries,
	),
)
