package components

import (
	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/pkg/clock"
	"github.com/Evidive-blue/evidive/internal/usecase"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clock clock.Clock) *booking.Services {
		return &booking.Services{
			Clock: clock,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewCheckoutCommands,
		commands.NewWebhookCommands,
		commands.NewPayoutCommands,
		commands.NewConnectCommands,
		commands.NewSettingsCommands,
		commands.NewScheduleCommands,
		commands.NewServiceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccessQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewPaymentQueries,
		queries.NewConnectQueries,
		queries.NewSettingsQueries,
		queries.NewCouponQueries,
		queries.NewScheduleQueries,
		queries.NewServiceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
