package components

import (
	"smartpark/internal/domain/billing"
	"smartpark/internal/pkg/clock"
	"smartpark/internal/pkg/config"
	"smartpark/internal/usecase"
	"smartpark/internal/usecase/commands"
	"smartpark/internal/usecase/queries"

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
	func(cfg config.Config) *billing.Engine {
		return billing.NewEngine(cfg.Parking)
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewCarQueries,
		queries.NewRecordQueries,
		queries.NewPaymentQueries,
		queries.NewReportQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSlotCommands,
		commands.NewCarCommands,
		commands.NewSessionCommands,
		commands.NewPaymentCommands,
		commands.NewAuthCommands,
	),
)
