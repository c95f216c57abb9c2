package components

import (
	"go.uber.org/fx"

	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
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
		commands.NewBookingUseCase,
		commands.NewSlotUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewBookingQueries,
		queries.NewDoctorQueries,
		queries.NewHospitalQueries,
	),
)
