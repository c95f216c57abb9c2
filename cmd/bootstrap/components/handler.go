package components

import (
	"go.uber.org/fx"

	"clinic-booking/internal/handler"
	"clinic-booking/internal/handler/api"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewSlotHandler,
		api.NewDirectoryHandler,
	),
	fx.Invoke(handler.NewRouter),
)
