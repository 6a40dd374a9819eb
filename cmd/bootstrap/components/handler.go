package components

import (
	"smartpark/internal/handler"
	"smartpark/internal/handler/api"
	"smartpark/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSlotHandler,
		api.NewCarHandler,
		api.NewRecordHandler,
		api.NewPaymentHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
