package components

import (
	"topdog-boost/internal/handler"
	"topdog-boost/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewStripeWebhookHandler,
		api.NewInteractionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
