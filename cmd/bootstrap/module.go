package bootstrap

import (
	"topdog-boost/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StripeModule,
	DiscordModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
