package components

import (
	"topdog-boost/internal/infra/discordgw"
	"topdog-boost/internal/infra/memory"
	"topdog-boost/internal/infra/stripegw"
	"topdog-boost/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		stripegw.New,
		func(gw *stripegw.Gateway) commands.PaymentGateway { return gw },
		func(gw *stripegw.Gateway) commands.WebhookVerifier { return gw },
		fx.Annotate(
			discordgw.New,
			fx.As(new(commands.BoosterChannel)),
		),
		memory.NewOrderMemory,
	),
)
