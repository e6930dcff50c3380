package components

import (
	"topdog-boost/internal/domain/pricing"
	"topdog-boost/internal/pkg/clock"
	"topdog-boost/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() *pricing.Registry {
		return pricing.NewRegistry(
			pricing.NewRivals(),
			pricing.NewRocketLeague(),
			pricing.NewArcRaiders(),
		)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewPaymentEventUseCase,
		commands.NewInteractionUseCase,
	),
)
