package bootstrap

import (
	"topdog-boost/internal/pkg/config"

	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		NewStripeClient,
	),
)

func NewStripeClient(cfg config.Config) *client.API {
	sc := &client.API{}
	sc.Init(cfg.Stripe.SecretKey, nil)
	return sc
}
