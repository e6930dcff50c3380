//go:build unit || e2e

package builder

import (
	"topdog-boost/internal/domain/order"
	reqdto "topdog-boost/internal/handler/dto/request"
)

// CheckoutBuilder produces a valid rank-boost submission; tests mutate
// individual fields from this baseline.
type CheckoutBuilder struct {
	Game     string
	Quote    bool
	Package  string
	RankFrom string
	RankTo   string
	Addons   reqdto.CheckoutAddons
	HeroName string
	Discord  string
	Platform string
	IGN      string
	Region   string
	Notes    string
	Promo    string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Game:     string(order.GameRivals),
		Package:  "rivals:Bronze 3->Bronze 2",
		RankFrom: "Bronze 3",
		RankTo:   "Bronze 2",
		Discord:  "booster#0001",
		Platform: "PC",
		IGN:      "TestPlayer",
		Region:   "NA",
	}
}

func (b *CheckoutBuilder) WithQuote() *CheckoutBuilder {
	b.Quote = true
	return b
}

func (b *CheckoutBuilder) WithGame(game, pkg, from, to string) *CheckoutBuilder {
	b.Game = game
	b.Package = pkg
	b.RankFrom = from
	b.RankTo = to
	return b
}

func (b *CheckoutBuilder) WithPromo(code string) *CheckoutBuilder {
	b.Promo = code
	return b
}

func (b *CheckoutBuilder) BuildDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		Game:      b.Game,
		Quote:     b.Quote,
		Package:   b.Package,
		RankFrom:  b.RankFrom,
		RankTo:    b.RankTo,
		Addons:    b.Addons,
		HeroName:  b.HeroName,
		Discord:   b.Discord,
		Platform:  b.Platform,
		IGN:       b.IGN,
		Region:    b.Region,
		Notes:     b.Notes,
		PromoCode: b.Promo,
	}
}

func (b *CheckoutBuilder) BuildDomain() *order.Request {
	dto := b.BuildDTO()
	return dto.ToDomain()
}
