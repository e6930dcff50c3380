package request

import (
	"topdog-boost/internal/domain/order"
)

type CheckoutAddons struct {
	Priority     bool `json:"priority"`
	SpecificHero bool `json:"specificHero"`
	LowRR        bool `json:"lowRR"`
}

// CheckoutRequest is the shared quote/checkout submission. Some storefront
// pages send `package`, some send `pack`; both are accepted.
type CheckoutRequest struct {
	Game           string         `json:"game" binding:"required"`
	Quote          bool           `json:"quote"`
	Package        string         `json:"package"`
	Pack           string         `json:"pack"`
	RankFrom       string         `json:"rankFrom"`
	RankTo         string         `json:"rankTo"`
	DivisionPoints *float64       `json:"divisionPoints"`
	Addons         CheckoutAddons `json:"addons"`
	HeroName       string         `json:"heroName"`
	Discord        string         `json:"discord"`
	Platform       string         `json:"platform"`
	IGN            string         `json:"ign"`
	Region         string         `json:"region"`
	Notes          string         `json:"notes"`
	PromoCode      string         `json:"promoCode"`
}

func (r CheckoutRequest) ToDomain() *order.Request {
	pkg := r.Package
	if pkg == "" {
		pkg = r.Pack
	}
	return &order.Request{
		Game:           order.Game(r.Game),
		Quote:          r.Quote,
		Package:        pkg,
		RankFrom:       r.RankFrom,
		RankTo:         r.RankTo,
		DivisionPoints: r.DivisionPoints,
		Addons: order.Addons{
			Priority:     r.Addons.Priority,
			SpecificHero: r.Addons.SpecificHero,
			LowRR:        r.Addons.LowRR,
		},
		HeroName:  r.HeroName,
		Discord:   r.Discord,
		Platform:  r.Platform,
		IGN:       r.IGN,
		Region:    r.Region,
		Notes:     r.Notes,
		PromoCode: r.PromoCode,
	}
}
