package pricing

import (
	"strings"

	"topdog-boost/internal/domain/order"
	"topdog-boost/internal/pkg/errs"
)

// Arc Raiders sells fixed account-progression packs, no ladder.
type arcPack struct {
	Price float64
	Label string
}

var arcPacks = map[string]arcPack{
	"starter":   {Price: 42.0, Label: "Starter"},
	"advanced":  {Price: 115.0, Label: "Advanced"},
	"epic":      {Price: 235.0, Label: "Epic"},
	"legendary": {Price: 450.0, Label: "Legendary"},
}

type ArcRaiders struct{}

func NewArcRaiders() *ArcRaiders { return &ArcRaiders{} }

func (s *ArcRaiders) Game() order.Game    { return order.GameArcRaiders }
func (s *ArcRaiders) ProductName() string { return "TopDog Arc Raiders Boost" }
func (s *ArcRaiders) SuccessPath() string { return "/arcraiders/" }

func (s *ArcRaiders) ProductDesc(req *order.Request) string {
	if pack, ok := arcPacks[req.PackKey()]; ok {
		return pack.Label + " Pack"
	}
	return "Pack"
}

func (s *ArcRaiders) ValidateSelection(req *order.Request) error {
	if !strings.HasPrefix(req.Package, string(order.GameArcRaiders)+":") {
		return errs.ErrInvalidPackage
	}
	if _, ok := arcPacks[req.PackKey()]; !ok {
		return errs.ErrInvalidPackage
	}
	return nil
}

func (s *ArcRaiders) BasePrice(req *order.Request) float64 {
	return arcPacks[req.PackKey()].Price
}

// Packs carry no add-ons; the multiplier is always neutral.
func (s *ArcRaiders) AddonMultiplier(order.Addons) float64 {
	return 1.0
}
