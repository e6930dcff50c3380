//go:build unit

package pricing_test

import (
	"testing"

	"topdog-boost/internal/domain/order"
	"topdog-boost/internal/domain/pricing"
	"topdog-boost/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rlReq(from, to string) *order.Request {
	r := &order.Request{
		Game:     order.GameRocketLeague,
		RankFrom: from,
		RankTo:   to,
	}
	r.Package = r.ExpectedPackage()
	return r
}

func TestRocketLeagueValidateSelection(t *testing.T) {
	s := pricing.NewRocketLeague()

	require.NoError(t, s.ValidateSelection(rlReq("Bronze 3", "Bronze 1")))

	assert.ErrorIs(t, s.ValidateSelection(rlReq("", "")), errs.ErrInvalidRankSelection)
	assert.ErrorIs(t, s.ValidateSelection(rlReq("Gold 1", "Gold 1")), errs.ErrInvalidRankSelection)
	assert.ErrorIs(t, s.ValidateSelection(rlReq("Diamond 1", "Gold 2")), errs.ErrInvalidRankSelection)

	tampered := rlReq("Bronze 3", "Bronze 1")
	tampered.Package = "rocketleague:Bronze 3->SSL"
	assert.ErrorIs(t, s.ValidateSelection(tampered), errs.ErrInvalidPackage)
}

func TestRocketLeagueBasePrice(t *testing.T) {
	s := pricing.NewRocketLeague()

	t.Run("each step costs the destination tier's rate", func(t *testing.T) {
		assert.InDelta(t, 6.00, s.BasePrice(rlReq("Bronze 3", "Bronze 1")), 1e-9)
		assert.InDelta(t, 3.50, s.BasePrice(rlReq("Bronze 1", "Silver 3")), 1e-9)
		assert.InDelta(t, 6.00, s.BasePrice(rlReq("Gold 1", "Platinum 3")), 1e-9)
		assert.InDelta(t, 16.00, s.BasePrice(rlReq("Diamond 1", "Champion 3")), 1e-9)
		assert.InDelta(t, 30.00, s.BasePrice(rlReq("Champion 1", "Grand Champion 3")), 1e-9)
	})

	t.Run("multi-tier climb sums the per-step rates", func(t *testing.T) {
		// Silver 2 -> Gold 2: Silver 1 + Gold 3 + Gold 2
		assert.InDelta(t, 3.50+4.25+4.25, s.BasePrice(rlReq("Silver 2", "Gold 2")), 1e-9)
	})

	t.Run("final jump into SSL is flat", func(t *testing.T) {
		assert.InDelta(t, 199.00, s.BasePrice(rlReq("Grand Champion 1", "SSL")), 1e-9)
		assert.InDelta(t, 30.00*2+199.00, s.BasePrice(rlReq("Grand Champion 3", "SSL")), 1e-9)
	})

	t.Run("invalid selections price to zero", func(t *testing.T) {
		assert.Zero(t, s.BasePrice(rlReq("SSL", "Bronze 3")))
		assert.Zero(t, s.BasePrice(rlReq("Unranked", "Gold 1")))
	})
}

func TestRocketLeagueAddonMultiplier(t *testing.T) {
	s := pricing.NewRocketLeague()

	assert.InDelta(t, 1.0, s.AddonMultiplier(order.Addons{}), 1e-9)
	assert.InDelta(t, 1.2, s.AddonMultiplier(order.Addons{Priority: true}), 1e-9)
	assert.InDelta(t, 1.5, s.AddonMultiplier(order.Addons{LowRR: true}), 1e-9)
	// Specific hero does not exist for this game.
	assert.InDelta(t, 1.0, s.AddonMultiplier(order.Addons{SpecificHero: true}), 1e-9)
	assert.InDelta(t, 1.7, s.AddonMultiplier(order.Addons{Priority: true, LowRR: true}), 1e-9)
}
