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

func TestRegistry(t *testing.T) {
	reg := pricing.NewRegistry(
		pricing.NewRivals(),
		pricing.NewRocketLeague(),
		pricing.NewArcRaiders(),
	)

	t.Run("lookup by game identifier", func(t *testing.T) {
		for _, game := range []order.Game{order.GameRivals, order.GameRocketLeague, order.GameArcRaiders} {
			s, err := reg.Lookup(game)
			require.NoError(t, err)
			assert.Equal(t, game, s.Game())
		}
	})

	t.Run("unknown game", func(t *testing.T) {
		_, err := reg.Lookup(order.Game("fortnite"))
		assert.ErrorIs(t, err, errs.ErrInvalidGame)
	})
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(1624), pricing.Cents(16.24, 1.0))
	assert.Equal(t, int64(3086), pricing.Cents(16.24, 1.9))
	assert.Equal(t, int64(0), pricing.Cents(0, 1.9))
	// Standard rounding, not truncation.
	assert.Equal(t, int64(1499), pricing.Cents(12.49, 1.2))
}
