//go:build unit

package promo_test

import (
	"testing"

	"topdog-boost/internal/domain/promo"

	"github.com/stretchr/testify/assert"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int64) *int64     { return &v }

func TestNormalize(t *testing.T) {
	assert.Equal(t, "SAVE10", promo.Normalize("  save10 "))
	assert.Equal(t, "", promo.Normalize("   "))
}

func TestEstimateCents(t *testing.T) {
	t.Run("nil promo estimates zero", func(t *testing.T) {
		var p *promo.Promo
		assert.Equal(t, int64(0), p.EstimateCents(1624, "usd"))
	})

	t.Run("percent off rounds to the nearest cent", func(t *testing.T) {
		p := &promo.Promo{Code: "SAVE10", PercentOff: ptrF(10)}
		assert.Equal(t, int64(162), p.EstimateCents(1624, "usd"))

		half := &promo.Promo{Code: "HALF", PercentOff: ptrF(50)}
		assert.Equal(t, int64(813), half.EstimateCents(1625, "usd"))
	})

	t.Run("amount off is capped at the order amount", func(t *testing.T) {
		p := &promo.Promo{Code: "FIVE", AmountOffCents: ptrI(500), Currency: "usd"}
		assert.Equal(t, int64(500), p.EstimateCents(1624, "usd"))

		big := &promo.Promo{Code: "BIG", AmountOffCents: ptrI(5000), Currency: "usd"}
		assert.Equal(t, int64(1624), big.EstimateCents(1624, "usd"))
	})

	t.Run("amount off in a foreign currency contributes nothing", func(t *testing.T) {
		p := &promo.Promo{Code: "EUROS", AmountOffCents: ptrI(500), Currency: "eur"}
		assert.Equal(t, int64(0), p.EstimateCents(1624, "usd"))
	})

	t.Run("currency comparison is case-insensitive", func(t *testing.T) {
		p := &promo.Promo{Code: "FIVE", AmountOffCents: ptrI(500), Currency: "USD"}
		assert.Equal(t, int64(500), p.EstimateCents(1624, "usd"))
	})

	t.Run("promo without a discount definition estimates zero", func(t *testing.T) {
		p := &promo.Promo{Code: "EMPTY"}
		assert.Equal(t, int64(0), p.EstimateCents(1624, "usd"))
	})
}
