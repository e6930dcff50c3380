package promo

import (
	"math"
	"strings"
)

// Promo is a discount definition resolved from the payment provider's
// active promotion codes. Estimates derived from it are advisory only; the
// provider re-validates at settlement and remains the authority on the
// final amount.
type Promo struct {
	Code            string
	PromotionCodeID string
	PercentOff      *float64
	AmountOffCents  *int64
	Currency        string
}

// Normalize uppercases a user-supplied code for case-insensitive matching.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// EstimateCents computes the estimated discount in minor currency units.
// Amount-off coupons are capped at the order amount and contribute nothing
// when their currency differs from the settlement currency.
func (p *Promo) EstimateCents(amountCents int64, currency string) int64 {
	if p == nil {
		return 0
	}
	if p.PercentOff != nil {
		return int64(math.Round(float64(amountCents) * *p.PercentOff / 100.0))
	}
	if p.AmountOffCents != nil {
		if !strings.EqualFold(p.Currency, currency) {
			return 0
		}
		if *p.AmountOffCents > amountCents {
			return amountCents
		}
		return *p.AmountOffCents
	}
	return 0
}
