package response

import (
	"fmt"

	"topdog-boost/internal/usecase/commands"
)

// QuoteResponse mirrors the client-side preview contract: cent amounts for
// math, formatted strings for display.
type QuoteResponse struct {
	AmountCents     int64  `json:"amountCents"`
	Amount          string `json:"amount"`
	BaseAmountCents int64  `json:"baseAmountCents"`
	BaseAmount      string `json:"baseAmount"`
	DiscountCents   int64  `json:"discountCents"`
	Discount        string `json:"discount"`
	PromoApplied    bool   `json:"promoApplied"`
	PromoCode       string `json:"promoCode,omitempty"`
	ProductName     string `json:"productName"`
	ProductDesc     string `json:"productDesc"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
	// Alias for pages reading data.url instead of data.checkoutUrl.
	URL          string `json:"url"`
	OrderID      string `json:"orderId"`
	PromoApplied bool   `json:"promoApplied"`
	PromoCode    string `json:"promoCode,omitempty"`
}

func FromQuoteResult(res *commands.QuoteResult) *QuoteResponse {
	return &QuoteResponse{
		AmountCents:     res.AmountCents,
		Amount:          formatCents(res.AmountCents),
		BaseAmountCents: res.BaseAmountCents,
		BaseAmount:      formatCents(res.BaseAmountCents),
		DiscountCents:   res.DiscountCents,
		Discount:        formatCents(res.DiscountCents),
		PromoApplied:    res.PromoApplied,
		PromoCode:       res.PromoCode,
		ProductName:     res.ProductName,
		ProductDesc:     res.ProductDesc,
	}
}

func FromCheckoutResult(res *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		CheckoutURL:  res.CheckoutURL,
		URL:          res.CheckoutURL,
		OrderID:      res.OrderID,
		PromoApplied: res.PromoApplied,
		PromoCode:    res.PromoCode,
	}
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
