package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"topdog-boost/internal/domain/order"
	"topdog-boost/internal/domain/pricing"
	"topdog-boost/internal/domain/promo"
	"topdog-boost/internal/pkg/clock"
	"topdog-boost/internal/pkg/config"
	"topdog-boost/internal/pkg/errs"
)

type QuoteResult struct {
	AmountCents     int64
	BaseAmountCents int64
	DiscountCents   int64
	PromoApplied    bool
	PromoCode       string
	ProductName     string
	ProductDesc     string
}

type CheckoutResult struct {
	CheckoutURL  string
	OrderID      string
	PromoApplied bool
	PromoCode    string
}

type CheckoutCommands interface {
	Quote(ctx context.Context, req *order.Request) (*QuoteResult, error)
	CreateCheckout(ctx context.Context, req *order.Request, requestOrigin string) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	registry *pricing.Registry
	payments PaymentGateway
	clock    clock.Clock
	siteURL  string
	currency string
}

func NewCheckoutUseCase(
	cfg config.Config,
	registry *pricing.Registry,
	payments PaymentGateway,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		registry: registry,
		payments: payments,
		clock:    clk,
		siteURL:  strings.TrimRight(cfg.Site.URL, "/"),
		currency: cfg.Stripe.Currency,
	}
}

// pricedOrder is the shared outcome of the quote path and the checkout
// path; both must enforce the same invariants.
type pricedOrder struct {
	strategy        pricing.Strategy
	baseAmountCents int64
	amountCents     int64
	multiplier      float64
	promo           *promo.Promo
	discountCents   int64
}

func (u *checkoutUseCaseImpl) Quote(ctx context.Context, req *order.Request) (*QuoteResult, error) {
	priced, err := u.price(ctx, req)
	if err != nil {
		return nil, err
	}
	res := &QuoteResult{
		AmountCents:     priced.amountCents,
		BaseAmountCents: priced.baseAmountCents,
		DiscountCents:   priced.discountCents,
		PromoApplied:    priced.promo != nil,
		ProductName:     priced.strategy.ProductName(),
		ProductDesc:     priced.strategy.ProductDesc(req),
	}
	if priced.promo != nil {
		res.PromoCode = priced.promo.Code
	}
	return res, nil
}

func (u *checkoutUseCaseImpl) CreateCheckout(ctx context.Context, req *order.Request, requestOrigin string) (*CheckoutResult, error) {
	priced, err := u.price(ctx, req)
	if err != nil {
		return nil, err
	}

	orderID := order.NewID(u.clock.Now())
	origin := u.resolveOrigin(requestOrigin)
	successPath := priced.strategy.SuccessPath()

	spec := CheckoutSessionSpec{
		OrderID:        orderID,
		IdempotencyKey: IdempotencyKeyForOrder(orderID),
		AmountCents:    priced.amountCents,
		Currency:       u.currency,
		ProductName:    priced.strategy.ProductName(),
		ProductDesc:    priced.strategy.ProductDesc(req),
		SuccessURL:     fmt.Sprintf("%s%s?success=1&order=%s", origin, successPath, orderID),
		CancelURL:      fmt.Sprintf("%s%s?canceled=1", origin, successPath),
		Metadata:       buildMetadata(orderID, req, priced),
	}
	if priced.promo != nil {
		spec.PromotionCodeID = priced.promo.PromotionCodeID
	}

	session, err := u.payments.CreateCheckoutSession(ctx, spec)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProvider)
	}

	res := &CheckoutResult{
		CheckoutURL:  session.URL,
		OrderID:      orderID,
		PromoApplied: priced.promo != nil,
	}
	if priced.promo != nil {
		res.PromoCode = priced.promo.Code
	}
	return res, nil
}

// price runs the full validation and pricing pipeline shared by quotes and
// real checkouts: normalize, strategy lookup, customer-field rules,
// selection/package anti-tampering, base price, add-ons, promo estimate.
func (u *checkoutUseCaseImpl) price(ctx context.Context, req *order.Request) (*pricedOrder, error) {
	req.Normalize()

	strategy, err := u.registry.Lookup(req.Game)
	if err != nil {
		return nil, err
	}
	if err := req.ValidateCustomerFields(); err != nil {
		return nil, err
	}
	if err := strategy.ValidateSelection(req); err != nil {
		return nil, err
	}

	base := strategy.BasePrice(req)
	multiplier := strategy.AddonMultiplier(req.Addons)
	amountCents := pricing.Cents(base, multiplier)
	if amountCents <= 0 {
		return nil, errs.ErrInvalidPrice
	}

	priced := &pricedOrder{
		strategy:        strategy,
		baseAmountCents: pricing.Cents(base, 1),
		amountCents:     amountCents,
		multiplier:      multiplier,
	}

	if req.PromoCode != "" {
		priced.promo = u.resolvePromo(ctx, req.PromoCode)
		priced.discountCents = priced.promo.EstimateCents(amountCents, u.currency)
	}
	return priced, nil
}

// resolvePromo looks the code up against the provider's active promotion
// codes. A miss or a provider failure is not fatal: checkout proceeds
// without a discount and the provider re-validates at settlement anyway.
func (u *checkoutUseCaseImpl) resolvePromo(ctx context.Context, code string) *promo.Promo {
	p, err := u.payments.FindActivePromo(ctx, promo.Normalize(code))
	if err != nil {
		slog.Warn("promo lookup failed, continuing without discount", "code", code, "error", err)
		return nil
	}
	return p
}

func (u *checkoutUseCaseImpl) resolveOrigin(requestOrigin string) string {
	if u.siteURL != "" {
		return u.siteURL
	}
	return strings.TrimRight(requestOrigin, "/")
}

// IdempotencyKeyForOrder derives the provider idempotency key from the
// generated order id, so a retried session-creation call cannot mint a
// second payment session for the same order.
func IdempotencyKeyForOrder(orderID string) string {
	hash := sha256.Sum256([]byte("checkout:" + orderID))
	return hex.EncodeToString(hash[:])
}

// buildMetadata mirrors the whole order plus the pricing breakdown into the
// session's flat string metadata bag; the webhook reconstructs the order
// from it without a separate datastore.
func buildMetadata(orderID string, req *order.Request, priced *pricedOrder) map[string]string {
	divisionPoints := ""
	if req.DivisionPoints != nil {
		divisionPoints = strconv.FormatFloat(*req.DivisionPoints, 'f', -1, 64)
	}

	md := map[string]string{
		"order_id":            orderID,
		"game":                string(req.Game),
		"package":             req.Package,
		"rank_from":           req.RankFrom,
		"rank_to":             req.RankTo,
		"division_points":     divisionPoints,
		"discord":             req.Discord,
		"platform":            req.Platform,
		"ign":                 req.IGN,
		"region":              req.Region,
		"notes":               req.Notes,
		"addon_priority":      strconv.FormatBool(req.Addons.Priority),
		"addon_specific_hero": strconv.FormatBool(req.Addons.SpecificHero),
		"addon_low_rr":        strconv.FormatBool(req.Addons.LowRR),
		"hero_name":           req.HeroName,
		"base_amount_cents":   strconv.FormatInt(priced.baseAmountCents, 10),
		"amount_cents":        strconv.FormatInt(priced.amountCents, 10),
		"addon_multiplier":    strconv.FormatFloat(priced.multiplier, 'f', 2, 64),
	}
	if priced.promo != nil {
		md["promo_code"] = priced.promo.Code
		md["promo_discount_cents"] = strconv.FormatInt(priced.discountCents, 10)
	}
	return md
}
