// Package stripegw adapts the Stripe SDK to the usecase-layer payment
// ports. All amounts are minor currency units end to end.
package stripegw

import (
	"context"
	"encoding/json"
	"strings"

	"topdog-boost/internal/domain/promo"
	"topdog-boost/internal/pkg/config"
	"topdog-boost/internal/pkg/errs"
	"topdog-boost/internal/usecase/commands"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

// Bounded page size for the active promotion-code lookup.
const promoPageLimit = 100

type Gateway struct {
	sc            *client.API
	webhookSecret string
}

func New(cfg config.Config, sc *client.API) *Gateway {
	return &Gateway{
		sc:            sc,
		webhookSecret: cfg.Stripe.WebhookSecret,
	}
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, spec commands.CheckoutSessionSpec) (*commands.CheckoutSessionSnapshot, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(spec.SuccessURL),
		CancelURL:          stripe.String(spec.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(spec.Currency),
					UnitAmount: stripe.Int64(spec.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(spec.ProductName),
						Description: stripe.String(spec.ProductDesc),
					},
				},
			},
		},
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(spec.IdempotencyKey)
	for k, v := range spec.Metadata {
		params.AddMetadata(k, v)
	}
	// The promo rides as a provider-native discount so Stripe stays the
	// authority on the settled amount; the line item is never pre-discounted.
	if spec.PromotionCodeID != "" {
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{PromotionCode: stripe.String(spec.PromotionCodeID)},
		}
	}

	session, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "create checkout session")
	}
	return &commands.CheckoutSessionSnapshot{ID: session.ID, URL: session.URL}, nil
}

func (g *Gateway) RetrieveSession(ctx context.Context, sessionID string) (*commands.SessionSnapshot, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	session, err := g.sc.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, errs.Wrap(err, "retrieve checkout session")
	}

	snap := &commands.SessionSnapshot{
		ID:               session.ID,
		AmountTotalCents: session.AmountTotal,
		Metadata:         session.Metadata,
	}
	if session.CustomerDetails != nil {
		snap.CustomerEmail = session.CustomerDetails.Email
	}
	if session.PaymentIntent != nil {
		snap.PaymentIntentID = session.PaymentIntent.ID
		snap.IntentMetadata = session.PaymentIntent.Metadata
	}
	return snap, nil
}

func (g *Gateway) FindActivePromo(ctx context.Context, code string) (*promo.Promo, error) {
	params := &stripe.PromotionCodeListParams{
		Active: stripe.Bool(true),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(promoPageLimit)

	iter := g.sc.PromotionCodes.List(params)
	for iter.Next() {
		pc := iter.PromotionCode()
		if !strings.EqualFold(pc.Code, code) || pc.Coupon == nil {
			continue
		}
		p := &promo.Promo{
			Code:            strings.ToUpper(pc.Code),
			PromotionCodeID: pc.ID,
			Currency:        string(pc.Coupon.Currency),
		}
		if pc.Coupon.PercentOff > 0 {
			percent := pc.Coupon.PercentOff
			p.PercentOff = &percent
		} else if pc.Coupon.AmountOff > 0 {
			amount := pc.Coupon.AmountOff
			p.AmountOffCents = &amount
		}
		return p, nil
	}
	if err := iter.Err(); err != nil {
		return nil, errs.Wrap(err, "list promotion codes")
	}
	return nil, nil
}

// VerifyEvent checks the webhook signature against the shared secret and
// reduces the event to its type and session id.
func (g *Gateway) VerifyEvent(payload []byte, signatureHeader string) (*commands.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSignature)
	}

	var object struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
		return nil, errs.Wrap(err, "decode event object")
	}
	return &commands.WebhookEvent{Type: string(event.Type), SessionID: object.ID}, nil
}
