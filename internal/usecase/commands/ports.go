package commands

import (
	"context"

	"topdog-boost/internal/domain/promo"
)

// CheckoutSessionSpec is everything the payment provider needs to host one
// checkout session. Metadata values must be flat strings (provider
// constraint); the resolved promo rides as a provider-native discount
// reference so settlement stays authoritative on the provider side.
type CheckoutSessionSpec struct {
	OrderID         string
	IdempotencyKey  string
	AmountCents     int64
	Currency        string
	ProductName     string
	ProductDesc     string
	SuccessURL      string
	CancelURL       string
	Metadata        map[string]string
	PromotionCodeID string
}

type CheckoutSessionSnapshot struct {
	ID  string
	URL string
}

// SessionSnapshot is the authoritative view of a settled session, read back
// from the provider by the webhook rather than trusted from the event
// payload.
type SessionSnapshot struct {
	ID               string
	PaymentIntentID  string
	CustomerEmail    string
	AmountTotalCents int64
	Metadata         map[string]string
	IntentMetadata   map[string]string
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, spec CheckoutSessionSpec) (*CheckoutSessionSnapshot, error)
	RetrieveSession(ctx context.Context, sessionID string) (*SessionSnapshot, error)
	// FindActivePromo matches code case-insensitively against the provider's
	// active promotion codes; a miss returns (nil, nil).
	FindActivePromo(ctx context.Context, code string) (*promo.Promo, error)
}

// WebhookEvent is a signature-verified payment event, reduced to what the
// processor needs.
type WebhookEvent struct {
	Type      string
	SessionID string
}

type WebhookVerifier interface {
	VerifyEvent(payload []byte, signatureHeader string) (*WebhookEvent, error)
}

type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

type EmbedSpec struct {
	Title       string
	Description string
	Color       int
	Fields      []EmbedField
	Footer      string
}

type ButtonSpec struct {
	Label     string
	CustomID  string
	Secondary bool
	Disabled  bool
}

type OutboundMessage struct {
	Content string
	Embed   *EmbedSpec
	Buttons []ButtonSpec
}

// PostedMessage is the read-back view of a channel message, just enough for
// the stateless duplicate scan.
type PostedMessage struct {
	ID         string
	Content    string
	FooterText string
}

// BoosterChannel is the messaging-provider capability: post, edit, and list
// recent messages. The posted job message itself is the claim lock; there
// is no separate datastore.
type BoosterChannel interface {
	Post(ctx context.Context, channelID string, msg OutboundMessage) (string, error)
	Edit(ctx context.Context, channelID, messageID string, msg OutboundMessage) error
	Recent(ctx context.Context, channelID string, limit int) ([]PostedMessage, error)
}
