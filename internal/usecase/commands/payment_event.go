package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"topdog-boost/internal/domain/fraud"
	"topdog-boost/internal/domain/order"
	"topdog-boost/internal/infra/memory"
	"topdog-boost/internal/pkg/clock"
	"topdog-boost/internal/pkg/config"
	"topdog-boost/internal/pkg/errs"
)

// How many recent claim-channel messages the stateless duplicate scan
// inspects. It is the durable fallback when the in-process memory is empty
// after a cold restart.
const dedupeScanDepth = 50

const (
	colorPaidOK      = 0x2ecc71
	colorPaidFlagged = 0xf1c40f
	colorJob         = 0x3498db
)

// sessionMarker is embedded in the job message footer so later webhook
// deliveries can detect the session without any datastore.
func sessionMarker(sessionID string) string {
	return "ssn:" + sessionID
}

type PaymentEventCommands interface {
	// HandleCompletedSession processes one verified payment-completion
	// event. A detected duplicate is a successful no-op, and notification
	// failures are logged rather than surfaced so the provider is never
	// pushed into redelivery by a downstream hiccup.
	HandleCompletedSession(ctx context.Context, sessionID string) error
}

type paymentEventUseCaseImpl struct {
	payments       PaymentGateway
	channel        BoosterChannel
	memory         *memory.OrderMemory
	clock          clock.Clock
	adminChannelID string
	jobsChannelID  string
	boosterShare   float64
}

func NewPaymentEventUseCase(
	cfg config.Config,
	payments PaymentGateway,
	channel BoosterChannel,
	mem *memory.OrderMemory,
	clk clock.Clock,
) PaymentEventCommands {
	return &paymentEventUseCaseImpl{
		payments:       payments,
		channel:        channel,
		memory:         mem,
		clock:          clk,
		adminChannelID: cfg.Discord.AdminChannelID,
		jobsChannelID:  cfg.Discord.JobsChannelID,
		boosterShare:   cfg.Payout.BoosterShare,
	}
}

func (p *paymentEventUseCaseImpl) HandleCompletedSession(ctx context.Context, sessionID string) error {
	session, err := p.payments.RetrieveSession(ctx, sessionID)
	if err != nil {
		return errs.Mark(err, errs.ErrProvider)
	}

	email := session.CustomerEmail
	if email == "" {
		email = fraud.UnknownEmail
	}

	md := mergeMetadata(session.IntentMetadata, session.Metadata)

	now := p.clock.Now()
	orderID := md["order_id"]
	if orderID == "" {
		orderID = order.FallbackID(now, session.ID)
	}

	if p.memory.MarkProcessed(orderID) {
		slog.Warn("duplicate order blocked", "order_id", orderID, "session_id", session.ID)
		return nil
	}

	rapid := p.memory.TouchEmail(email, now, fraud.VelocityWindow)
	flags := fraud.Flags(email, rapid)

	paidCents := session.AmountTotalCents

	if _, err := p.channel.Post(ctx, p.adminChannelID, adminNotice(orderID, session, md, email, paidCents, flags)); err != nil {
		slog.Error("admin notification failed", "order_id", orderID, "error", err)
	}

	if p.jobAlreadyPosted(ctx, session.ID) {
		slog.Warn("job already posted for session, skipping", "order_id", orderID, "session_id", session.ID)
		return nil
	}

	if _, err := p.channel.Post(ctx, p.jobsChannelID, p.jobNotice(orderID, session.ID, md, paidCents)); err != nil {
		slog.Error("job notification failed", "order_id", orderID, "error", err)
	}
	return nil
}

// jobAlreadyPosted scans the most recent claim-channel messages for this
// session's marker. Scan failures count as "not posted": availability of
// the claim flow wins over a rare duplicate card.
func (p *paymentEventUseCaseImpl) jobAlreadyPosted(ctx context.Context, sessionID string) bool {
	msgs, err := p.channel.Recent(ctx, p.jobsChannelID, dedupeScanDepth)
	if err != nil {
		slog.Error("claim channel scan failed", "session_id", sessionID, "error", err)
		return false
	}
	marker := sessionMarker(sessionID)
	for _, m := range msgs {
		if strings.Contains(m.FooterText, marker) || strings.Contains(m.Content, marker) {
			return true
		}
	}
	return false
}

// mergeMetadata layers session metadata over payment-intent metadata;
// session-level keys win on conflict.
func mergeMetadata(intent, session map[string]string) map[string]string {
	md := make(map[string]string, len(intent)+len(session))
	for k, v := range intent {
		md[k] = v
	}
	for k, v := range session {
		md[k] = v
	}
	return md
}

func adminNotice(orderID string, session *SessionSnapshot, md map[string]string, email string, paidCents int64, flags []string) OutboundMessage {
	color := colorPaidOK
	if len(flags) > 0 {
		color = colorPaidFlagged
	}

	dashboard := "N/A"
	if session.PaymentIntentID != "" {
		dashboard = "https://dashboard.stripe.com/payments/" + session.PaymentIntentID
	}

	return OutboundMessage{
		Embed: &EmbedSpec{
			Title:       "✅ New Paid Order",
			Description: fmt.Sprintf("**Order ID:** %s", orderID),
			Color:       color,
			Fields: []EmbedField{
				{Name: "Game", Value: orDefault(md["game"], "UNKNOWN"), Inline: true},
				{Name: "Paid", Value: dollars(paidCents), Inline: true},
				{Name: "Email", Value: email},
				{Name: "Discord", Value: orDefault(md["discord"], "UNKNOWN"), Inline: true},
				{Name: "Platform", Value: orDefault(md["platform"], "UNKNOWN"), Inline: true},
				{Name: "Region", Value: orDefault(md["region"], "UNKNOWN"), Inline: true},
				{Name: "In-game", Value: orDefault(md["ign"], "UNKNOWN")},
				{Name: "Rank From", Value: orDefault(md["rank_from"], "N/A"), Inline: true},
				{Name: "Rank To", Value: orDefault(md["rank_to"], "N/A"), Inline: true},
				{Name: "Package", Value: orDefault(md["package"], "UNKNOWN")},
				{Name: "Add-ons", Value: addonSummary(md)},
				{Name: "Notes", Value: orDefault(strings.TrimSpace(md["notes"]), "None")},
				{Name: "Promo", Value: orDefault(md["promo_code"], "None")},
				{Name: "Stripe Session", Value: session.ID},
				{Name: "Stripe Dashboard", Value: dashboard},
				{Name: "Fraud Flags", Value: orDefault(strings.Join(flags, ", "), "None")},
			},
		},
	}
}

// jobNotice is the booster-facing card: no email, no fraud flags, no
// payment-dashboard links, and a payout instead of the paid amount.
func (p *paymentEventUseCaseImpl) jobNotice(orderID, sessionID string, md map[string]string, paidCents int64) OutboundMessage {
	payoutCents := int64(math.Round(float64(paidCents) * p.boosterShare))

	return OutboundMessage{
		Content: fmt.Sprintf("🛠 **New job up for grabs** • Order **%s**", orderID),
		Embed: &EmbedSpec{
			Title:       "Boost Job",
			Description: fmt.Sprintf("**Order ID:** %s", orderID),
			Color:       colorJob,
			Fields: []EmbedField{
				{Name: "Game", Value: orDefault(md["game"], "UNKNOWN"), Inline: true},
				{Name: "Payout", Value: dollars(payoutCents), Inline: true},
				{Name: "Package", Value: orDefault(md["package"], "UNKNOWN")},
				{Name: "Rank From", Value: orDefault(md["rank_from"], "N/A"), Inline: true},
				{Name: "Rank To", Value: orDefault(md["rank_to"], "N/A"), Inline: true},
				{Name: "Platform", Value: orDefault(md["platform"], "N/A"), Inline: true},
				{Name: "Region", Value: orDefault(md["region"], "N/A"), Inline: true},
				{Name: "Add-ons", Value: addonSummary(md)},
				{Name: "Notes", Value: orDefault(strings.TrimSpace(md["notes"]), "None")},
			},
			Footer: sessionMarker(sessionID) + " • First come first serve.",
		},
		Buttons: []ButtonSpec{
			{Label: "Claim", CustomID: "claim:" + orderID},
			{Label: "Log", CustomID: "log:" + orderID, Secondary: true},
		},
	}
}

func addonSummary(md map[string]string) string {
	var addons []string
	if md["addon_priority"] == "true" {
		addons = append(addons, "Priority")
	}
	if md["addon_specific_hero"] == "true" {
		if hero := strings.TrimSpace(md["hero_name"]); hero != "" {
			addons = append(addons, fmt.Sprintf("Specific Hero (%s)", hero))
		} else {
			addons = append(addons, "Specific Hero")
		}
	}
	if md["addon_low_rr"] == "true" {
		addons = append(addons, "Low RR Gain")
	}
	if len(addons) == 0 {
		return "None"
	}
	return strings.Join(addons, ", ")
}

func dollars(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
