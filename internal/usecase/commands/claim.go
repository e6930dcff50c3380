package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"topdog-boost/internal/pkg/config"
	"topdog-boost/internal/pkg/errs"
)

// claimedMarker is the lock text; its presence in the job message's content
// or first-embed footer means the job is taken. The message IS the lock —
// there is no separate datastore.
const claimedMarker = "claimed by"

// InteractionInput is a provider-neutral view of one button interaction
// against a posted job message.
type InteractionInput struct {
	Ping bool

	CustomID  string
	UserID    string
	Username  string
	ChannelID string
	MessageID string

	MessageContent string
	FooterText     string
	Embed          *EmbedSpec
	Buttons        []ButtonSpec
}

// InteractionReply is what the handler sends back in the provider's
// acknowledgement envelope. Non-pong replies are always ephemeral.
type InteractionReply struct {
	Pong    bool
	Content string
}

type InteractionCommands interface {
	Handle(ctx context.Context, in InteractionInput) (*InteractionReply, error)
}

type interactionUseCaseImpl struct {
	channel      BoosterChannel
	logChannelID string
}

func NewInteractionUseCase(cfg config.Config, channel BoosterChannel) InteractionCommands {
	return &interactionUseCaseImpl{
		channel:      channel,
		logChannelID: cfg.Discord.LogChannelID,
	}
}

func (u *interactionUseCaseImpl) Handle(ctx context.Context, in InteractionInput) (*InteractionReply, error) {
	if in.Ping {
		return &InteractionReply{Pong: true}, nil
	}

	if in.ChannelID == "" || in.MessageID == "" {
		return &InteractionReply{Content: "Missing message context."}, nil
	}

	action, orderID, ok := strings.Cut(in.CustomID, ":")
	if !ok || orderID == "" {
		return &InteractionReply{Content: "Unknown button."}, nil
	}

	// Race protection: whoever clicks after the claim edit committed sees
	// the marker in the provider-hosted message state.
	if isClaimed(in) {
		return &InteractionReply{Content: "Too late — this job is already claimed."}, nil
	}

	switch action {
	case "log":
		return u.logJob(ctx, orderID, in)
	case "claim":
		return u.claimJob(ctx, orderID, in)
	default:
		return &InteractionReply{Content: "Unknown button."}, nil
	}
}

func isClaimed(in InteractionInput) bool {
	if strings.Contains(strings.ToLower(in.MessageContent), claimedMarker) {
		return true
	}
	return strings.Contains(strings.ToLower(in.FooterText), claimedMarker)
}

// logJob posts an audit entry without locking the job.
func (u *interactionUseCaseImpl) logJob(ctx context.Context, orderID string, in InteractionInput) (*InteractionReply, error) {
	u.audit(ctx, fmt.Sprintf("📝 **JOB LOGGED** • Order **%s** by <@%s> (%s)", orderID, in.UserID, in.Username))
	return &InteractionReply{Content: "Logged ✅"}, nil
}

// claimJob locks the job: the claimed-by marker is appended to both the
// message content and the first embed's footer, and every button is
// disabled. The existing footer text survives the edit, so the session
// marker stays scannable for webhook redeliveries against a claimed card.
func (u *interactionUseCaseImpl) claimJob(ctx context.Context, orderID string, in InteractionInput) (*InteractionReply, error) {
	edited := OutboundMessage{
		Content: in.MessageContent + fmt.Sprintf("\n🔒 **Claimed by:** <@%s>", in.UserID),
		Buttons: disableAll(in.Buttons),
	}
	if in.Embed != nil {
		embed := *in.Embed
		embed.Footer = appendFooter(embed.Footer, "Claimed by "+in.Username)
		edited.Embed = &embed
	}

	if err := u.channel.Edit(ctx, in.ChannelID, in.MessageID, edited); err != nil {
		return nil, errs.Mark(err, errs.ErrProvider)
	}

	u.audit(ctx, fmt.Sprintf("✅ **JOB CLAIMED** • Order **%s** by <@%s> (%s)", orderID, in.UserID, in.Username))

	return &InteractionReply{Content: fmt.Sprintf("Locked ✅ You claimed **%s**.", orderID)}, nil
}

// audit posts to the log channel when one is configured. The lock edit has
// already committed by the time claim audits run, so failures here must not
// fail the interaction.
func (u *interactionUseCaseImpl) audit(ctx context.Context, content string) {
	if u.logChannelID == "" {
		return
	}
	if _, err := u.channel.Post(ctx, u.logChannelID, OutboundMessage{Content: content}); err != nil {
		slog.Error("audit log post failed", "error", err)
	}
}

func appendFooter(footer, note string) string {
	if footer == "" {
		return note
	}
	return footer + " • " + note
}

func disableAll(buttons []ButtonSpec) []ButtonSpec {
	out := make([]ButtonSpec, len(buttons))
	for i, b := range buttons {
		b.Disabled = true
		out[i] = b
	}
	return out
}
