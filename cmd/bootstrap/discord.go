package bootstrap

import (
	"crypto/ed25519"
	"encoding/hex"

	"topdog-boost/internal/pkg/config"
	"topdog-boost/internal/pkg/errs"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/fx"
)

var DiscordModule = fx.Module("discord",
	fx.Provide(
		NewDiscordSession,
		NewInteractionPublicKey,
	),
)

// NewDiscordSession builds a REST-only session. The bot never opens a
// gateway connection; it only posts and edits channel messages.
func NewDiscordSession(cfg config.Config) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + cfg.Discord.BotToken)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create discord session")
	}
	return session, nil
}

func NewInteractionPublicKey(cfg config.Config) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(cfg.Discord.PublicKey)
	if err != nil {
		return nil, errs.Wrap(err, "discord public key is not valid hex")
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, errs.New("discord public key has wrong length")
	}
	return ed25519.PublicKey(raw), nil
}
