package api

import (
	"crypto/ed25519"
	"encoding/json"
	"io"
	"net/http"

	"topdog-boost/internal/handler/httperr"
	"topdog-boost/internal/pkg/errs"
	"topdog-boost/internal/usecase/commands"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	publicKey    ed25519.PublicKey
	interactions commands.InteractionCommands
}

func NewInteractionHandler(publicKey ed25519.PublicKey, interactions commands.InteractionCommands) *InteractionHandler {
	return &InteractionHandler{publicKey: publicKey, interactions: interactions}
}

// Handle verifies the ed25519 request signature (timestamp + raw body) and
// runs the claim state machine. Every reply rides Discord's interaction
// response envelope; non-pong replies are ephemeral.
func (h *InteractionHandler) Handle(c *gin.Context) {
	if !discordgo.VerifyInteraction(c.Request, h.publicKey) {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrInvalidSignature, "invalid request signature")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "unreadable payload")
		return
	}

	var interaction discordgo.Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "malformed interaction")
		return
	}

	input, ok := toInput(&interaction)
	if !ok {
		c.JSON(http.StatusOK, ephemeral("Unhandled interaction."))
		return
	}

	reply, err := h.interactions.Handle(c.Request.Context(), input)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
		return
	}

	if reply.Pong {
		c.JSON(http.StatusOK, discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong})
		return
	}
	c.JSON(http.StatusOK, ephemeral(reply.Content))
}

func toInput(interaction *discordgo.Interaction) (commands.InteractionInput, bool) {
	switch interaction.Type {
	case discordgo.InteractionPing:
		return commands.InteractionInput{Ping: true}, true
	case discordgo.InteractionMessageComponent:
		input := commands.InteractionInput{
			CustomID:  interaction.MessageComponentData().CustomID,
			ChannelID: interaction.ChannelID,
		}
		if user := interactionUser(interaction); user != nil {
			input.UserID = user.ID
			input.Username = user.Username
		}
		if msg := interaction.Message; msg != nil {
			input.MessageID = msg.ID
			input.MessageContent = msg.Content
			input.Buttons = toButtons(msg.Components)
			if len(msg.Embeds) > 0 {
				input.Embed = toEmbedSpec(msg.Embeds[0])
				if msg.Embeds[0].Footer != nil {
					input.FooterText = msg.Embeds[0].Footer.Text
				}
			}
		}
		return input, true
	default:
		return commands.InteractionInput{}, false
	}
}

func interactionUser(interaction *discordgo.Interaction) *discordgo.User {
	if interaction.Member != nil && interaction.Member.User != nil {
		return interaction.Member.User
	}
	return interaction.User
}

func toButtons(rows []discordgo.MessageComponent) []commands.ButtonSpec {
	var out []commands.ButtonSpec
	for _, row := range rows {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			button, ok := comp.(*discordgo.Button)
			if !ok {
				continue
			}
			out = append(out, commands.ButtonSpec{
				Label:     button.Label,
				CustomID:  button.CustomID,
				Secondary: button.Style == discordgo.SecondaryButton,
				Disabled:  button.Disabled,
			})
		}
	}
	return out
}

func toEmbedSpec(embed *discordgo.MessageEmbed) *commands.EmbedSpec {
	spec := &commands.EmbedSpec{
		Title:       embed.Title,
		Description: embed.Description,
		Color:       embed.Color,
	}
	for _, f := range embed.Fields {
		spec.Fields = append(spec.Fields, commands.EmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if embed.Footer != nil {
		spec.Footer = embed.Footer.Text
	}
	return spec
}

func ephemeral(content string) discordgo.InteractionResponse {
	return discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
