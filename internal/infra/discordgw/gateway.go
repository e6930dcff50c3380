// Package discordgw adapts the Discord REST API to the usecase-layer
// messaging port. The session is used purely for REST calls; no gateway
// connection is ever opened.
package discordgw

import (
	"context"

	"topdog-boost/internal/pkg/errs"
	"topdog-boost/internal/usecase/commands"

	"github.com/bwmarrin/discordgo"
)

type Gateway struct {
	session *discordgo.Session
}

func New(session *discordgo.Session) *Gateway {
	return &Gateway{session: session}
}

func (g *Gateway) Post(ctx context.Context, channelID string, msg commands.OutboundMessage) (string, error) {
	send := &discordgo.MessageSend{
		Content:    msg.Content,
		Components: componentRows(msg.Buttons),
	}
	if msg.Embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{toEmbed(msg.Embed)}
	}

	posted, err := g.session.ChannelMessageSendComplex(channelID, send, discordgo.WithContext(ctx))
	if err != nil {
		return "", errs.Wrap(err, "post channel message")
	}
	return posted.ID, nil
}

func (g *Gateway) Edit(ctx context.Context, channelID, messageID string, msg commands.OutboundMessage) error {
	edit := discordgo.NewMessageEdit(channelID, messageID)
	edit.SetContent(msg.Content)
	if msg.Embed != nil {
		edit.SetEmbeds([]*discordgo.MessageEmbed{toEmbed(msg.Embed)})
	}
	components := componentRows(msg.Buttons)
	edit.Components = &components

	if _, err := g.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return errs.Wrap(err, "edit channel message")
	}
	return nil
}

func (g *Gateway) Recent(ctx context.Context, channelID string, limit int) ([]commands.PostedMessage, error) {
	msgs, err := g.session.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, errs.Wrap(err, "list channel messages")
	}

	out := make([]commands.PostedMessage, 0, len(msgs))
	for _, m := range msgs {
		pm := commands.PostedMessage{ID: m.ID, Content: m.Content}
		if len(m.Embeds) > 0 && m.Embeds[0].Footer != nil {
			pm.FooterText = m.Embeds[0].Footer.Text
		}
		out = append(out, pm)
	}
	return out, nil
}

func toEmbed(spec *commands.EmbedSpec) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       spec.Title,
		Description: spec.Description,
		Color:       spec.Color,
	}
	for _, f := range spec.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if spec.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: spec.Footer}
	}
	return embed
}

func componentRows(buttons []commands.ButtonSpec) []discordgo.MessageComponent {
	if len(buttons) == 0 {
		return []discordgo.MessageComponent{}
	}
	row := discordgo.ActionsRow{}
	for _, b := range buttons {
		style := discordgo.PrimaryButton
		if b.Secondary {
			style = discordgo.SecondaryButton
		}
		row.Components = append(row.Components, discordgo.Button{
			Label:    b.Label,
			Style:    style,
			CustomID: b.CustomID,
			Disabled: b.Disabled,
		})
	}
	return []discordgo.MessageComponent{row}
}
