package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
	apperr "github.com/KirkDiggler/arena-bot-discord/internal/errors"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/battle"
	"github.com/bwmarrin/discordgo"
)

// Notifier posts battle narration and boards to Discord channels and
// writes nickname health
type Notifier struct {
	session Session
}

var (
	_ battle.Notifier       = (*Notifier)(nil)
	_ battle.NicknameSetter = (*Notifier)(nil)
)

// NewNotifier creates a notifier over a Discord session
func NewNotifier(session Session) *Notifier {
	if session == nil {
		panic("discord session is required")
	}
	return &Notifier{session: session}
}

// Send posts a plain message
func (n *Notifier) Send(ctx context.Context, channelID, text string) error {
	if _, err := n.session.ChannelMessageSend(channelID, text); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendBoard posts a board as an embed and returns the message id
func (n *Notifier) SendBoard(ctx context.Context, channelID string, board *entities.Board) (string, error) {
	msg, err := n.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{boardEmbed(board)},
		Components: boardComponents(board),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send board: %w", err)
	}
	return msg.ID, nil
}

// EditBoard replaces a posted board. The sync buttons are removed once the
// board no longer asks for a choice.
func (n *Notifier) EditBoard(ctx context.Context, channelID, messageID string, board *entities.Board) error {
	embeds := []*discordgo.MessageEmbed{boardEmbed(board)}
	components := boardComponents(board)
	_, err := n.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         messageID,
		Channel:    channelID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		if isUnknownMessage(err) {
			return apperr.NotFound("status message was deleted")
		}
		return fmt.Errorf("failed to edit board: %w", err)
	}
	return nil
}

// SetNickname rewrites a member's display name
func (n *Notifier) SetNickname(ctx context.Context, guildID, userID, nickname string) error {
	if guildID == "" {
		return apperr.InvalidArgument("guild id is required")
	}
	if err := n.session.GuildMemberNickname(guildID, userID, nickname); err != nil {
		return fmt.Errorf("failed to set nickname: %w", err)
	}
	return nil
}

func isUnknownMessage(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == discordgo.ErrCodeUnknownMessage
	}
	return false
}

func boardEmbed(board *entities.Board) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       board.Title,
		Description: board.Description,
		Color:       board.Color,
		Fields:      make([]*discordgo.MessageEmbedField, 0, len(board.Fields)),
	}
	for _, f := range board.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if board.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: board.Footer}
	}
	return embed
}

func boardComponents(board *entities.Board) []discordgo.MessageComponent {
	if !board.SyncChoice {
		return []discordgo.MessageComponent{}
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "✅ 체력 동기화",
					Style:    discordgo.SuccessButton,
					CustomID: syncButtonID(true),
				},
				discordgo.Button{
					Label:    "⚔️ 동기화 없이 시작",
					Style:    discordgo.SecondaryButton,
					CustomID: syncButtonID(false),
				},
			},
		},
	}
}
