package battle

//go:generate mockgen -destination=mock/mock_notifier.go -package=mockbattle -source=notifier.go

import (
	"context"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

// Notifier is the chat surface the engine narrates through
type Notifier interface {
	// Send posts a plain message to a channel
	Send(ctx context.Context, channelID, text string) error

	// SendBoard posts a status board and returns the message id
	SendBoard(ctx context.Context, channelID string, board *entities.Board) (string, error)

	// EditBoard replaces a posted board. It returns a NotFound error when
	// the message no longer exists.
	EditBoard(ctx context.Context, channelID, messageID string, board *entities.Board) error
}

// NicknameSetter rewrites a member's display name
type NicknameSetter interface {
	SetNickname(ctx context.Context, guildID, userID, nickname string) error
}
