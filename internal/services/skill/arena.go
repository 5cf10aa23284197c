package skill

//go:generate mockgen -destination=mock/mock_arena.go -package=mockskill -source=arena.go

import (
	"context"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

// Arena is the narrow view of a running battle that skills may use.
// Amounts are narrative health points; the arena converts them to battle hits.
type Arena interface {
	// IsBattleActive reports whether the channel has a battle in combat
	IsBattleActive(ctx context.Context, channelID string) bool

	// Participants returns the battle participants in turn order, admin last
	Participants(ctx context.Context, channelID string) ([]*entities.Participant, error)

	// UserInfo returns one participant
	UserInfo(ctx context.Context, channelID, userID string) (*entities.Participant, error)

	// DamageUser applies damage and returns the hits dealt
	DamageUser(ctx context.Context, channelID, userID string, amount int) (int, error)

	// HealUser removes received hits and returns how many were healed
	HealUser(ctx context.Context, channelID, userID string, amount int) (int, error)

	// KillUser eliminates a participant
	KillUser(ctx context.Context, channelID, userID string) error

	// ReviveUser brings an eliminated participant back with the given health
	ReviveUser(ctx context.Context, channelID, userID string, health int) error

	// SendBattleMessage posts narration into the battle channel
	SendBattleMessage(ctx context.Context, channelID, text string) error

	// Flush applies the chat side effects queued by earlier calls, such as
	// nickname health updates. It is called once the skill state is unlocked.
	Flush(ctx context.Context, channelID string)
}
